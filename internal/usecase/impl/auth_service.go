package impl

import (
	"context"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	"bureau/internal/domain/repository"
	"bureau/internal/domain/service"
	"bureau/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	employeeRepo   repository.EmployeeRepository
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	EmployeeRepo   repository.EmployeeRepository
	PasswordHasher service.PasswordHasher
	TokenService   service.TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		employeeRepo:   params.EmployeeRepo,
		passwordHasher: params.PasswordHasher,
		tokenService:   params.TokenService,
	}
}

// Login verifies the employee's credentials and issues a token pair.
func (s *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			// Same error as a wrong password, to avoid leaking which
			// addresses have accounts.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	if !employee.Active {
		return nil, domainerrors.ErrEmployeeInactive
	}

	if !s.passwordHasher.Check(input.Password, employee.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(employee.UserID, entity.Roles{employee.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee:     employee,
	}, nil
}

// Refresh validates a refresh token and rotates the token pair. The roles
// are re-read from the employee record so a role change takes effect on the
// next refresh rather than at token expiry.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := s.tokenService.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	employee, err := s.employeeRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	if !employee.Active {
		return nil, domainerrors.ErrEmployeeInactive
	}

	accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(employee.UserID, entity.Roles{employee.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}
