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

type employeeService struct {
	employeeRepo   repository.EmployeeRepository
	passwordHasher service.PasswordHasher
}

// EmployeeServiceParams holds dependencies for EmployeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	EmployeeRepo   repository.EmployeeRepository
	PasswordHasher service.PasswordHasher
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo:   params.EmployeeRepo,
		passwordHasher: params.PasswordHasher,
	}
}

// ListTeam returns the active employees an admin can assign customers to.
func (s *employeeService) ListTeam(ctx context.Context, actor entity.Actor) ([]*entity.Employee, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("only an admin may list the team roster")
	}

	team, err := s.employeeRepo.ListByAdmin(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team")
	}

	return team, nil
}

// RegisterEmployee creates a new account on the acting admin's team.
func (s *employeeService) RegisterEmployee(ctx context.Context, input usecase.RegisterEmployeeInput) (*entity.Employee, error) {
	if input.Actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("only an admin may register employees")
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.NewFieldError("role", "Select a valid role.")
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	employee := &entity.Employee{
		UserID:       input.UserID,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		AdminUserID:  input.Actor.UserID,
		Active:       true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}
