package impl

import (
	"context"
	"testing"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/repository"
	"bureau/internal/domain/service"
	mockRepo "bureau/internal/mocks/repository"
	mockSvc "bureau/internal/mocks/service"
	"bureau/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockEmployeeRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	authService := NewAuthService(AuthServiceParams{
		EmployeeRepo:   employeeRepo,
		PasswordHasher: hasher,
		TokenService:   tokenService,
	})

	return authService, employeeRepo, hasher, tokenService
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, employeeRepo, hasher, tokenService := createTestAuthService(t)

	ctx := context.Background()
	employee := &entity.Employee{
		UserID:       "emp-1",
		Email:        "bilal@bureau.example",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleEmployee,
		Active:       true,
	}

	employeeRepo.EXPECT().
		FindByEmail(ctx, "bilal@bureau.example").
		Return(employee, nil)
	hasher.EXPECT().
		Check("secret", "$2a$10$hash").
		Return(true)
	tokenService.EXPECT().
		GenerateTokens("emp-1", []string{"employee"}).
		Return("access-token", "refresh-token", nil)

	output, err := authService.Login(ctx, usecase.LoginInput{
		Email:    "bilal@bureau.example",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "emp-1", output.Employee.UserID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, employeeRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	employeeRepo.EXPECT().
		FindByEmail(ctx, "nobody@bureau.example").
		Return(nil, repository.ErrEmployeeNotFound)

	_, err := authService.Login(ctx, usecase.LoginInput{
		Email:    "nobody@bureau.example",
		Password: "secret",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, employeeRepo, hasher, _ := createTestAuthService(t)

	ctx := context.Background()
	employee := &entity.Employee{
		UserID:       "emp-1",
		Email:        "bilal@bureau.example",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleEmployee,
		Active:       true,
	}

	employeeRepo.EXPECT().
		FindByEmail(ctx, "bilal@bureau.example").
		Return(employee, nil)
	hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, err := authService.Login(ctx, usecase.LoginInput{
		Email:    "bilal@bureau.example",
		Password: "wrong",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	authService, employeeRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	employeeRepo.EXPECT().
		FindByEmail(ctx, "bilal@bureau.example").
		Return(&entity.Employee{UserID: "emp-1", Active: false}, nil)

	_, err := authService.Login(ctx, usecase.LoginInput{
		Email:    "bilal@bureau.example",
		Password: "secret",
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "EMPLOYEE_INACTIVE")
}

func TestAuthService_Login_FindError(t *testing.T) {
	authService, employeeRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	employeeRepo.EXPECT().
		FindByEmail(ctx, "bilal@bureau.example").
		Return(nil, errors.New("db error"))

	_, err := authService.Login(ctx, usecase.LoginInput{
		Email:    "bilal@bureau.example",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find employee by email")
}

func TestAuthService_Refresh_Success(t *testing.T) {
	authService, employeeRepo, _, tokenService := createTestAuthService(t)

	ctx := context.Background()
	employee := &entity.Employee{
		UserID: "emp-1",
		Role:   entity.RoleAdmin,
		Active: true,
	}

	tokenService.EXPECT().
		ValidateRefresh("old-refresh").
		Return(&service.Claims{UserID: "emp-1", Type: "refresh"}, nil)
	employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-1").
		Return(employee, nil)
	tokenService.EXPECT().
		GenerateTokens("emp-1", []string{"admin"}).
		Return("new-access", "new-refresh", nil)

	output, err := authService.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	authService, _, _, tokenService := createTestAuthService(t)

	ctx := context.Background()

	tokenService.EXPECT().
		ValidateRefresh("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := authService.Refresh(ctx, "garbage")
	assert.Error(t, err)
	assertErrorCode(t, err, "REFRESH_TOKEN_INVALID")
}

func TestAuthService_Refresh_EmployeeGone(t *testing.T) {
	authService, employeeRepo, _, tokenService := createTestAuthService(t)

	ctx := context.Background()

	tokenService.EXPECT().
		ValidateRefresh("old-refresh").
		Return(&service.Claims{UserID: "emp-gone", Type: "refresh"}, nil)
	employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-gone").
		Return(nil, repository.ErrEmployeeNotFound)

	_, err := authService.Refresh(ctx, "old-refresh")
	assert.Error(t, err)
	assertErrorCode(t, err, "REFRESH_TOKEN_INVALID")
}

func TestAuthService_Refresh_DeactivatedEmployee(t *testing.T) {
	authService, employeeRepo, _, tokenService := createTestAuthService(t)

	ctx := context.Background()

	tokenService.EXPECT().
		ValidateRefresh("old-refresh").
		Return(&service.Claims{UserID: "emp-1", Type: "refresh"}, nil)
	employeeRepo.EXPECT().
		FindByUserID(ctx, "emp-1").
		Return(&entity.Employee{UserID: "emp-1", Active: false}, nil)

	_, err := authService.Refresh(ctx, "old-refresh")
	assert.Error(t, err)
	assertErrorCode(t, err, "EMPLOYEE_INACTIVE")
}
