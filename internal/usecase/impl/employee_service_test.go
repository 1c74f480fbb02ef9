package impl

import (
	"context"
	"testing"

	"bureau/internal/domain/entity"
	domainerrors "bureau/internal/domain/errors"
	mockRepo "bureau/internal/mocks/repository"
	mockSvc "bureau/internal/mocks/service"
	"bureau/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEmployeeService(t *testing.T) (usecase.EmployeeUsecase, *mockRepo.MockEmployeeRepository, *mockSvc.MockPasswordHasher) {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	employeeService := NewEmployeeService(EmployeeServiceParams{
		EmployeeRepo:   employeeRepo,
		PasswordHasher: hasher,
	})

	return employeeService, employeeRepo, hasher
}

func TestEmployeeService_ListTeam_Success(t *testing.T) {
	employeeService, employeeRepo, _ := createTestEmployeeService(t)

	ctx := context.Background()
	team := []*entity.Employee{
		{UserID: "emp-1", AdminUserID: "admin-1", Active: true},
		{UserID: "emp-2", AdminUserID: "admin-1", Active: true},
	}

	employeeRepo.EXPECT().
		ListByAdmin(ctx, "admin-1").
		Return(team, nil)

	got, err := employeeService.ListTeam(ctx, entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, team, got)
}

func TestEmployeeService_ListTeam_NonAdminForbidden(t *testing.T) {
	employeeService, _, _ := createTestEmployeeService(t)

	ctx := context.Background()

	_, err := employeeService.ListTeam(ctx, entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee})
	assert.Error(t, err)
	assertErrorCode(t, err, "FORBIDDEN")
}

func TestEmployeeService_RegisterEmployee_Success(t *testing.T) {
	employeeService, employeeRepo, hasher := createTestEmployeeService(t)

	ctx := context.Background()

	hasher.EXPECT().
		Hash("initial-password").
		Return("$2a$10$hash", nil)
	employeeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(employee *entity.Employee) bool {
			return employee.UserID == "emp-3" &&
				employee.AdminUserID == "admin-1" &&
				employee.PasswordHash == "$2a$10$hash" &&
				employee.Active
		})).
		Return(nil)

	employee, err := employeeService.RegisterEmployee(ctx, usecase.RegisterEmployeeInput{
		Actor:    entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		UserID:   "emp-3",
		FullName: "Hina Raza",
		Email:    "hina@bureau.example",
		Password: "initial-password",
		Role:     entity.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", employee.AdminUserID)
	assert.True(t, employee.Active)
}

func TestEmployeeService_RegisterEmployee_NonAdminForbidden(t *testing.T) {
	employeeService, _, _ := createTestEmployeeService(t)

	ctx := context.Background()

	_, err := employeeService.RegisterEmployee(ctx, usecase.RegisterEmployeeInput{
		Actor: entity.Actor{UserID: "emp-1", Role: entity.RoleEmployee},
		Role:  entity.RoleEmployee,
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "FORBIDDEN")
}

func TestEmployeeService_RegisterEmployee_InvalidRole(t *testing.T) {
	employeeService, _, _ := createTestEmployeeService(t)

	ctx := context.Background()

	_, err := employeeService.RegisterEmployee(ctx, usecase.RegisterEmployeeInput{
		Actor: entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		Role:  entity.Role("superuser"),
	})
	assert.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Select a valid role."}, vErr.Fields()["role"])
}

func TestEmployeeService_RegisterEmployee_HashFailure(t *testing.T) {
	employeeService, _, hasher := createTestEmployeeService(t)

	ctx := context.Background()

	hasher.EXPECT().
		Hash("initial-password").
		Return("", errors.New("bcrypt: password length exceeds 72 bytes"))

	_, err := employeeService.RegisterEmployee(ctx, usecase.RegisterEmployeeInput{
		Actor:    entity.Actor{UserID: "admin-1", Role: entity.RoleAdmin},
		Password: "initial-password",
		Role:     entity.RoleEmployee,
	})
	assert.Error(t, err)
	assertErrorCode(t, err, "PASSWORD_HASH_FAILED")
}
