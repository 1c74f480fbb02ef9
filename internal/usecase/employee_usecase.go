package usecase

import (
	"context"

	"bureau/internal/domain/entity"
)

// RegisterEmployeeInput defines the data required to create an employee
// account on an admin's team.
type RegisterEmployeeInput struct {
	Actor    entity.Actor
	UserID   string
	FullName string
	Email    string
	Password string
	Role     entity.Role
}

// EmployeeUsecase defines the interface for team roster operations.
type EmployeeUsecase interface {
	// ListTeam returns the active employees an admin can assign customers to.
	ListTeam(ctx context.Context, actor entity.Actor) ([]*entity.Employee, error)

	// RegisterEmployee creates a new account on the acting admin's team.
	RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (*entity.Employee, error)
}
