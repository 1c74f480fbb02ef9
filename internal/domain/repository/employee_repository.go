package repository

import (
	"context"
	"errors"

	"bureau/internal/domain/entity"
)

// ErrEmployeeNotFound is a domain-specific error returned when an employee is not found.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// FindByUserID retrieves a single employee by their external key.
	FindByUserID(ctx context.Context, userID string) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// ListByAdmin retrieves the active employees belonging to an admin's team.
	ListByAdmin(ctx context.Context, adminUserID string) ([]*entity.Employee, error)

	// Create persists a new employee entity to the storage.
	Create(ctx context.Context, employee *entity.Employee) error
}
