// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bureau/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByUserID retrieves a single customer by their immutable external key.
	FindByUserID(ctx context.Context, userID string) (*entity.Customer, error)

	// ListByEmployees retrieves the customers currently assigned to any of the
	// given employees, ordered by most recently updated first.
	ListByEmployees(ctx context.Context, employeeUserIDs []string) ([]*entity.Customer, error)

	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// UpdateFields applies a partial update: only the given field/value pairs
	// are written, keyed by track field name. Values must already be in their
	// storage representation.
	UpdateFields(ctx context.Context, userID string, fields map[string]any) error

	// UpdateAssignment replaces the customer's owning employee. Ownership is
	// exclusive: the previous assignment is overwritten, never duplicated.
	UpdateAssignment(ctx context.Context, customerUserID string, employee *entity.EmployeeRef) error
}
