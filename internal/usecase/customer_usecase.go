// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"bureau/internal/domain/entity"
)

// Customer list filters. The composite filters are computed from resolved
// statuses, never stored.
const (
	FilterAll             = ""
	FilterNoAction        = "no-action"
	FilterPendingApproval = "pending-approval"
)

// --- Input DTOs ---

// ListCustomersInput scopes and filters the customer list.
type ListCustomersInput struct {
	Actor  entity.Actor
	Filter string
	Search string
}

// FileUpload carries one uploaded document for a file-typed track field.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UpdateTrackInput is the partial-update request: only the fields present
// in Fields/Files are written. The target track is derived from the field
// names; mixing tracks in one request is rejected.
type UpdateTrackInput struct {
	Actor          entity.Actor
	CustomerUserID string
	Fields         map[string]any
	Files          map[string]*FileUpload
}

// AssignCustomerInput reassigns a customer to an employee.
type AssignCustomerInput struct {
	Actor          entity.Actor
	CustomerUserID string
	EmployeeUserID string
}

// --- Output DTOs ---

// CustomerView pairs the customer record with its resolved composite status.
type CustomerView struct {
	Customer  *entity.Customer
	Composite entity.CompositeStatus
}

// CustomerUsecase defines the interface for customer lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CustomerUsecase interface {
	// ListCustomers returns the customers visible to the actor: an employee
	// sees their own, an admin sees the whole team's.
	ListCustomers(ctx context.Context, input ListCustomersInput) ([]*CustomerView, error)

	// GetCustomer returns one visible customer with its composite status.
	GetCustomer(ctx context.Context, actor entity.Actor, customerUserID string) (*CustomerView, error)

	// UpdateTrack applies a single-track partial update and returns the
	// authoritative record after the write.
	UpdateTrack(ctx context.Context, input UpdateTrackInput) (*CustomerView, error)

	// AssignCustomer replaces the customer's owner and writes the audit row
	// in the same transaction.
	AssignCustomer(ctx context.Context, input AssignCustomerInput) error

	// GenerateProfileQR renders the shareable profile QR code PNG.
	GenerateProfileQR(ctx context.Context, actor entity.Actor, customerUserID string) ([]byte, error)
}
