package repository

import (
	"context"

	"bureau/internal/domain/entity"
)

// AssignmentEventRepository records the ownership-change audit trail.
type AssignmentEventRepository interface {
	// Create persists one assignment event.
	Create(ctx context.Context, event *entity.AssignmentEvent) error

	// ListByCustomer retrieves a customer's assignment history, newest first.
	ListByCustomer(ctx context.Context, customerUserID string) ([]*entity.AssignmentEvent, error)
}
