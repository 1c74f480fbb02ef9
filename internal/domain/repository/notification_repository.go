package repository

import (
	"context"
	"errors"

	"bureau/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is a domain-specific error returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the operations for persisted employee notifications.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByEmployee retrieves an employee's notifications, newest first.
	ListByEmployee(ctx context.Context, employeeUserID string, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a single notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
