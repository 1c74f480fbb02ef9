package usecase

import (
	"context"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationUsecase turns workflow events into persisted notifications
// and serves them back to employees.
type NotificationUsecase interface {
	// RecordWorkflowEvent writes the notification row(s) for one event.
	// Called by the notifier worker's push handler.
	RecordWorkflowEvent(ctx context.Context, event *service.WorkflowEvent) error

	// ListNotifications returns an employee's notifications, newest first.
	ListNotifications(ctx context.Context, employeeUserID string, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
