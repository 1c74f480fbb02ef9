package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/repository"
	"bureau/internal/domain/service"
	"bureau/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// RecordWorkflowEvent writes the notification row for one workflow event.
// Routine track updates produce no notification; approval decisions go to
// the assigned employee, reassignments to the new owner. Events caused by
// the recipient themselves are dropped.
func (s *notificationService) RecordWorkflowEvent(ctx context.Context, event *service.WorkflowEvent) error {
	var message string

	switch event.Action {
	case entity.ActionApprovalChanged:
		message = fmt.Sprintf("An admin recorded a decision on the %s track of customer %s.",
			event.Track, event.CustomerUserID)
	case entity.ActionCustomerAssigned:
		message = fmt.Sprintf("Customer %s was assigned to you.", event.CustomerUserID)
	case entity.ActionTrackUpdated:
		s.logger.Debug("skipping notification for routine track update",
			slog.String("event_id", event.EventID),
		)

		return nil
	default:
		return errors.Errorf("unknown workflow action: %s", event.Action)
	}

	if event.EmployeeUserID == "" || event.EmployeeUserID == event.ActorUserID {
		return nil
	}

	notification := &entity.Notification{
		EmployeeUserID: event.EmployeeUserID,
		CustomerUserID: event.CustomerUserID,
		Track:          entity.Track(event.Track),
		Action:         event.Action,
		Message:        message,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to record notification")
	}

	return nil
}

// ListNotifications returns an employee's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, employeeUserID string, limit, offset int) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListByEmployee(ctx, employeeUserID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, id)
}
