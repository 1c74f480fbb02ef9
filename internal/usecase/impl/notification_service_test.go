package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/repository"
	"bureau/internal/domain/service"
	mockRepo "bureau/internal/mocks/repository"
	"bureau/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	notificationService := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return notificationService, notificationRepo
}

func TestNotificationService_RecordWorkflowEvent_ApprovalChanged(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.EmployeeUserID == "emp-1" &&
				notification.CustomerUserID == "cust-1" &&
				notification.Track == entity.TrackPayment &&
				notification.Action == entity.ActionApprovalChanged
		})).
		Return(nil)

	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-1",
		Action:         entity.ActionApprovalChanged,
		CustomerUserID: "cust-1",
		Track:          "payment",
		ActorUserID:    "admin-1",
		EmployeeUserID: "emp-1",
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordWorkflowEvent_CustomerAssigned(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()

	notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.EmployeeUserID == "emp-2" &&
				notification.Message == "Customer cust-1 was assigned to you."
		})).
		Return(nil)

	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-2",
		Action:         entity.ActionCustomerAssigned,
		CustomerUserID: "cust-1",
		ActorUserID:    "admin-1",
		EmployeeUserID: "emp-2",
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordWorkflowEvent_RoutineUpdateSkipped(t *testing.T) {
	notificationService, _ := createTestNotificationService(t)

	ctx := context.Background()

	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-3",
		Action:         entity.ActionTrackUpdated,
		CustomerUserID: "cust-1",
		ActorUserID:    "emp-1",
		EmployeeUserID: "emp-1",
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordWorkflowEvent_SelfActionDropped(t *testing.T) {
	notificationService, _ := createTestNotificationService(t)

	ctx := context.Background()

	// An admin deciding on their own customer gets no notification.
	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-4",
		Action:         entity.ActionApprovalChanged,
		CustomerUserID: "cust-1",
		Track:          "agreement",
		ActorUserID:    "admin-1",
		EmployeeUserID: "admin-1",
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordWorkflowEvent_UnassignedCustomerDropped(t *testing.T) {
	notificationService, _ := createTestNotificationService(t)

	ctx := context.Background()

	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-5",
		Action:         entity.ActionApprovalChanged,
		CustomerUserID: "cust-1",
		Track:          "payment",
		ActorUserID:    "admin-1",
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordWorkflowEvent_UnknownAction(t *testing.T) {
	notificationService, _ := createTestNotificationService(t)

	ctx := context.Background()

	err := notificationService.RecordWorkflowEvent(ctx, &service.WorkflowEvent{
		EventID:        "evt-6",
		Action:         "customer_deleted",
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-1",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown workflow action")
}

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	notifications := []*entity.Notification{
		{ID: uuid.New(), EmployeeUserID: "emp-1", Message: "Customer cust-1 was assigned to you."},
	}

	notificationRepo.EXPECT().
		ListByEmployee(ctx, "emp-1", 20, 0).
		Return(notifications, nil)

	got, err := notificationService.ListNotifications(ctx, "emp-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, notifications, got)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	notificationService, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	id := uuid.New()

	notificationRepo.EXPECT().
		MarkRead(ctx, id).
		Return(repository.ErrNotificationNotFound)

	err := notificationService.MarkRead(ctx, id)
	assert.Error(t, err)
}
