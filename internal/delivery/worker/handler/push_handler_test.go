package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bureau/internal/domain/entity"
	"bureau/internal/domain/service"
	mocks "bureau/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mocks.MockNotificationUsecase) {
	t.Helper()

	uc := mocks.NewMockNotificationUsecase(t)
	handler := &PushHandler{
		verifyPushAuth:  false,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc: uc,
	}

	return handler, uc
}

func pushRequest(t *testing.T, event *service.WorkflowEvent, attributes map[string]string) *bytes.Buffer {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/workflow-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func doPush(t *testing.T, handler *PushHandler, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_HandlePush_RecordsEvent(t *testing.T) {
	handler, uc := newPushHandler(t)

	event := &service.WorkflowEvent{
		EventID:        "evt-1",
		Action:         entity.ActionApprovalChanged,
		CustomerUserID: "cust-1",
		Track:          "payment",
		ActorUserID:    "admin-1",
		EmployeeUserID: "emp-1",
	}

	uc.EXPECT().
		RecordWorkflowEvent(mock.Anything, mock.MatchedBy(func(got *service.WorkflowEvent) bool {
			return got.EventID == "evt-1" &&
				got.Action == entity.ActionApprovalChanged &&
				got.EmployeeUserID == "emp-1"
		})).
		Return(nil)

	rec := doPush(t, handler, pushRequest(t, event, map[string]string{"request_id": "req-42"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StorageFailureTriggersRetry(t *testing.T) {
	handler, uc := newPushHandler(t)

	event := &service.WorkflowEvent{
		EventID:        "evt-2",
		Action:         entity.ActionCustomerAssigned,
		CustomerUserID: "cust-1",
		EmployeeUserID: "emp-2",
	}

	uc.EXPECT().
		RecordWorkflowEvent(mock.Anything, mock.Anything).
		Return(assert.AnError)

	rec := doPush(t, handler, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownActionDropped(t *testing.T) {
	handler, _ := newPushHandler(t)

	event := &service.WorkflowEvent{
		EventID:        "evt-3",
		Action:         "customer_deleted",
		CustomerUserID: "cust-1",
	}

	rec := doPush(t, handler, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MissingCustomerDropped(t *testing.T) {
	handler, _ := newPushHandler(t)

	event := &service.WorkflowEvent{
		EventID: "evt-4",
		Action:  entity.ActionApprovalChanged,
	}

	rec := doPush(t, handler, pushRequest(t, event, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64Rejected(t *testing.T) {
	handler, _ := newPushHandler(t)

	var msg PubSubMessage
	msg.Message.Data = "not-base64!!"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	rec := doPush(t, handler, bytes.NewBuffer(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_Priority(t *testing.T) {
	handler, _ := newPushHandler(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	event := &service.WorkflowEvent{RequestID: "from-event"}

	got := handler.extractRequestID(context.Background(), &msg, event)
	assert.Equal(t, "from-attributes", got)

	msg.Message.Attributes = nil
	got = handler.extractRequestID(context.Background(), &msg, event)
	assert.Equal(t, "from-event", got)

	event.RequestID = ""
	got = handler.extractRequestID(context.Background(), &msg, event)
	assert.NotEmpty(t, got)
}
