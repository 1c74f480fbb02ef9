package handler

import (
	"net/http"
	"testing"
	"time"

	"bureau/internal/domain/entity"
	mocks "bureau/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(uc)

	uc.EXPECT().
		ListNotifications(mock.Anything, "emp-1", 20, 0).
		Return([]*entity.Notification{
			{
				ID:             uuid.New(),
				EmployeeUserID: "emp-1",
				CustomerUserID: "cust-1",
				Track:          entity.TrackPayment,
				Action:         entity.ActionApprovalChanged,
				Message:        "An admin recorded a decision on the payment track of customer cust-1.",
				CreatedAt:      time.Now(),
			},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/notifications", nil, "")
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "approval_changed")
}

func TestNotificationHandler_ListNotifications_Paging(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(uc)

	uc.EXPECT().
		ListNotifications(mock.Anything, "emp-1", 5, 10).
		Return(nil, nil)

	c, rec := newTestContext(t, http.MethodGet, "/notifications?limit=5&offset=10", nil, "")
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_ListNotifications_LimitClamped(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(uc)

	uc.EXPECT().
		ListNotifications(mock.Anything, "emp-1", 100, 0).
		Return(nil, nil)

	c, rec := newTestContext(t, http.MethodGet, "/notifications?limit=5000", nil, "")
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(uc)

	id := uuid.New()
	uc.EXPECT().
		MarkRead(mock.Anything, id).
		Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/notifications/"+id.String()+"/read", nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_BadID(t *testing.T) {
	uc := mocks.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(uc)

	c, rec := newTestContext(t, http.MethodPost, "/notifications/not-a-uuid/read", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	actAs(c, "emp-1", "employee")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
