package handler

import (
	"net/http"
	"strconv"
	"time"

	"bureau/internal/delivery/http/middleware"
	"bureau/internal/delivery/http/response"
	"bureau/internal/domain/entity"
	"bureau/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// NotificationHandler serves an employee's notification feed.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type notificationResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerUserID string    `json:"customer_user_id"`
	Track          string    `json:"track"`
	Action         string    `json:"action"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

func toNotificationResponse(n *entity.Notification) notificationResponse {
	return notificationResponse{
		ID:             n.ID,
		CustomerUserID: n.CustomerUserID,
		Track:          string(n.Track),
		Action:         n.Action,
		Message:        n.Message,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ListNotifications returns the acting employee's notifications, newest
// first. Supports ?limit= and ?offset= paging.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	limit := parsePositiveInt(c.QueryParam("limit"), defaultNotificationLimit)
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	offset := parsePositiveInt(c.QueryParam("offset"), 0)

	notifications, err := h.uc.ListNotifications(c.Request().Context(), actor.UserID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]notificationResponse, len(notifications))
	for i, notification := range notifications {
		results[i] = toNotificationResponse(notification)
	}

	return response.Success(c, http.StatusOK, map[string]any{"results": results}, "")
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if _, ok := middleware.Actor(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
