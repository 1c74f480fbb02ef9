package model

import (
	"time"

	"bureau/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationModel stores messages the notifier worker produces for
// employees from workflow events.
type NotificationModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeUserID string    `gorm:"column:employee_user_id;type:varchar(32);index;not null"`
	CustomerUserID string    `gorm:"column:customer_user_id;type:varchar(32);not null"`
	Track          string    `gorm:"column:track;type:varchar(16)"`
	Action         string    `gorm:"column:action;type:varchar(32);not null"`
	Message        string    `gorm:"column:message;type:text;not null"`
	Read           bool      `gorm:"column:read;not null;default:false"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName sets the table name for NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to the domain entity.
func (m *NotificationModel) ToDomain() *entity.Notification {
	return &entity.Notification{
		ID:             m.ID,
		EmployeeUserID: m.EmployeeUserID,
		CustomerUserID: m.CustomerUserID,
		Track:          entity.Track(m.Track),
		Action:         m.Action,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

// FromNotificationDomain converts the domain entity to the persistence model.
func FromNotificationDomain(n *entity.Notification) *NotificationModel {
	return &NotificationModel{
		ID:             n.ID,
		EmployeeUserID: n.EmployeeUserID,
		CustomerUserID: n.CustomerUserID,
		Track:          string(n.Track),
		Action:         n.Action,
		Message:        n.Message,
		Read:           n.Read,
	}
}
