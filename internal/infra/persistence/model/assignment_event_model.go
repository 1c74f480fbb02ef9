package model

import (
	"time"

	"bureau/internal/domain/entity"

	"github.com/google/uuid"
)

// AssignmentEventModel is the audit trail of customer ownership changes.
type AssignmentEventModel struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerUserID     string    `gorm:"column:customer_user_id;type:varchar(32);index;not null"`
	FromEmployeeUserID string    `gorm:"column:from_employee_user_id;type:varchar(32)"`
	ToEmployeeUserID   string    `gorm:"column:to_employee_user_id;type:varchar(32);not null"`
	ActorUserID        string    `gorm:"column:actor_user_id;type:varchar(32);not null"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName sets the table name for AssignmentEventModel.
func (AssignmentEventModel) TableName() string {
	return "assignment_events"
}

// ToDomain converts the persistence model to the domain entity.
func (m *AssignmentEventModel) ToDomain() *entity.AssignmentEvent {
	return &entity.AssignmentEvent{
		ID:                 m.ID,
		CustomerUserID:     m.CustomerUserID,
		FromEmployeeUserID: m.FromEmployeeUserID,
		ToEmployeeUserID:   m.ToEmployeeUserID,
		ActorUserID:        m.ActorUserID,
		CreatedAt:          m.CreatedAt,
	}
}

// FromAssignmentEventDomain converts the domain entity to the persistence model.
func FromAssignmentEventDomain(e *entity.AssignmentEvent) *AssignmentEventModel {
	return &AssignmentEventModel{
		ID:                 e.ID,
		CustomerUserID:     e.CustomerUserID,
		FromEmployeeUserID: e.FromEmployeeUserID,
		ToEmployeeUserID:   e.ToEmployeeUserID,
		ActorUserID:        e.ActorUserID,
	}
}
