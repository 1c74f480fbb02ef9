package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workflow actions that produce events and notifications.
const (
	ActionTrackUpdated     = "track_updated"
	ActionApprovalChanged  = "approval_changed"
	ActionCustomerAssigned = "customer_assigned"
)

// Notification is a persisted message for an employee, produced by the
// notifier worker from workflow events (e.g. an admin decided an approval on
// one of their customers, or a customer was assigned to them).
type Notification struct {
	ID             uuid.UUID
	EmployeeUserID string
	CustomerUserID string
	Track          Track
	Action         string
	Message        string
	Read           bool
	CreatedAt      time.Time
}

// AssignmentEvent is the audit record written when a customer changes owner.
// FromEmployeeUserID is empty for the first assignment.
type AssignmentEvent struct {
	ID                 uuid.UUID
	CustomerUserID     string
	FromEmployeeUserID string
	ToEmployeeUserID   string
	ActorUserID        string
	CreatedAt          time.Time
}
