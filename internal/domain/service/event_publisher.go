package service

import (
	"context"
)

// WorkflowEvent describes one workflow change: a track update, an admin
// approval decision, or a customer reassignment. The notifier worker turns
// these into persisted employee notifications.
type WorkflowEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	EventID        string   `json:"event_id"`
	Action         string   `json:"action"` // track_updated, approval_changed, customer_assigned
	CustomerUserID string   `json:"customer_user_id"`
	Track          string   `json:"track,omitempty"`
	Fields         []string `json:"fields,omitempty"` // changed field names
	ActorUserID    string   `json:"actor_user_id"`
	EmployeeUserID string   `json:"employee_user_id"` // notification target (assigned employee)
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWorkflowEvent publishes a workflow event for async processing
	PublishWorkflowEvent(ctx context.Context, event *WorkflowEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
