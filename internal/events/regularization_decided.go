package events

import "time"

// RegularizationDecidedEvent shares the leave status topic so one sender
// handles both.
type RegularizationDecidedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	TenantID         string    `json:"tenant_id"`
	RegularizationID string    `json:"regularization_id"`
	EmployeeID       string    `json:"employee_id"`
	ActorID          string    `json:"actor_id"`
	Category         string    `json:"category"`
	Date             string    `json:"date"`
	Status           string    `json:"status"`
	LeaveRequestID   string    `json:"leave_request_id,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}
