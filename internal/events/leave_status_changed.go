package events

import "time"

const (
	LeaveStatusTopic               = "hr.leave.status.v1"
	LeaveStatusChangedEventType    = "leave_status_changed"
	RegularizationDecidedEventType = "regularization_decided"
)

// LeaveStatusChangedEvent is consumed by the external email/SMS sender.
type LeaveStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	TenantID       string    `json:"tenant_id"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	ActorID        string    `json:"actor_id"`
	LeaveType      string    `json:"leave_type"`
	Status         string    `json:"status"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
