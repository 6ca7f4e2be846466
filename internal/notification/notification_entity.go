package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeLeaveApplied          = "LEAVE_APPLIED"
	TypeLeaveApproved         = "LEAVE_APPROVED"
	TypeLeaveRejected         = "LEAVE_REJECTED"
	TypeLeaveCancelled        = "LEAVE_CANCELLED"
	TypeRegularizationApplied = "REGULARIZATION_APPLIED"
	TypeRegularizationDecided = "REGULARIZATION_DECIDED"
)

// Notification targets one employee, or every holder of RecipientRole when
// RecipientEmployeeID is nil.
type Notification struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientEmployeeID *uuid.UUID        `gorm:"type:uuid;index"`
	RecipientRole       string            `gorm:"type:varchar(32);index"`
	Type                string            `gorm:"type:varchar(64);not null"`
	Title               string            `gorm:"type:varchar(200);not null"`
	Message             string            `gorm:"type:text"`
	EntityType          string            `gorm:"type:varchar(64)"`
	EntityID            string            `gorm:"type:varchar(64)"`
	Meta                datatypes.JSONMap `gorm:"type:jsonb"`
	ReadAt              *time.Time
	CreatedAt           time.Time
}

func (Notification) TableName() string {
	return "notifications"
}

// Message is what producers hand to Notify.
type Message struct {
	EmployeeID string
	Role       string
	Type       string
	Title      string
	Body       string
	EntityType string
	EntityID   string
	Meta       map[string]any
}
