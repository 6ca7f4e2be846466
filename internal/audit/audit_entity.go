package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionGeoFencingViolation    = "ATTENDANCE_GEOFENCE_VIOLATION"
	ActionIPRestrictionViolation = "ATTENDANCE_IP_VIOLATION"
	ActionPunchModeViolation     = "ATTENDANCE_PUNCH_MODE_VIOLATION"
	ActionPunchLimitExceeded     = "ATTENDANCE_PUNCH_LIMIT_EXCEEDED"
	ActionAttendanceOverride     = "ATTENDANCE_OVERRIDE"
	ActionBalanceDebit           = "LEAVE_BALANCE_DEBIT"
	ActionBalanceRefund          = "LEAVE_BALANCE_REFUND"
	ActionRegularizationDecided  = "REGULARIZATION_DECIDED"
	ActionServerShutdown         = "SERVER_SHUTDOWN"
)

// AuditLog lives in every tenant database.
type AuditLog struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action     string            `gorm:"type:varchar(64);not null;index"`
	ActorID    string            `gorm:"type:varchar(64);index"`
	EntityType string            `gorm:"type:varchar(64);index:idx_audit_entity"`
	EntityID   string            `gorm:"type:varchar(64);index:idx_audit_entity"`
	Message    string            `gorm:"type:text"`
	Before     datatypes.JSON    `gorm:"type:jsonb"`
	After      datatypes.JSON    `gorm:"type:jsonb"`
	Meta       datatypes.JSONMap `gorm:"type:jsonb"`
	RequestID  string            `gorm:"type:varchar(64)"`
	CreatedAt  time.Time         `gorm:"not null;default:now()"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Entry is what callers hand to a logger; Before/After are marshalled as json.
type Entry struct {
	Action     string
	ActorID    string
	EntityType string
	EntityID   string
	Message    string
	Before     any
	After      any
	Meta       map[string]any
}
