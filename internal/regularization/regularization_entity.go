package regularization

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Category string

const (
	CategoryAttendance Category = "ATTENDANCE"
	CategoryLeave      Category = "LEAVE"
)

func ParseCategory(v string) (Category, bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(v))) {
	case CategoryAttendance:
		return CategoryAttendance, true
	case CategoryLeave:
		return CategoryLeave, true
	default:
		return "", false
	}
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Before values recorded when the day carried no leave.
const (
	BeforeNone   = "None"
	BeforeAbsent = "Absent"
)

type Regularization struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID         uuid.UUID         `gorm:"type:uuid;not null;index:idx_regularizations_employee_date,priority:1"`
	Category           Category          `gorm:"type:varchar(16);not null"`
	Date               time.Time         `gorm:"type:date;not null;index:idx_regularizations_employee_date,priority:2"`
	Status             Status            `gorm:"type:varchar(16);not null;index"`
	BeforeStatus       string            `gorm:"type:varchar(16);not null"`
	BeforeLeaveType    string            `gorm:"type:varchar(32);not null"`
	BeforeSnapshot     datatypes.JSONMap `gorm:"type:jsonb"`
	RequestedCheckIn   string            `gorm:"type:varchar(5)"`
	RequestedCheckOut  string            `gorm:"type:varchar(5)"`
	RequestedStatus    string            `gorm:"type:varchar(16)"`
	RequestedLeaveType string            `gorm:"type:varchar(32)"`
	CountAsPresent     bool              `gorm:"not null;default:false"`
	IsHalfDay          bool              `gorm:"not null;default:false"`
	Reason             string            `gorm:"type:text;not null"`
	ApproverID         *uuid.UUID        `gorm:"type:uuid"`
	DecisionNote       string            `gorm:"type:text"`
	LeaveRequestID     *uuid.UUID        `gorm:"type:uuid"`
	DecidedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Regularization) TableName() string {
	return "regularizations"
}

// RefundsOriginal reports whether approving moves days off the leave type
// the day carried before.
func (r Regularization) RefundsOriginal() bool {
	switch r.BeforeLeaveType {
	case "", BeforeNone, BeforeAbsent:
		return false
	}
	return !strings.EqualFold(r.BeforeLeaveType, r.RequestedLeaveType) || r.CountAsPresent
}
