package leave

import (
	"strings"
	"time"

	"go-hrms/internal/leavebalance"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Holds reports whether the request still blocks its date range.
func (s Status) Holds() bool {
	return s == StatusPending || s == StatusApproved
}

type HalfDayTarget string

const (
	HalfDayStart HalfDayTarget = "START"
	HalfDayEnd   HalfDayTarget = "END"
)

func ParseHalfDayTarget(v string) (HalfDayTarget, bool) {
	switch HalfDayTarget(strings.ToUpper(strings.TrimSpace(v))) {
	case HalfDayStart:
		return HalfDayStart, true
	case HalfDayEnd:
		return HalfDayEnd, true
	default:
		return "", false
	}
}

type Source string

const (
	SourceApply          Source = "APPLY"
	SourceRegularization Source = "REGULARIZATION"
)

type LeaveRequest struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates,priority:1"`
	AppliedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	LeaveType      string          `gorm:"type:varchar(32);not null"`
	StartDate      time.Time       `gorm:"type:date;not null;index:idx_leave_requests_employee_dates,priority:2"`
	EndDate        time.Time       `gorm:"type:date;not null;index:idx_leave_requests_employee_dates,priority:3"`
	IsHalfDay      bool            `gorm:"not null"`
	HalfDayTarget  HalfDayTarget   `gorm:"type:varchar(8)"`
	HalfDaySession string          `gorm:"type:varchar(32)"`
	DaysCount      decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	PaidDays       decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	UnpaidDays     decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	AccountingYear int             `gorm:"not null"`
	Reason         string          `gorm:"type:text"`
	Status         Status          `gorm:"type:varchar(16);not null;index"`
	Source         Source          `gorm:"type:varchar(16);not null"`
	ApproverID     *uuid.UUID      `gorm:"type:uuid"`
	DecisionNote   string          `gorm:"type:text"`
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// BalanceKey addresses the ledger row the paid days are booked against.
func (l LeaveRequest) BalanceKey() leavebalance.Key {
	return leavebalance.Key{
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		Year:       l.AccountingYear,
	}
}

// HalfDayDate is the boundary date booked as a half day.
func (l LeaveRequest) HalfDayDate() (time.Time, bool) {
	if !l.IsHalfDay {
		return time.Time{}, false
	}
	if l.HalfDayTarget == HalfDayEnd {
		return l.EndDate, true
	}
	return l.StartDate, true
}
