package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LeaveBalance struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year,priority:1"`
	LeaveType  string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_leave_balance_employee_type_year,priority:2"`
	Year       int             `gorm:"not null;uniqueIndex:uq_leave_balance_employee_type_year,priority:3"`
	Total      decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	Used       decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	Pending    decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	Available  decimal.Decimal `gorm:"type:numeric(7,2);not null"`
	Version    int64           `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// Recompute derives Available. Every write path goes through it.
func (b *LeaveBalance) Recompute() {
	b.Available = b.Total.Sub(b.Used).Sub(b.Pending)
}

func (b *LeaveBalance) BeforeSave(*gorm.DB) error {
	b.Recompute()
	return nil
}

// Key addresses one ledger row.
type Key struct {
	EmployeeID string
	LeaveType  string
	Year       int
}
