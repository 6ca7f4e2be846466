package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryTemplate is a monthly pay grade; employees point at one through
// Employee.SalaryTemplateID.
type SalaryTemplate struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_salary_template_name"`
	Basic     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Allowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryTemplate) TableName() string {
	return "salary_templates"
}

func (t SalaryTemplate) Gross() decimal.Decimal {
	return t.Basic.Add(t.Allowance)
}

type Run struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Period      string          `gorm:"type:varchar(7);not null;uniqueIndex:uq_payroll_runs_period"`
	PeriodStart time.Time       `gorm:"type:date;not null"`
	PeriodEnd   time.Time       `gorm:"type:date;not null"`
	PeriodDays  int             `gorm:"not null"`
	TotalNet    decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	Payslips    []Payslip `gorm:"foreignKey:RunID"`
}

func (Run) TableName() string {
	return "payroll_runs"
}

type Payslip struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeCode    string          `gorm:"type:varchar(32);not null"`
	EmployeeName    string          `gorm:"type:varchar(255);not null"`
	TemplateName    string          `gorm:"type:varchar(100);not null"`
	Basic           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Allowance       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Gross           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	UnpaidLeaveDays decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	AbsentDays      int             `gorm:"not null"`
	LOPDays         decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	Net             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt       time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}
