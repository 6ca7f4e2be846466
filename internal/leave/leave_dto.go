package leave

import "github.com/shopspring/decimal"

type ApplyRequest struct {
	EmployeeID     string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveType      string `json:"leave_type" binding:"required,max=32"`
	StartDate      string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsHalfDay      bool   `json:"is_half_day"`
	HalfDayTarget  string `json:"half_day_target" binding:"omitempty,max=8"`
	HalfDaySession string `json:"half_day_session" binding:"max=32"`
	Reason         string `json:"reason" binding:"max=1000"`
}

type EditRequest struct {
	LeaveType      string `json:"leave_type" binding:"required,max=32"`
	StartDate      string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsHalfDay      bool   `json:"is_half_day"`
	HalfDayTarget  string `json:"half_day_target" binding:"omitempty,max=8"`
	HalfDaySession string `json:"half_day_session" binding:"max=32"`
	Reason         string `json:"reason" binding:"max=1000"`
}

type DecisionRequest struct {
	Note string `json:"note" binding:"max=500"`
}

type Scope string

const (
	ScopeMine Scope = "mine"
	ScopeTeam Scope = "team"
	ScopeAll  Scope = "all"
)

type ListQuery struct {
	Scope     Scope
	Status    Status
	LeaveType string
}

type LeaveResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	AppliedBy       string          `json:"applied_by"`
	LeaveType       string          `json:"leave_type"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	IsHalfDay       bool            `json:"is_half_day"`
	HalfDayTarget   string          `json:"half_day_target,omitempty"`
	HalfDaySession  string          `json:"half_day_session,omitempty"`
	DaysCount       decimal.Decimal `json:"days_count"`
	PaidLeaveDays   decimal.Decimal `json:"paid_leave_days"`
	UnpaidLeaveDays decimal.Decimal `json:"unpaid_leave_days"`
	AccountingYear  int             `json:"accounting_year"`
	Reason          string          `json:"reason"`
	Status          string          `json:"status"`
	Source          string          `json:"source"`
	ApproverID      *string         `json:"approver_id,omitempty"`
	DecisionNote    string          `json:"decision_note,omitempty"`
	DecidedAt       *string         `json:"decided_at,omitempty"`
	CreatedAt       string          `json:"created_at"`
}
