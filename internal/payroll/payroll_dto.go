package payroll

import "github.com/shopspring/decimal"

type CreateTemplateRequest struct {
	Name      string          `json:"name" binding:"required,max=100"`
	Basic     decimal.Decimal `json:"basic"`
	Allowance decimal.Decimal `json:"allowance"`
}

type RunRequest struct {
	Period string `json:"period" binding:"required,datetime=2006-01"`
}

type TemplateResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Basic     decimal.Decimal `json:"basic"`
	Allowance decimal.Decimal `json:"allowance"`
	Gross     decimal.Decimal `json:"gross"`
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	RunID           string          `json:"run_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeCode    string          `json:"employee_code"`
	EmployeeName    string          `json:"employee_name"`
	TemplateName    string          `json:"template_name"`
	Basic           decimal.Decimal `json:"basic"`
	Allowance       decimal.Decimal `json:"allowance"`
	Gross           decimal.Decimal `json:"gross"`
	UnpaidLeaveDays decimal.Decimal `json:"unpaid_leave_days"`
	AbsentDays      int             `json:"absent_days"`
	LOPDays         decimal.Decimal `json:"lop_days"`
	Net             decimal.Decimal `json:"net"`
}

type RunResponse struct {
	ID          string            `json:"id"`
	Period      string            `json:"period"`
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	PeriodDays  int               `json:"period_days"`
	TotalNet    decimal.Decimal   `json:"total_net"`
	CreatedBy   string            `json:"created_by"`
	CreatedAt   string            `json:"created_at"`
	Payslips    []PayslipResponse `json:"payslips"`
}
