package leavebalance

import "github.com/shopspring/decimal"

type BalanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	LeaveType  string          `json:"leave_type"`
	Year       int             `json:"year"`
	Total      decimal.Decimal `json:"total"`
	Used       decimal.Decimal `json:"used"`
	Pending    decimal.Decimal `json:"pending"`
	Available  decimal.Decimal `json:"available"`
}
