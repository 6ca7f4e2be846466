package leavepolicy

import "github.com/shopspring/decimal"

type RuleRequest struct {
	LeaveType         string          `json:"leave_type" binding:"required,max=32"`
	AnnualEntitlement decimal.Decimal `json:"annual_entitlement"`
	AccruesMonthly    bool            `json:"accrues_monthly"`
	CarryForward      bool            `json:"carry_forward"`
	CarryForwardCap   decimal.Decimal `json:"carry_forward_cap"`
	RequiresApproval  bool            `json:"requires_approval"`
	Color             string          `json:"color" binding:"omitempty,max=16"`
}

type UpsertPolicyRequest struct {
	Name               string        `json:"name" binding:"required,max=150"`
	Scope              string        `json:"scope" binding:"required,oneof=ALL ROLES DEPARTMENTS EMPLOYEE"`
	ScopeRoles         []string      `json:"scope_roles"`
	ScopeDepartmentIDs []string      `json:"scope_department_ids" binding:"omitempty,dive,uuid"`
	ScopeEmployeeID    string        `json:"scope_employee_id" binding:"omitempty,uuid"`
	Active             *bool         `json:"active"`
	Rules              []RuleRequest `json:"rules" binding:"required,min=1,dive"`
}

type AssignPolicyRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	// Year defaults to the current accounting year.
	Year int `json:"year" binding:"omitempty,gte=2000,lte=2100"`
}

type AssignResult struct {
	PolicyID string `json:"policy_id"`
	Year     int    `json:"year"`
	Assigned int    `json:"assigned"`
	Balances int    `json:"balances"`
}

type PolicyResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Scope              string   `json:"scope"`
	ScopeRoles         []string `json:"scope_roles,omitempty"`
	ScopeDepartmentIDs []string `json:"scope_department_ids,omitempty"`
	ScopeEmployeeID    string   `json:"scope_employee_id,omitempty"`
	Active             bool     `json:"active"`
	Rules              []Rule   `json:"rules"`
}
