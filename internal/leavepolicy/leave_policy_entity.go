package leavepolicy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Scope string

const (
	ScopeAll         Scope = "ALL"
	ScopeRoles       Scope = "ROLES"
	ScopeDepartments Scope = "DEPARTMENTS"
	ScopeEmployee    Scope = "EMPLOYEE"
)

const DefaultColor = "#9E9E9E"

type Rule struct {
	LeaveType         string          `json:"leave_type"`
	AnnualEntitlement decimal.Decimal `json:"annual_entitlement"`
	AccruesMonthly    bool            `json:"accrues_monthly"`
	CarryForward      bool            `json:"carry_forward"`
	CarryForwardCap   decimal.Decimal `json:"carry_forward_cap"`
	RequiresApproval  bool            `json:"requires_approval"`
	Color             string          `json:"color,omitempty"`
}

type LeavePolicy struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string                      `gorm:"type:varchar(150);not null"`
	Scope              Scope                       `gorm:"type:varchar(16);not null"`
	ScopeRoles         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ScopeDepartmentIDs datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ScopeEmployeeID    *uuid.UUID                  `gorm:"type:uuid"`
	Active             bool                        `gorm:"not null"`
	Rules              datatypes.JSONSlice[Rule]   `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

// NormalizeLeaveType is the stored form of a leave type code: upper case
// with inner whitespace collapsed. Rules, balance rows and requests all
// carry it so ledger keys match exactly.
func NormalizeLeaveType(code string) string {
	return strings.Join(strings.Fields(strings.ToUpper(code)), " ")
}

// RuleFor matches leave type codes case-insensitively.
func (p LeavePolicy) RuleFor(leaveType string) (Rule, bool) {
	want := NormalizeLeaveType(leaveType)
	for _, r := range p.Rules {
		if NormalizeLeaveType(r.LeaveType) == want {
			return r, true
		}
	}
	return Rule{}, false
}

// ColorFor falls back to DefaultColor.
func (p LeavePolicy) ColorFor(leaveType string) string {
	if r, ok := p.RuleFor(leaveType); ok && r.Color != "" {
		return r.Color
	}
	return DefaultColor
}
