package leavepolicy

import (
	"testing"
	"time"

	"go-hrms/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestApplicable(t *testing.T) {
	dept := uuid.New()
	empl := employee.Employee{ID: uuid.New(), DepartmentID: &dept, Role: "Engineer"}
	other := uuid.New()

	all := LeavePolicy{Name: "all", Scope: ScopeAll, Active: true}
	byRole := LeavePolicy{Name: "role", Scope: ScopeRoles, ScopeRoles: datatypes.JSONSlice[string]{"engineer"}, Active: true}
	byDept := LeavePolicy{Name: "dept", Scope: ScopeDepartments, ScopeDepartmentIDs: datatypes.JSONSlice[string]{dept.String()}, Active: true}
	byEmpl := LeavePolicy{Name: "empl", Scope: ScopeEmployee, ScopeEmployeeID: &empl.ID, Active: true}
	otherEmpl := LeavePolicy{Name: "other", Scope: ScopeEmployee, ScopeEmployeeID: &other, Active: true}
	inactive := byEmpl
	inactive.Name = "inactive"
	inactive.Active = false

	tests := []struct {
		name     string
		policies []LeavePolicy
		want     string
	}{
		{"employee beats everything", []LeavePolicy{all, byRole, byDept, byEmpl}, "empl"},
		{"department beats role", []LeavePolicy{all, byRole, byDept}, "dept"},
		{"role beats all", []LeavePolicy{all, byRole}, "role"},
		{"all as fallback", []LeavePolicy{otherEmpl, all}, "all"},
		{"inactive ignored", []LeavePolicy{inactive, byRole}, "role"},
		{"first wins at equal rank", []LeavePolicy{all, {Name: "all-2", Scope: ScopeAll, Active: true}}, "all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Applicable(tt.policies, empl)
			require.True(t, ok)
			assert.Equal(t, tt.want, p.Name)
		})
	}

	t.Run("nothing applies", func(t *testing.T) {
		_, ok := Applicable([]LeavePolicy{otherEmpl, inactive}, empl)
		assert.False(t, ok)
	})
}

func TestAccrual(t *testing.T) {
	at := func(y int, m time.Month) time.Time { return time.Date(y, m, 15, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 4, ElapsedCycleMonths(2026, 1, at(2026, time.April)))
	assert.Equal(t, 1, ElapsedCycleMonths(2026, 4, at(2026, time.April)))
	assert.Equal(t, 10, ElapsedCycleMonths(2025, 4, at(2026, time.January)))
	assert.Equal(t, 12, ElapsedCycleMonths(2024, 1, at(2026, time.January)))
	assert.Equal(t, 0, ElapsedCycleMonths(2027, 1, at(2026, time.January)))

	monthly := Rule{AnnualEntitlement: decimal.NewFromInt(12), AccruesMonthly: true}
	assert.Equal(t, "4", Entitlement(monthly, 4).String())
	odd := Rule{AnnualEntitlement: decimal.NewFromInt(10), AccruesMonthly: true}
	assert.Equal(t, "2.5", Entitlement(odd, 3).String())
	flat := Rule{AnnualEntitlement: decimal.NewFromInt(15)}
	assert.Equal(t, "15", Entitlement(flat, 1).String())

	cf := Rule{CarryForward: true, CarryForwardCap: decimal.NewFromInt(5)}
	assert.Equal(t, "5", CarryForward(cf, decimal.NewFromInt(8)).String())
	assert.Equal(t, "3", CarryForward(cf, decimal.NewFromInt(3)).String())
	assert.True(t, CarryForward(cf, decimal.NewFromInt(-2)).IsZero())
	assert.True(t, CarryForward(Rule{}, decimal.NewFromInt(8)).IsZero())
}

func TestPolicyRuleFor(t *testing.T) {
	p := LeavePolicy{Rules: datatypes.JSONSlice[Rule]{{LeaveType: "CL", Color: "#4CAF50"}, {LeaveType: "SL"}}}

	r, ok := p.RuleFor(" cl ")
	require.True(t, ok)
	assert.Equal(t, "CL", r.LeaveType)
	assert.Equal(t, "#4CAF50", p.ColorFor("CL"))
	assert.Equal(t, DefaultColor, p.ColorFor("SL"))
	assert.Equal(t, DefaultColor, p.ColorFor("EL"))
}
