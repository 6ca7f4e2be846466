package leavepolicy

import (
	"slices"
	"strings"

	"go-hrms/internal/employee"
)

// Applicable picks the most specific active policy for empl: employee scope,
// then department, then role, then ALL. Ties go to the first in policies.
func Applicable(policies []LeavePolicy, empl employee.Employee) (*LeavePolicy, bool) {
	rank := func(p LeavePolicy) int {
		switch p.Scope {
		case ScopeEmployee:
			if p.ScopeEmployeeID != nil && *p.ScopeEmployeeID == empl.ID {
				return 4
			}
		case ScopeDepartments:
			if empl.DepartmentID != nil && slices.Contains([]string(p.ScopeDepartmentIDs), empl.DepartmentID.String()) {
				return 3
			}
		case ScopeRoles:
			for _, role := range p.ScopeRoles {
				if empl.Role != "" && strings.EqualFold(role, empl.Role) {
					return 2
				}
			}
		case ScopeAll:
			return 1
		}
		return 0
	}

	best, bestRank := -1, 0
	for i, p := range policies {
		if !p.Active {
			continue
		}
		if r := rank(p); r > bestRank {
			best, bestRank = i, r
		}
	}
	if best < 0 {
		return nil, false
	}
	return &policies[best], true
}
