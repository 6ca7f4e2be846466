package rbac

import (
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("")
	require.NoError(t, err)

	svc := NewService(enforcer)
	require.NoError(t, svc.LoadDefaultPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name     string
		role     domain.Role
		resource string
		action   string
		allowed  bool
	}{
		{"employee punches", domain.RoleEmployee, "attendance", "punch", true},
		{"employee cannot approve", domain.RoleEmployee, "leave", "approve", false},
		{"manager approves", domain.RoleManager, "leave", "approve", true},
		{"manager inherits employee", domain.RoleManager, "attendance", "punch", true},
		{"manager cannot import", domain.RoleManager, "attendance", "import", false},
		{"hr inherits psa approve", domain.RoleHR, "regularization", "approve", true},
		{"hr imports", domain.RoleHR, "attendance", "import", true},
		{"hr cannot manage tenants", domain.RoleHR, "tenant", "manage", false},
		{"admin wildcard", domain.RoleAdmin, "tenant", "manage", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     string(tc.role),
				Resource: tc.resource,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestRBACService_UnknownRoleFallsBackToEmployee(t *testing.T) {
	svc := newTestService(t)

	allowed, err := svc.Enforce(domain.EnforceRequest{Role: "intern", Resource: "attendance", Action: "punch"})
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce(domain.EnforceRequest{Role: "intern", Resource: "payroll", Action: "manage"})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_PermissionsFor(t *testing.T) {
	svc := newTestService(t)

	perms, err := svc.PermissionsFor(domain.RoleManager)
	assert.NoError(t, err)
	assert.Contains(t, perms, Permission{Resource: "leave", Action: "approve"})
	assert.Contains(t, perms, Permission{Resource: "attendance", Action: "punch"})
}
