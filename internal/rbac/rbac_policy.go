package rbac

import "go-hrms/internal/domain"

// Permission is one resource/action pair granted to a role.
type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// roleInheritance: child role inherits every permission of the parent.
var roleInheritance = [][2]domain.Role{
	{domain.RoleManager, domain.RoleEmployee},
	{domain.RolePSA, domain.RoleEmployee},
	{domain.RoleHR, domain.RolePSA},
}

var defaultPolicy = map[domain.Role][]Permission{
	domain.RoleAdmin: {
		{Resource: "*", Action: "*"},
	},
	domain.RoleEmployee: {
		{Resource: "attendance", Action: "punch"},
		{Resource: "attendance", Action: "read_own"},
		{Resource: "leave", Action: "create"},
		{Resource: "leave", Action: "read_own"},
		{Resource: "leave", Action: "update"},
		{Resource: "leave", Action: "cancel"},
		{Resource: "leave_balance", Action: "read_own"},
		{Resource: "regularization", Action: "create"},
		{Resource: "regularization", Action: "read_own"},
		{Resource: "notification", Action: "read"},
		{Resource: "holiday", Action: "read"},
		{Resource: "settings", Action: "read"},
		{Resource: "employee", Action: "read_own"},
	},
	domain.RoleManager: {
		{Resource: "leave", Action: "approve"},
		{Resource: "leave", Action: "read"},
		{Resource: "regularization", Action: "approve"},
		{Resource: "regularization", Action: "read"},
		{Resource: "attendance", Action: "read"},
		{Resource: "employee", Action: "read"},
	},
	domain.RolePSA: {
		{Resource: "leave", Action: "approve"},
		{Resource: "leave", Action: "read"},
		{Resource: "regularization", Action: "approve"},
		{Resource: "regularization", Action: "read"},
		{Resource: "attendance", Action: "read"},
		{Resource: "employee", Action: "read"},
		{Resource: "leave_balance", Action: "read"},
	},
	domain.RoleHR: {
		{Resource: "employee", Action: "manage"},
		{Resource: "leave_policy", Action: "manage"},
		{Resource: "leave_policy", Action: "read"},
		{Resource: "attendance", Action: "manage"},
		{Resource: "attendance", Action: "import"},
		{Resource: "settings", Action: "manage"},
		{Resource: "holiday", Action: "manage"},
		{Resource: "payroll", Action: "manage"},
		{Resource: "payroll", Action: "read"},
	},
}
