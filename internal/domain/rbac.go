package domain

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RolePSA      Role = "PSA"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

func ParseRole(v string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(v))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleHR:
		return RoleHR
	case RolePSA:
		return RolePSA
	case RoleManager:
		return RoleManager
	default:
		return RoleEmployee
	}
}

// IsPeopleOps reports whether the role may act on other employees' records.
func (r Role) IsPeopleOps() bool {
	switch r {
	case RoleAdmin, RoleHR, RolePSA:
		return true
	default:
		return false
	}
}

// Actor is the authenticated caller as established by the auth middleware.
type Actor struct {
	UserID     string
	EmployeeID string
	Role       Role
}

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
