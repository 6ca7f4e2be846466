package tenant

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusPending   Status = "pending"
	StatusDeleted   Status = "deleted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusPending, StatusDeleted:
		return true
	default:
		return false
	}
}

// Serving reports whether requests may reach the tenant's database.
// Pending tenants are served so provisioning can run its first resolve.
func (s Status) Serving() bool {
	return s == StatusActive || s == StatusPending
}

// Tenant lives in the central registry database, never in a tenant database.
type Tenant struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string                      `gorm:"type:varchar(63);not null;uniqueIndex:uq_tenant_code"`
	Name      string                      `gorm:"type:varchar(150);not null"`
	Status    Status                      `gorm:"type:varchar(20);not null;default:'pending';index"`
	Features  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Settings  datatypes.JSONMap           `gorm:"type:jsonb"`
	CreatedAt time.Time                   `gorm:"not null;default:now()"`
	UpdatedAt time.Time                   `gorm:"not null;default:now()"`
}

func (Tenant) TableName() string {
	return "tenants"
}
