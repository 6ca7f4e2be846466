package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func ParseStatus(v string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "draft":
		return StatusDraft, true
	case "active":
		return StatusActive, true
	case "inactive":
		return StatusInactive, true
	default:
		return "", false
	}
}

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code             string     `gorm:"type:varchar(32);not null;uniqueIndex:uq_employee_code"`
	FirstName        string     `gorm:"type:varchar(100);not null"`
	MiddleName       string     `gorm:"type:varchar(100)"`
	LastName         string     `gorm:"type:varchar(100)"`
	Email            string     `gorm:"type:varchar(255);index"`
	Phone            string     `gorm:"type:varchar(32)"`
	Role             string     `gorm:"type:varchar(64);index"`
	Designation      string     `gorm:"type:varchar(100)"`
	DepartmentID     *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID        *uuid.UUID `gorm:"type:uuid;index"`
	Status           Status     `gorm:"type:varchar(16);not null;index"`
	JoiningDate      time.Time  `gorm:"type:date;not null"`
	LeavePolicyID    *uuid.UUID `gorm:"type:uuid"`
	SalaryTemplateID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ManagerIDString is empty for employees without a manager.
func (e Employee) ManagerIDString() string {
	if e.ManagerID == nil {
		return ""
	}
	return e.ManagerID.String()
}
