package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPresent     Status = "present"
	StatusAbsent      Status = "absent"
	StatusLeave       Status = "leave"
	StatusHoliday     Status = "holiday"
	StatusWeeklyOff   Status = "weekly_off"
	StatusHalfDay     Status = "half_day"
	StatusMissedPunch Status = "missed_punch"
)

var statuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLeave,
	StatusHoliday,
	StatusWeeklyOff,
	StatusHalfDay,
	StatusMissedPunch,
}

// ParseStatus accepts "Weekly Off", "half-day", "PRESENT" and similar.
func ParseStatus(v string) (Status, bool) {
	norm := strings.ToLower(strings.TrimSpace(v))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, s := range statuses {
		if string(s) == norm {
			return s, true
		}
	}
	return "", false
}

// Sticky statuses are set by leave, holiday and weekly-off flows and are
// never re-derived from punches.
func (s Status) Sticky() bool {
	switch s {
	case StatusLeave, StatusHoliday, StatusWeeklyOff:
		return true
	default:
		return false
	}
}

type PunchType string

const (
	PunchIn  PunchType = "IN"
	PunchOut PunchType = "OUT"
)

type PunchLog struct {
	Type      PunchType `json:"type"`
	Time      time.Time `json:"time"`
	Device    string    `json:"device,omitempty"`
	Location  string    `json:"location,omitempty"`
	IP        string    `json:"ip,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

type Attendance struct {
	ID             uuid.UUID                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	Date           time.Time                     `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	Status         Status                        `gorm:"type:varchar(16);not null"`
	Punches        datatypes.JSONSlice[PunchLog] `gorm:"type:jsonb"`
	WorkingHours   float64                       `gorm:"type:numeric(5,2);not null;default:0"`
	OvertimeHours  float64                       `gorm:"type:numeric(5,2);not null;default:0"`
	IsLate         bool                          `gorm:"not null;default:false"`
	IsEarlyOut     bool                          `gorm:"not null;default:false"`
	ManualOverride bool                          `gorm:"not null;default:false"`
	OverrideReason string                        `gorm:"type:varchar(255)"`
	LeaveType      string                        `gorm:"type:varchar(32)"`
	Color          string                        `gorm:"type:varchar(16)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
