package settings

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PunchMode string

const (
	PunchModeSingle   PunchMode = "single"
	PunchModeMultiple PunchMode = "multiple"
)

type MaxPunchAction string

const (
	MaxPunchBlock MaxPunchAction = "block"
	MaxPunchWarn  MaxPunchAction = "warn"
)

// AttendanceSettings is a single row per tenant database. Columns carry no
// db defaults so an explicit zero (e.g. no grace time) is stored as zero.
type AttendanceSettings struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	ShiftStart string `gorm:"type:varchar(5);not null" json:"shift_start"`
	ShiftEnd   string `gorm:"type:varchar(5);not null" json:"shift_end"`
	Timezone   string `gorm:"type:varchar(64);not null" json:"timezone"`

	GraceTimeMinutes         int     `gorm:"not null" json:"grace_time_minutes"`
	LateMarkThresholdMinutes int     `gorm:"not null" json:"late_mark_threshold_minutes"`
	FullDayThresholdHours    float64 `gorm:"not null" json:"full_day_threshold_hours"`
	HalfDayThresholdHours    float64 `gorm:"not null" json:"half_day_threshold_hours"`

	PunchMode        PunchMode      `gorm:"type:varchar(16);not null" json:"punch_mode"`
	MaxPunchesPerDay int            `gorm:"not null" json:"max_punches_per_day"`
	MaxPunchAction   MaxPunchAction `gorm:"type:varchar(8);not null" json:"max_punch_action"`

	OvertimeEnabled         bool `gorm:"not null" json:"overtime_enabled"`
	OvertimeAfterShiftHours bool `gorm:"not null" json:"overtime_after_shift_hours"`

	GeofencingEnabled bool    `gorm:"not null" json:"geofencing_enabled"`
	OfficeLatitude    float64 `json:"office_latitude"`
	OfficeLongitude   float64 `json:"office_longitude"`
	GeofenceRadiusM   float64 `gorm:"not null" json:"geofence_radius_meters"`

	IPRestrictionEnabled bool                        `gorm:"not null" json:"ip_restriction_enabled"`
	AllowedIPs           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"allowed_ips"`

	WeeklyOffDays        datatypes.JSONSlice[int] `gorm:"type:jsonb" json:"weekly_off_days"`
	LeaveCycleStartMonth int                      `gorm:"not null" json:"leave_cycle_start_month"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

func (AttendanceSettings) TableName() string {
	return "attendance_settings"
}

func Defaults() AttendanceSettings {
	return AttendanceSettings{
		ShiftStart:               "09:00",
		ShiftEnd:                 "18:00",
		Timezone:                 "UTC",
		GraceTimeMinutes:         15,
		LateMarkThresholdMinutes: 15,
		FullDayThresholdHours:    8,
		HalfDayThresholdHours:    4,
		PunchMode:                PunchModeMultiple,
		MaxPunchesPerDay:         10,
		MaxPunchAction:           MaxPunchBlock,
		GeofenceRadiusM:          100,
		AllowedIPs:               datatypes.JSONSlice[string]{},
		WeeklyOffDays:            datatypes.JSONSlice[int]{int(time.Sunday)},
		LeaveCycleStartMonth:     1,
	}
}

// Location falls back to UTC for an unknown zone.
func (s AttendanceSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ClockOn places an HH:MM time of day on day's calendar date in day's zone.
func ClockOn(day time.Time, hhmm string) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", hhmm, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("invalid time of day %q", hhmm)
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location()), nil
}

// ShiftDuration handles overnight shifts where end is before start.
func (s AttendanceSettings) ShiftDuration() (time.Duration, error) {
	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	start, err := ClockOn(ref, s.ShiftStart)
	if err != nil {
		return 0, err
	}
	end, err := ClockOn(ref, s.ShiftEnd)
	if err != nil {
		return 0, err
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start), nil
}

func (s AttendanceSettings) IsWeeklyOff(day time.Weekday) bool {
	for _, d := range s.WeeklyOffDays {
		if time.Weekday(d) == day {
			return true
		}
	}
	return false
}

// AccountingYear maps a date to its leave year: a month before the cycle
// start month belongs to the previous year.
func (s AttendanceSettings) AccountingYear(day time.Time) int {
	start := s.LeaveCycleStartMonth
	if start < 1 || start > 12 {
		start = 1
	}
	if int(day.Month()) < start {
		return day.Year() - 1
	}
	return day.Year()
}
