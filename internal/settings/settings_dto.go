package settings

type UpdateAttendanceSettingsRequest struct {
	ShiftStart string `json:"shift_start" binding:"required,datetime=15:04"`
	ShiftEnd   string `json:"shift_end" binding:"required,datetime=15:04"`
	Timezone   string `json:"timezone" binding:"required"`

	GraceTimeMinutes         int     `json:"grace_time_minutes" binding:"gte=0,lte=240"`
	LateMarkThresholdMinutes int     `json:"late_mark_threshold_minutes" binding:"gte=0,lte=240"`
	FullDayThresholdHours    float64 `json:"full_day_threshold_hours" binding:"gt=0,lte=24"`
	HalfDayThresholdHours    float64 `json:"half_day_threshold_hours" binding:"gt=0,lte=24"`

	PunchMode        string `json:"punch_mode" binding:"required,oneof=single multiple"`
	MaxPunchesPerDay int    `json:"max_punches_per_day" binding:"gte=0,lte=100"`
	MaxPunchAction   string `json:"max_punch_action" binding:"omitempty,oneof=block warn"`

	OvertimeEnabled         bool `json:"overtime_enabled"`
	OvertimeAfterShiftHours bool `json:"overtime_after_shift_hours"`

	GeofencingEnabled bool    `json:"geofencing_enabled"`
	OfficeLatitude    float64 `json:"office_latitude" binding:"gte=-90,lte=90"`
	OfficeLongitude   float64 `json:"office_longitude" binding:"gte=-180,lte=180"`
	GeofenceRadiusM   float64 `json:"geofence_radius_meters" binding:"gte=0"`

	IPRestrictionEnabled bool     `json:"ip_restriction_enabled"`
	AllowedIPs           []string `json:"allowed_ips"`

	WeeklyOffDays        []int `json:"weekly_off_days"`
	LeaveCycleStartMonth int   `json:"leave_cycle_start_month" binding:"omitempty,gte=1,lte=12"`
}
