package attendance

type PunchRequest struct {
	// Date is the client's local calendar date, YYYY-MM-DD.
	Date      string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Location  string   `json:"location" binding:"max=150"`
	Device    string   `json:"device" binding:"max=150"`
}

type OverrideRequest struct {
	Status   string `json:"status" binding:"required"`
	Reason   string `json:"reason" binding:"required,max=255"`
	CheckIn  string `json:"check_in" binding:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out" binding:"omitempty,datetime=15:04"`
}

type AttendanceResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	Date           string     `json:"date"`
	Status         string     `json:"status"`
	Punches        []PunchLog `json:"punches"`
	WorkingHours   float64    `json:"working_hours"`
	OvertimeHours  float64    `json:"overtime_hours"`
	IsLate         bool       `json:"is_late"`
	IsEarlyOut     bool       `json:"is_early_out"`
	ManualOverride bool       `json:"manual_override"`
	OverrideReason string     `json:"override_reason,omitempty"`
	LeaveType      string     `json:"leave_type,omitempty"`
	Color          string     `json:"color,omitempty"`
}

type PunchResponse struct {
	Attendance   AttendanceResponse `json:"attendance"`
	PunchType    PunchType          `json:"punch_type"`
	PunchMode    string             `json:"punch_mode"`
	IsLate       bool               `json:"is_late"`
	IsEarlyOut   bool               `json:"is_early_out"`
	WorkingHours float64            `json:"working_hours"`
	Warning      string             `json:"warning,omitempty"`
}

type TodayResponse struct {
	Date       string              `json:"date"`
	PunchMode  string              `json:"punch_mode"`
	NextPunch  PunchType           `json:"next_punch"`
	Attendance *AttendanceResponse `json:"attendance"`
}

type RowError struct {
	Row          int    `json:"row"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Error        string `json:"error"`
}

type ImportResult struct {
	Success int        `json:"success"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}
