package regularization

type ApplyRequest struct {
	Category       string `json:"category" binding:"required,max=16"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	CheckIn        string `json:"check_in" binding:"omitempty,datetime=15:04"`
	CheckOut       string `json:"check_out" binding:"omitempty,datetime=15:04"`
	Status         string `json:"status" binding:"max=16"`
	LeaveType      string `json:"leave_type" binding:"max=32"`
	CountAsPresent bool   `json:"count_as_present"`
	IsHalfDay      bool   `json:"is_half_day"`
	Reason         string `json:"reason" binding:"required,max=1000"`
}

type DecisionRequest struct {
	Note string `json:"note" binding:"max=500"`
}

type Scope string

const (
	ScopeMine    Scope = "mine"
	ScopePending Scope = "pending"
)

type ListQuery struct {
	Scope  Scope
	Status Status
}

type RegularizationResponse struct {
	ID                 string         `json:"id"`
	EmployeeID         string         `json:"employee_id"`
	Category           string         `json:"category"`
	Date               string         `json:"date"`
	Status             string         `json:"status"`
	BeforeStatus       string         `json:"before_status"`
	BeforeLeaveType    string         `json:"before_leave_type"`
	Before             map[string]any `json:"before,omitempty"`
	RequestedCheckIn   string         `json:"requested_check_in,omitempty"`
	RequestedCheckOut  string         `json:"requested_check_out,omitempty"`
	RequestedStatus    string         `json:"requested_status,omitempty"`
	RequestedLeaveType string         `json:"requested_leave_type,omitempty"`
	CountAsPresent     bool           `json:"count_as_present"`
	IsHalfDay          bool           `json:"is_half_day"`
	Reason             string         `json:"reason"`
	ApproverID         *string        `json:"approver_id,omitempty"`
	DecisionNote       string         `json:"decision_note,omitempty"`
	DecidedAt          *string        `json:"decided_at,omitempty"`
	LeaveRequestID     *string        `json:"leave_request_id,omitempty"`
	CreatedAt          string         `json:"created_at"`
}
