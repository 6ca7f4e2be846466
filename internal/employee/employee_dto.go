package employee

type CreateEmployeeRequest struct {
	Code             string `json:"code" binding:"omitempty,max=32"`
	FirstName        string `json:"first_name" binding:"required,max=100"`
	MiddleName       string `json:"middle_name" binding:"omitempty,max=100"`
	LastName         string `json:"last_name" binding:"omitempty,max=100"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"omitempty,max=32"`
	Role             string `json:"role" binding:"omitempty,max=64"`
	Designation      string `json:"designation" binding:"omitempty,max=100"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	ManagerID        string `json:"manager_id" binding:"omitempty,uuid"`
	Status           string `json:"status" binding:"omitempty,oneof=Draft Active"`
	JoiningDate      string `json:"joining_date" binding:"required,datetime=2006-01-02"`
	SalaryTemplateID string `json:"salary_template_id" binding:"omitempty,uuid"`
}

type UpdateEmployeeRequest struct {
	FirstName        string `json:"first_name" binding:"required,max=100"`
	MiddleName       string `json:"middle_name" binding:"omitempty,max=100"`
	LastName         string `json:"last_name" binding:"omitempty,max=100"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"omitempty,max=32"`
	Role             string `json:"role" binding:"omitempty,max=64"`
	Designation      string `json:"designation" binding:"omitempty,max=100"`
	DepartmentID     string `json:"department_id" binding:"omitempty,uuid"`
	JoiningDate      string `json:"joining_date" binding:"required,datetime=2006-01-02"`
	SalaryTemplateID string `json:"salary_template_id" binding:"omitempty,uuid"`
}

// AssignManagerRequest clears the manager when ManagerID is empty.
type AssignManagerRequest struct {
	ManagerID string `json:"manager_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	FullName         string `json:"full_name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role,omitempty"`
	Designation      string `json:"designation,omitempty"`
	DepartmentID     string `json:"department_id,omitempty"`
	ManagerID        string `json:"manager_id,omitempty"`
	Status           string `json:"status"`
	JoiningDate      string `json:"joining_date"`
	LeavePolicyID    string `json:"leave_policy_id,omitempty"`
	SalaryTemplateID string `json:"salary_template_id,omitempty"`
}
