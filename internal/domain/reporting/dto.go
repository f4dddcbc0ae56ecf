package reporting

import "github.com/oryfolks/hrms-backend-go/internal/pkg/validator"

type AssignRequest struct {
	EmployeeID         string  `json:"employee_id"`
	ReportingManagerID *string `json:"reporting_manager_id"`
	HRID               *string `json:"hr_id"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if r.ReportingManagerID != nil && *r.ReportingManagerID == r.EmployeeID {
		errs.Add("reporting_manager_id", "an employee cannot report to themselves")
	}
	if r.HRID != nil && *r.HRID == r.EmployeeID {
		errs.Add("hr_id", "an employee cannot be their own HR")
	}

	return errs.Err()
}

// ManagerSummary is one row of the managers listing.
type ManagerSummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	CorporateEmail *string `json:"corporate_email,omitempty"`
}

// MemberSummary identifies an employee in pickers and team rosters.
type MemberSummary struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	CorporateEmail *string `json:"corporate_email,omitempty"`
}

type ManagerDetails struct {
	ManagerID      string          `json:"manager_id"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	CorporateEmail *string         `json:"corporate_email,omitempty"`
	Team           []MemberSummary `json:"team"`
}

// AssignmentView is an EmployeeReporting row flattened for display.
type AssignmentView struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	ManagerID         *string `json:"manager_id,omitempty"`
	ManagerName       *string `json:"manager_name,omitempty"`
	ManagerEmail      *string `json:"manager_email,omitempty"`
	ManagerCorpEmail  *string `json:"manager_corporate_email,omitempty"`
	ManagerRole       *string `json:"manager_role,omitempty"`
	HRID              *string `json:"hr_id,omitempty"`
	HRName            *string `json:"hr_name,omitempty"`
	HRRole            *string `json:"hr_role,omitempty"`
	PreviousManagerID *string `json:"previous_manager_id,omitempty"`
}

type AssignmentResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	ReportingManagerID *string `json:"reporting_manager_id,omitempty"`
	HRID               *string `json:"hr_id,omitempty"`
	PreviousManagerID  *string `json:"previous_reporting_manager_id,omitempty"`
}

func NewAssignmentResponse(r EmployeeReporting) AssignmentResponse {
	return AssignmentResponse{
		ID:                 r.ID,
		EmployeeID:         r.EmployeeID,
		ReportingManagerID: r.ReportingManagerID,
		HRID:               r.HRID,
		PreviousManagerID:  r.PreviousReportingManagerID,
	}
}
