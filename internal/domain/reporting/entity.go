package reporting

import "time"

// EmployeeReporting is the authoritative assignment edge for one employee.
type EmployeeReporting struct {
	ID                 string
	EmployeeID         string
	ReportingManagerID *string
	HRID               *string
	// PreviousReportingManagerID holds the manager replaced by the last
	// reassignment. It is a single slot: only the immediately prior manager
	// can be restored.
	PreviousReportingManagerID *string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// ReportsTo reports whether the employee's current manager is managerID.
func (r EmployeeReporting) ReportsTo(managerID string) bool {
	return r.ReportingManagerID != nil && *r.ReportingManagerID == managerID
}
