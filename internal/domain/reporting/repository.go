package reporting

import "context"

// Repository - interface for employee_reporting table
type Repository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeReporting, error)
	// Upsert inserts or replaces the single row keyed by EmployeeID.
	Upsert(ctx context.Context, r EmployeeReporting) (EmployeeReporting, error)
	List(ctx context.Context) ([]EmployeeReporting, error)
	ListByManagerID(ctx context.Context, managerID string) ([]EmployeeReporting, error)
	// ClearManager nulls reporting_manager_id on every row pointing at managerID.
	ClearManager(ctx context.Context, managerID string) error
	ClearHR(ctx context.Context, hrID string) error
	ClearPreviousManager(ctx context.Context, managerID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
