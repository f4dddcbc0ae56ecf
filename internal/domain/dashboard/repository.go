package dashboard

import (
	"context"
	"time"
)

// EmployeeStats combines employee head counts in a single query
type EmployeeStats struct {
	Total  int64
	Active int64
}

// RoleStats counts user accounts per role
type RoleStats struct {
	Admins   int64
	HR       int64
	Managers int64
}

type DashboardRepository interface {
	GetEmployeeStats(ctx context.Context) (EmployeeStats, error)
	GetRoleStats(ctx context.Context) (RoleStats, error)
	// CountPendingLeaves counts PENDING leaves, limited to employeeIDs when
	// it is non-nil.
	CountPendingLeaves(ctx context.Context, employeeIDs []string) (int64, error)
	CountPendingTimesheets(ctx context.Context, employeeIDs []string) (int64, error)
	// OnLeaveOn returns the names of employees with APPROVED leave covering
	// day, limited to employeeIDs when it is non-nil.
	OnLeaveOn(ctx context.Context, day time.Time, employeeIDs []string) ([]string, error)
}
