package memory

import (
	"context"
	"slices"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/dashboard"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

type dashboardRepository struct {
	s *Store
}

func NewDashboardRepository(s *Store) dashboard.DashboardRepository {
	return &dashboardRepository{s: s}
}

func (r *dashboardRepository) GetEmployeeStats(_ context.Context) (dashboard.EmployeeStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var stats dashboard.EmployeeStats
	for _, e := range r.s.data.employees {
		stats.Total++
		if e.Active {
			stats.Active++
		}
	}
	return stats, nil
}

func (r *dashboardRepository) GetRoleStats(_ context.Context) (dashboard.RoleStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var stats dashboard.RoleStats
	for _, u := range r.s.data.users {
		switch u.Role {
		case user.RoleAdmin:
			stats.Admins++
		case user.RoleHR:
			stats.HR++
		case user.RoleReportingManager:
			stats.Managers++
		}
	}
	return stats, nil
}

func scoped(employeeIDs []string, id string) bool {
	return employeeIDs == nil || slices.Contains(employeeIDs, id)
}

func (r *dashboardRepository) CountPendingLeaves(_ context.Context, employeeIDs []string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, l := range r.s.data.leaves {
		if l.Status == leave.LeaveStatusPending && scoped(employeeIDs, l.EmployeeID) {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepository) CountPendingTimesheets(_ context.Context, employeeIDs []string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, t := range r.s.data.timesheets {
		if t.Status == timesheet.StatusPending && scoped(employeeIDs, t.EmployeeID) {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepository) OnLeaveOn(_ context.Context, day time.Time, employeeIDs []string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, l := range r.s.data.leaves {
		if l.Status != leave.LeaveStatusApproved || !l.Covers(day) || !scoped(employeeIDs, l.EmployeeID) {
			continue
		}
		name := r.s.fullName(l.EmployeeID)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
