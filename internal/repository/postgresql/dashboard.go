package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/dashboard"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeStats returns total and active head counts in a single query
func (r *dashboardRepositoryImpl) GetEmployeeStats(ctx context.Context) (dashboard.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN active THEN 1 ELSE 0 END), 0) AS active_count
		FROM employees
	`

	var stats dashboard.EmployeeStats
	if err := q.QueryRow(ctx, query).Scan(&stats.Total, &stats.Active); err != nil {
		return dashboard.EmployeeStats{}, fmt.Errorf("failed to get employee stats: %w", err)
	}
	return stats, nil
}

// GetRoleStats counts accounts holding each elevated role
func (r *dashboardRepositoryImpl) GetRoleStats(ctx context.Context) (dashboard.RoleStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN role = $1 THEN 1 ELSE 0 END), 0) AS admins,
			COALESCE(SUM(CASE WHEN role = $2 THEN 1 ELSE 0 END), 0) AS hr,
			COALESCE(SUM(CASE WHEN role = $3 THEN 1 ELSE 0 END), 0) AS managers
		FROM users
	`

	var stats dashboard.RoleStats
	err := q.QueryRow(ctx, query, user.RoleAdmin, user.RoleHR, user.RoleReportingManager).Scan(
		&stats.Admins, &stats.HR, &stats.Managers,
	)
	if err != nil {
		return dashboard.RoleStats{}, fmt.Errorf("failed to get role stats: %w", err)
	}
	return stats, nil
}

func (r *dashboardRepositoryImpl) countPending(ctx context.Context, table string, status string, employeeIDs []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE status = $1`, table)
	args := []interface{}{status}
	if employeeIDs != nil {
		query += ` AND employee_id = ANY($2::uuid[])`
		args = append(args, employeeIDs)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending %s: %w", table, err)
	}
	return count, nil
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context, employeeIDs []string) (int64, error) {
	return r.countPending(ctx, "leaves", string(leave.LeaveStatusPending), employeeIDs)
}

// CountPendingTimesheets implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingTimesheets(ctx context.Context, employeeIDs []string) (int64, error) {
	return r.countPending(ctx, "timesheets", string(timesheet.StatusPending), employeeIDs)
}

// OnLeaveOn implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) OnLeaveOn(ctx context.Context, day time.Time, employeeIDs []string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT e.first_name || ' ' || e.last_name AS name
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = $1 AND l.start_date <= $2 AND l.end_date >= $2`
	args := []interface{}{leave.LeaveStatusApproved, day}
	if employeeIDs != nil {
		query += ` AND l.employee_id = ANY($3::uuid[])`
		args = append(args, employeeIDs)
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees on leave: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
