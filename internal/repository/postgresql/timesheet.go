package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

const timesheetSelect = `
	SELECT
		t.id, t.employee_id, t.work_date, to_char(t.start_time, 'HH24:MI'), to_char(t.end_time, 'HH24:MI'),
		t.total_hours, t.project, t.task, t.notes, t.category, t.billable, t.status,
		t.manager_comments, t.reviewed_by, t.reviewed_at, t.created_at,
		e.first_name || ' ' || e.last_name AS employee_name
	FROM timesheets t
	JOIN employees e ON e.id = t.employee_id`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var t timesheet.Timesheet
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Date, &t.StartTime, &t.EndTime,
		&t.TotalHours, &t.Project, &t.Task, &t.Notes, &t.Category, &t.Billable, &t.Status,
		&t.ManagerComments, &t.ReviewedBy, &t.ReviewedAt, &t.CreatedAt,
		&t.EmployeeName,
	)
	return t, err
}

// Create implements timesheet.Repository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (
			employee_id, work_date, start_time, end_time, total_hours, project, task, notes, category, billable, status
		) VALUES ($1, $2, $3::time, $4::time, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Date, t.StartTime, t.EndTime, t.TotalHours, t.Project, t.Task, t.Notes, t.Category, t.Billable, t.Status,
	).Scan(&id)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *timesheetRepositoryImpl) get(ctx context.Context, query, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTimesheet(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet %s: %w", id, err)
	}
	return t, nil
}

// GetByID implements timesheet.Repository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return r.get(ctx, timesheetSelect+` WHERE t.id = $1`, id)
}

// GetByIDForUpdate implements timesheet.Repository.
func (r *timesheetRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return r.get(ctx, timesheetSelect+` WHERE t.id = $1 FOR UPDATE OF t`, id)
}

// List implements timesheet.Repository.
func (r *timesheetRepositoryImpl) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.EmployeeIDs != nil {
		baseWhere += fmt.Sprintf(" AND t.employee_id = ANY($%d::uuid[])", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.From != nil {
		baseWhere += fmt.Sprintf(" AND t.work_date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		baseWhere += fmt.Sprintf(" AND t.work_date <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`%s %s ORDER BY t.work_date DESC, t.start_time DESC, t.id`, timesheetSelect, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := make([]timesheet.Timesheet, 0)
	for rows.Next() {
		t, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}
	return timesheets, rows.Err()
}

// Update implements timesheet.Repository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, t timesheet.Timesheet) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets SET
			work_date = $1, start_time = $2::time, end_time = $3::time, total_hours = $4,
			project = $5, task = $6, notes = $7, category = $8, billable = $9,
			status = $10, manager_comments = $11, reviewed_by = $12, reviewed_at = $13
		WHERE id = $14`

	tag, err := q.Exec(ctx, query,
		t.Date, t.StartTime, t.EndTime, t.TotalHours,
		t.Project, t.Task, t.Notes, t.Category, t.Billable,
		t.Status, t.ManagerComments, t.ReviewedBy, t.ReviewedAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update timesheet %s: %w", t.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrTimesheetNotFound
	}
	return nil
}

// DeletePendingInRange implements timesheet.Repository.
func (r *timesheetRepositoryImpl) DeletePendingInRange(ctx context.Context, employeeID string, from, to time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM timesheets
		WHERE employee_id = $1 AND status = $2 AND work_date >= $3 AND work_date <= $4`

	if _, err := q.Exec(ctx, query, employeeID, timesheet.StatusPending, from, to); err != nil {
		return fmt.Errorf("failed to delete pending timesheets: %w", err)
	}
	return nil
}

// ClearReviewer implements timesheet.Repository.
func (r *timesheetRepositoryImpl) ClearReviewer(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE timesheets SET reviewed_by = NULL WHERE reviewed_by = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear reviewer %s: %w", userID, err)
	}
	return nil
}

// DeleteByEmployeeID implements timesheet.Repository.
func (r *timesheetRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM timesheets WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete timesheets: %w", err)
	}
	return nil
}

func NewTimesheetRepository(db *database.DB) timesheet.Repository {
	return &timesheetRepositoryImpl{db: db}
}
