package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type reportingRepositoryImpl struct {
	db *database.DB
}

const reportingColumns = `id, employee_id, reporting_manager_id, hr_id, previous_reporting_manager_id, created_at, updated_at`

func scanReporting(row pgx.Row) (reporting.EmployeeReporting, error) {
	var r reporting.EmployeeReporting
	err := row.Scan(&r.ID, &r.EmployeeID, &r.ReportingManagerID, &r.HRID, &r.PreviousReportingManagerID, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r *reportingRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]reporting.EmployeeReporting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reporting assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]reporting.EmployeeReporting, 0)
	for rows.Next() {
		a, err := scanReporting(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetByEmployeeID implements reporting.Repository.
func (r *reportingRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (reporting.EmployeeReporting, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanReporting(q.QueryRow(ctx, `SELECT `+reportingColumns+` FROM employee_reporting WHERE employee_id = $1`, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return reporting.EmployeeReporting{}, reporting.ErrAssignmentNotFound
		}
		return reporting.EmployeeReporting{}, fmt.Errorf("failed to get reporting assignment for %s: %w", employeeID, err)
	}
	return a, nil
}

// Upsert implements reporting.Repository.
func (r *reportingRepositoryImpl) Upsert(ctx context.Context, a reporting.EmployeeReporting) (reporting.EmployeeReporting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_reporting (employee_id, reporting_manager_id, hr_id, previous_reporting_manager_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id) DO UPDATE SET
			reporting_manager_id = EXCLUDED.reporting_manager_id,
			hr_id = EXCLUDED.hr_id,
			previous_reporting_manager_id = EXCLUDED.previous_reporting_manager_id,
			updated_at = NOW()
		RETURNING ` + reportingColumns

	saved, err := scanReporting(q.QueryRow(ctx, query, a.EmployeeID, a.ReportingManagerID, a.HRID, a.PreviousReportingManagerID))
	if err != nil {
		return reporting.EmployeeReporting{}, fmt.Errorf("failed to save reporting assignment: %w", err)
	}
	return saved, nil
}

// List implements reporting.Repository.
func (r *reportingRepositoryImpl) List(ctx context.Context) ([]reporting.EmployeeReporting, error) {
	return r.list(ctx, `SELECT `+reportingColumns+` FROM employee_reporting ORDER BY created_at, id`)
}

// ListByManagerID implements reporting.Repository.
func (r *reportingRepositoryImpl) ListByManagerID(ctx context.Context, managerID string) ([]reporting.EmployeeReporting, error) {
	return r.list(ctx, `SELECT `+reportingColumns+` FROM employee_reporting WHERE reporting_manager_id = $1 ORDER BY created_at, id`, managerID)
}

func (r *reportingRepositoryImpl) clear(ctx context.Context, column, id string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`UPDATE employee_reporting SET %[1]s = NULL, updated_at = NOW() WHERE %[1]s = $1`, column)
	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear %s: %w", column, err)
	}
	return nil
}

// ClearManager implements reporting.Repository.
func (r *reportingRepositoryImpl) ClearManager(ctx context.Context, managerID string) error {
	return r.clear(ctx, "reporting_manager_id", managerID)
}

// ClearHR implements reporting.Repository.
func (r *reportingRepositoryImpl) ClearHR(ctx context.Context, hrID string) error {
	return r.clear(ctx, "hr_id", hrID)
}

// ClearPreviousManager implements reporting.Repository.
func (r *reportingRepositoryImpl) ClearPreviousManager(ctx context.Context, managerID string) error {
	return r.clear(ctx, "previous_reporting_manager_id", managerID)
}

// DeleteByEmployeeID implements reporting.Repository.
func (r *reportingRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_reporting WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete reporting assignment: %w", err)
	}
	return nil
}

func NewReportingRepository(db *database.DB) reporting.Repository {
	return &reportingRepositoryImpl{db: db}
}
