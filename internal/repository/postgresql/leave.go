package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

const leaveSelect = `
	SELECT
		l.id, l.employee_id, l.start_date, l.end_date, l.leave_type, l.reason, l.status,
		l.days_requested, l.rejection_reason, l.submitted_at, l.approved_by, l.reviewed_at,
		e.first_name || ' ' || e.last_name AS employee_name,
		COALESCE(ae.first_name || ' ' || ae.last_name, u.username) AS approver_name
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
	LEFT JOIN users u ON u.id = l.approved_by
	LEFT JOIN employees ae ON ae.user_id = u.id`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.LeaveType, &l.Reason, &l.Status,
		&l.DaysRequested, &l.RejectionReason, &l.SubmittedAt, &l.ApprovedBy, &l.ReviewedAt,
		&l.EmployeeName, &l.ApproverName,
	)
	return l, err
}

func (r *leaveRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, start_date, end_date, leave_type, reason, status, days_requested)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id string
	err := q.QueryRow(ctx, query, l.EmployeeID, l.StartDate, l.EndDate, l.LeaveType, l.Reason, l.Status, l.DaysRequested).Scan(&id)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *leaveRepositoryImpl) get(ctx context.Context, query, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave %s: %w", id, err)
	}
	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	return r.get(ctx, leaveSelect+` WHERE l.id = $1`, id)
}

// GetByIDForUpdate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.Leave, error) {
	return r.get(ctx, leaveSelect+` WHERE l.id = $1 FOR UPDATE OF l`, id)
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context) ([]leave.Leave, error) {
	return r.list(ctx, leaveSelect+` ORDER BY l.submitted_at DESC, l.id DESC`)
}

// ListByEmployeeID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string, limit int) ([]leave.Leave, error) {
	query := leaveSelect + ` WHERE l.employee_id = $1 ORDER BY l.submitted_at DESC, l.id DESC`
	if limit > 0 {
		return r.list(ctx, query+` LIMIT $2`, employeeID, limit)
	}
	return r.list(ctx, query, employeeID)
}

// ListByEmployeeIDs implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]leave.Leave, error) {
	if len(employeeIDs) == 0 {
		return []leave.Leave{}, nil
	}
	return r.list(ctx, leaveSelect+` WHERE l.employee_id = ANY($1::uuid[]) ORDER BY l.submitted_at DESC, l.id DESC`, employeeIDs)
}

// ListApprovedOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]leave.Leave, error) {
	query := leaveSelect + `
		WHERE l.status = $1 AND l.start_date <= $3 AND l.end_date >= $2
		ORDER BY l.start_date, l.id`
	return r.list(ctx, query, leave.LeaveStatusApproved, start, end)
}

// UpdateReview implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateReview(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, rejection_reason = $2, approved_by = $3, reviewed_at = $4
		WHERE id = $5`

	tag, err := q.Exec(ctx, query, l.Status, l.RejectionReason, l.ApprovedBy, l.ReviewedAt, l.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave %s: %w", l.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// ClearApprover implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ClearApprover(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE leaves SET approved_by = NULL WHERE approved_by = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear approver %s: %w", userID, err)
	}
	return nil
}

// DeleteByEmployeeID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leaves WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete leaves: %w", err)
	}
	return nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}
