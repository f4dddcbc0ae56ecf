package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type balanceRepositoryImpl struct {
	db *database.DB
}

const balanceColumns = `
	id, employee_id, casual_leaves_total, casual_leaves_used, sick_leaves_total, sick_leaves_used,
	earned_leaves_total, earned_leaves_used, updated_at`

func scanBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	err := row.Scan(&b.ID, &b.EmployeeID, &b.CasualTotal, &b.CasualUsed, &b.SickTotal, &b.SickUsed, &b.EarnedTotal, &b.EarnedUsed, &b.UpdatedAt)
	return b, err
}

// Create implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) Create(ctx context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			employee_id, casual_leaves_total, casual_leaves_used, sick_leaves_total, sick_leaves_used,
			earned_leaves_total, earned_leaves_used
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + balanceColumns

	created, err := scanBalance(q.QueryRow(ctx, query,
		b.EmployeeID, b.CasualTotal, b.CasualUsed, b.SickTotal, b.SickUsed, b.EarnedTotal, b.EarnedUsed,
	))
	if err != nil {
		if constraintViolated(err, "leave_balances_employee_id_key") {
			return leave.LeaveBalance{}, leave.ErrBalanceAlreadyExists
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}
	return created, nil
}

func (r *balanceRepositoryImpl) get(ctx context.Context, query, employeeID string) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBalance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance for employee %s: %w", employeeID, err)
	}
	return b, nil
}

// GetByEmployeeID implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.get(ctx, `SELECT `+balanceColumns+` FROM leave_balances WHERE employee_id = $1`, employeeID)
}

// GetByEmployeeIDForUpdate implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) GetByEmployeeIDForUpdate(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.get(ctx, `SELECT `+balanceColumns+` FROM leave_balances WHERE employee_id = $1 FOR UPDATE`, employeeID)
}

// List implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) List(ctx context.Context) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+balanceColumns+` FROM leave_balances ORDER BY employee_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// UpdateTotals implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) UpdateTotals(ctx context.Context, b leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET casual_leaves_total = $1, sick_leaves_total = $2, earned_leaves_total = $3, updated_at = NOW()
		WHERE employee_id = $4`

	tag, err := q.Exec(ctx, query, b.CasualTotal, b.SickTotal, b.EarnedTotal, b.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to update leave totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

// UpdateUsage implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) UpdateUsage(ctx context.Context, b leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET casual_leaves_used = $1, sick_leaves_used = $2, earned_leaves_used = $3, updated_at = NOW()
		WHERE employee_id = $4`

	tag, err := q.Exec(ctx, query, b.CasualUsed, b.SickUsed, b.EarnedUsed, b.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to update leave usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}

// DeleteByEmployeeID implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_balances WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete leave balance: %w", err)
	}
	return nil
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}
