package leave

import (
	"context"
	"time"
)

// BalanceRepository - interface for leave_balances table
type BalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (LeaveBalance, error)
	// GetByEmployeeIDForUpdate locks the row until the surrounding
	// transaction ends.
	GetByEmployeeIDForUpdate(ctx context.Context, employeeID string) (LeaveBalance, error)
	List(ctx context.Context) ([]LeaveBalance, error)
	UpdateTotals(ctx context.Context, balance LeaveBalance) error
	UpdateUsage(ctx context.Context, balance LeaveBalance) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	GetByIDForUpdate(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context) ([]Leave, error)
	// ListByEmployeeID returns the newest submissions first. limit <= 0
	// returns every row.
	ListByEmployeeID(ctx context.Context, employeeID string, limit int) ([]Leave, error)
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]Leave, error)
	// ListApprovedOverlapping returns APPROVED leaves intersecting [start, end].
	ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]Leave, error)
	UpdateReview(ctx context.Context, l Leave) error
	ClearApprover(ctx context.Context, userID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
