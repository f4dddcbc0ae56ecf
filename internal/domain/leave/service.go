package leave

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// BalanceService owns entitlement recomputation and balance lookups.
type BalanceService interface {
	InitializeLeaveBalance(ctx context.Context, employeeID string) (LeaveBalance, error)
	RefreshLeaveBalance(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetLeaveBalance(ctx context.Context, employeeID string) (LeaveBalance, error)
	GetRemainingLeaves(ctx context.Context, employeeID string) (int, error)
	RefreshAll(ctx context.Context) (RefreshSummary, error)
}

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (Leave, error)
	ApproveLeave(ctx context.Context, id string, approverID string) (Leave, error)
	RejectLeave(ctx context.Context, id string, approverID string, reason string) (Leave, error)
	GetLeave(ctx context.Context, id string) (Leave, error)
	GetAllLeaves(ctx context.Context) ([]Leave, error)
	GetLeavesByEmployeeID(ctx context.Context, employeeID string) ([]Leave, error)
	GetRecentLeavesByEmployeeID(ctx context.Context, employeeID string, limit int) ([]Leave, error)
	GetTeamLeavesByManagerID(ctx context.Context, managerID string) ([]Leave, error)
}

// RefreshSummary reports the outcome of a batch recompute.
type RefreshSummary struct {
	Processed int
	Failed    int
}
