package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

// CreateLeave implements leave.LeaveService. The balance row is locked and
// recomputed before the sufficiency check, and the debit happens in the same
// transaction as the insert.
func (l *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}
	leaveType, _ := leave.ParseLeaveType(req.LeaveType)
	start, end := req.Range()
	days := leave.CountWorkingDays(start, end)

	var created leave.Leave
	err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		balance, err := l.BalanceRepository.GetByEmployeeIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		balance, err = l.balanceService.RefreshLeaveBalance(ctx, balance)
		if err != nil {
			return err
		}

		if balance.Remaining(leaveType) < days {
			return leave.ErrInsufficientBalance
		}

		created, err = l.LeaveRepository.Create(ctx, leave.Leave{
			EmployeeID:    req.EmployeeID,
			StartDate:     start,
			EndDate:       end,
			LeaveType:     leaveType,
			Reason:        req.Reason,
			Status:        leave.LeaveStatusPending,
			DaysRequested: days,
		})
		if err != nil {
			return err
		}

		balance.ApplyUsage(leaveType, days)
		return l.BalanceRepository.UpdateUsage(ctx, balance)
	})
	if err != nil {
		return leave.Leave{}, err
	}

	slog.Info("Leave submitted", "leave_id", created.ID, "employee_id", created.EmployeeID,
		"leave_type", created.LeaveType, "days", created.DaysRequested)
	return created, nil
}

// ApproveLeave implements leave.LeaveService. Days were already debited at
// submission, so the balance is left alone.
func (l *LeaveServiceImpl) ApproveLeave(ctx context.Context, id string, approverID string) (leave.Leave, error) {
	return l.review(ctx, id, approverID, func(ctx context.Context, lv *leave.Leave) error {
		lv.Status = leave.LeaveStatusApproved
		return nil
	})
}

// RejectLeave implements leave.LeaveService. The requested days are
// credited back to the balance.
func (l *LeaveServiceImpl) RejectLeave(ctx context.Context, id string, approverID string, reason string) (leave.Leave, error) {
	req := leave.RejectLeaveRequest{Reason: reason}
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	return l.review(ctx, id, approverID, func(ctx context.Context, lv *leave.Leave) error {
		lv.Status = leave.LeaveStatusRejected
		lv.RejectionReason = &reason

		balance, err := l.BalanceRepository.GetByEmployeeIDForUpdate(ctx, lv.EmployeeID)
		if err != nil {
			return err
		}
		balance.ApplyUsage(lv.LeaveType, -lv.DaysRequested)
		return l.BalanceRepository.UpdateUsage(ctx, balance)
	})
}

// review moves a PENDING leave to a terminal state chosen by decide.
func (l *LeaveServiceImpl) review(ctx context.Context, id, approverID string, decide func(ctx context.Context, lv *leave.Leave) error) (leave.Leave, error) {
	if validator.IsEmpty(approverID) {
		var errs validator.ValidationErrors
		errs.Add("approver_id", "approver_id is required")
		return leave.Leave{}, errs
	}

	var reviewed leave.Leave
	err := l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		lv, err := l.LeaveRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if lv.Status != leave.LeaveStatusPending {
			return leave.ErrInvalidTransition
		}

		if _, err := l.UserRepository.GetByID(ctx, approverID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return leave.ErrApproverNotFound
			}
			return err
		}

		if err := decide(ctx, &lv); err != nil {
			return err
		}
		now := time.Now()
		lv.ApprovedBy = &approverID
		lv.ReviewedAt = &now

		if err := l.LeaveRepository.UpdateReview(ctx, lv); err != nil {
			return err
		}

		reviewed, err = l.LeaveRepository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return leave.Leave{}, err
	}

	slog.Info("Leave reviewed", "leave_id", reviewed.ID, "status", reviewed.Status, "approver_id", approverID)
	return reviewed, nil
}
