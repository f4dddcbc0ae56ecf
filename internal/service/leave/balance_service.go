package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type BalanceServiceImpl struct {
	tx database.Transactor
	leave.BalanceRepository
	employee.EmployeeRepository
	employee.CompanyDetailRepository
	calculator *EntitlementCalculator
}

func NewBalanceService(tx database.Transactor, balanceRepository leave.BalanceRepository, employeeRepository employee.EmployeeRepository, companyDetailRepository employee.CompanyDetailRepository, calculator *EntitlementCalculator) leave.BalanceService {
	return &BalanceServiceImpl{
		tx:                      tx,
		BalanceRepository:       balanceRepository,
		EmployeeRepository:      employeeRepository,
		CompanyDetailRepository: companyDetailRepository,
		calculator:              calculator,
	}
}

// InitializeLeaveBalance implements leave.BalanceService.
func (s *BalanceServiceImpl) InitializeLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
			return err
		}

		_, err := s.BalanceRepository.GetByEmployeeID(ctx, employeeID)
		if err == nil {
			return leave.ErrBalanceAlreadyExists
		}
		if !errors.Is(err, leave.ErrBalanceNotFound) {
			return err
		}

		created, err := s.BalanceRepository.Create(ctx, leave.LeaveBalance{EmployeeID: employeeID})
		if err != nil {
			return err
		}

		balance, err = s.RefreshLeaveBalance(ctx, created)
		return err
	})
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	slog.Info("Leave balance initialized", "employee_id", employeeID,
		"casual", balance.CasualTotal, "sick", balance.SickTotal, "earned", balance.EarnedTotal)
	return balance, nil
}

// RefreshLeaveBalance implements leave.BalanceService. Without a joining
// date the balance is returned untouched.
func (s *BalanceServiceImpl) RefreshLeaveBalance(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	detail, err := s.CompanyDetailRepository.GetByEmployeeID(ctx, balance.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrCompanyDetailNotFound) {
			return balance, nil
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get company detail: %w", err)
	}
	if detail.JoiningDate == nil {
		return balance, nil
	}

	entitlement := s.calculator.Calculate(*detail.JoiningDate)
	if balance.Entitlement() == entitlement {
		return balance, nil
	}

	balance.SetEntitlement(entitlement)
	if err := s.BalanceRepository.UpdateTotals(ctx, balance); err != nil {
		return leave.LeaveBalance{}, err
	}
	return balance, nil
}

// GetLeaveBalance implements leave.BalanceService. When a concurrent first
// read creates the row between our lookup and insert, the read is retried
// once in a fresh transaction and finds that row.
func (s *BalanceServiceImpl) GetLeaveBalance(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	balance, err := s.loadOrInitialize(ctx, employeeID)
	if errors.Is(err, leave.ErrBalanceAlreadyExists) {
		slog.Debug("Leave balance created concurrently, reloading", "employee_id", employeeID)
		balance, err = s.loadOrInitialize(ctx, employeeID)
	}
	return balance, err
}

func (s *BalanceServiceImpl) loadOrInitialize(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.BalanceRepository.GetByEmployeeIDForUpdate(ctx, employeeID)
		if errors.Is(err, leave.ErrBalanceNotFound) {
			balance, err = s.InitializeLeaveBalance(ctx, employeeID)
			return err
		}
		if err != nil {
			return err
		}

		balance, err = s.RefreshLeaveBalance(ctx, current)
		return err
	})
	return balance, err
}

// GetRemainingLeaves implements leave.BalanceService.
func (s *BalanceServiceImpl) GetRemainingLeaves(ctx context.Context, employeeID string) (int, error) {
	balance, err := s.GetLeaveBalance(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return balance.RemainingTotal(), nil
}

// RefreshAll implements leave.BalanceService. Each balance is recomputed in
// its own transaction so one failure does not roll back the rest.
func (s *BalanceServiceImpl) RefreshAll(ctx context.Context) (leave.RefreshSummary, error) {
	balances, err := s.BalanceRepository.List(ctx)
	if err != nil {
		return leave.RefreshSummary{}, fmt.Errorf("failed to list leave balances: %w", err)
	}

	var summary leave.RefreshSummary
	for _, b := range balances {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			current, err := s.BalanceRepository.GetByEmployeeIDForUpdate(ctx, b.EmployeeID)
			if err != nil {
				return err
			}
			_, err = s.RefreshLeaveBalance(ctx, current)
			return err
		})
		if err != nil {
			summary.Failed++
			slog.Error("Failed to refresh leave balance", "employee_id", b.EmployeeID, "error", err)
			continue
		}
		summary.Processed++
	}

	slog.Info("Leave balances refreshed", "processed", summary.Processed, "failed", summary.Failed)
	return summary, nil
}
