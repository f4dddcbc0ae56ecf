package leave

import (
	"context"
	"fmt"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

// defaultRecentLimit applies when a caller asks for recent leaves without a
// positive limit.
const defaultRecentLimit = 5

type LeaveServiceImpl struct {
	tx database.Transactor
	leave.LeaveRepository
	leave.BalanceRepository
	employee.EmployeeRepository
	user.UserRepository
	reportingRepository reporting.Repository
	balanceService      leave.BalanceService
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepository leave.LeaveRepository,
	balanceRepository leave.BalanceRepository,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	reportingRepository reporting.Repository,
	balanceService leave.BalanceService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                  tx,
		LeaveRepository:     leaveRepository,
		BalanceRepository:   balanceRepository,
		EmployeeRepository:  employeeRepository,
		UserRepository:      userRepository,
		reportingRepository: reportingRepository,
		balanceService:      balanceService,
	}
}

// GetLeave implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.Leave, error) {
	return l.LeaveRepository.GetByID(ctx, id)
}

// GetAllLeaves implements leave.LeaveService.
func (l *LeaveServiceImpl) GetAllLeaves(ctx context.Context) ([]leave.Leave, error) {
	return l.LeaveRepository.List(ctx)
}

// GetLeavesByEmployeeID implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeavesByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return l.LeaveRepository.ListByEmployeeID(ctx, employeeID, 0)
}

// GetRecentLeavesByEmployeeID implements leave.LeaveService.
func (l *LeaveServiceImpl) GetRecentLeavesByEmployeeID(ctx context.Context, employeeID string, limit int) ([]leave.Leave, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if _, err := l.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return l.LeaveRepository.ListByEmployeeID(ctx, employeeID, limit)
}

// GetTeamLeavesByManagerID implements leave.LeaveService. Team membership
// follows the reporting assignment, not the deprecated employee column.
func (l *LeaveServiceImpl) GetTeamLeavesByManagerID(ctx context.Context, managerID string) ([]leave.Leave, error) {
	if _, err := l.EmployeeRepository.GetByID(ctx, managerID); err != nil {
		return nil, err
	}

	assignments, err := l.reportingRepository.ListByManagerID(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team of manager %s: %w", managerID, err)
	}

	memberIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		memberIDs = append(memberIDs, a.EmployeeID)
	}
	return l.LeaveRepository.ListByEmployeeIDs(ctx, memberIDs)
}
