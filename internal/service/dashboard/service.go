package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/dashboard"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
	reportingRepository reporting.Repository
	now                 func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository, reportingRepo reporting.Repository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		EmployeeRepository:  employeeRepo,
		reportingRepository: reportingRepo,
		now:                 time.Now,
	}
}

func (s *DashboardServiceImpl) today() time.Time {
	return leave.DateOf(s.now())
}

// AdminSummary implements dashboard.DashboardService. The queries run
// concurrently.
func (s *DashboardServiceImpl) AdminSummary(ctx context.Context) (dashboard.AdminSummaryResponse, error) {
	var (
		resp      dashboard.AdminSummaryResponse
		empStats  dashboard.EmployeeStats
		roleStats dashboard.RoleStats
	)
	today := s.today()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		empStats, err = s.DashboardRepository.GetEmployeeStats(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		roleStats, err = s.DashboardRepository.GetRoleStats(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		resp.PendingLeaves, err = s.DashboardRepository.CountPendingLeaves(gCtx, nil)
		return err
	})

	g.Go(func() error {
		var err error
		resp.PendingTimesheets, err = s.DashboardRepository.CountPendingTimesheets(gCtx, nil)
		return err
	})

	g.Go(func() error {
		var err error
		resp.OnLeaveToday, err = s.DashboardRepository.OnLeaveOn(gCtx, today, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminSummaryResponse{}, fmt.Errorf("failed to build admin summary: %w", err)
	}

	resp.TotalEmployees = empStats.Total
	resp.ActiveEmployees = empStats.Active
	resp.Managers = roleStats.Managers
	resp.HR = roleStats.HR
	if resp.OnLeaveToday == nil {
		resp.OnLeaveToday = []string{}
	}
	return resp, nil
}

// TeamSummary implements dashboard.DashboardService. Counts are scoped to
// the employees currently assigned to managerID.
func (s *DashboardServiceImpl) TeamSummary(ctx context.Context, managerID string) (dashboard.TeamSummaryResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, managerID); err != nil {
		return dashboard.TeamSummaryResponse{}, err
	}

	assignments, err := s.reportingRepository.ListByManagerID(ctx, managerID)
	if err != nil {
		return dashboard.TeamSummaryResponse{}, fmt.Errorf("failed to list team of manager %s: %w", managerID, err)
	}
	memberIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		memberIDs = append(memberIDs, a.EmployeeID)
	}

	resp := dashboard.TeamSummaryResponse{
		ManagerID:    managerID,
		TeamSize:     len(memberIDs),
		OnLeaveToday: []string{},
	}
	if len(memberIDs) == 0 {
		return resp, nil
	}
	today := s.today()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resp.PendingLeaves, err = s.DashboardRepository.CountPendingLeaves(gCtx, memberIDs)
		return err
	})

	g.Go(func() error {
		var err error
		resp.PendingTimesheets, err = s.DashboardRepository.CountPendingTimesheets(gCtx, memberIDs)
		return err
	})

	var onLeave []string
	g.Go(func() error {
		var err error
		onLeave, err = s.DashboardRepository.OnLeaveOn(gCtx, today, memberIDs)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.TeamSummaryResponse{}, fmt.Errorf("failed to build team summary: %w", err)
	}
	if onLeave != nil {
		resp.OnLeaveToday = onLeave
	}
	return resp, nil
}
