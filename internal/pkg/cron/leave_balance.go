package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
)

const RefreshLeaveBalancesJob = "refresh_leave_balances"

// LeaveBalanceJobs keeps stored entitlements in step with tenure.
type LeaveBalanceJobs struct {
	balanceService leave.BalanceService
	interval       time.Duration
}

func NewLeaveBalanceJobs(balanceService leave.BalanceService, interval time.Duration) *LeaveBalanceJobs {
	return &LeaveBalanceJobs{
		balanceService: balanceService,
		interval:       interval,
	}
}

// RegisterJobs schedules the refresh for the next local midnight, then every
// interval after that.
func (j *LeaveBalanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJobAt(RefreshLeaveBalancesJob, j.interval, UntilMidnight, j.RefreshLeaveBalances)
}

// RefreshLeaveBalances recomputes every balance. Individual failures are
// counted by the service and do not fail the run.
func (j *LeaveBalanceJobs) RefreshLeaveBalances(ctx context.Context) error {
	slog.Info("Cron: Starting leave balance refresh job")

	summary, err := j.balanceService.RefreshAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh leave balances: %w", err)
	}

	slog.Info("Cron: Leave balance refresh completed",
		"processed", summary.Processed, "failed", summary.Failed)
	return nil
}
