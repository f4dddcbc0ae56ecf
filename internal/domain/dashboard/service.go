package dashboard

import "context"

type DashboardService interface {
	AdminSummary(ctx context.Context) (AdminSummaryResponse, error)
	TeamSummary(ctx context.Context, managerID string) (TeamSummaryResponse, error)
}
