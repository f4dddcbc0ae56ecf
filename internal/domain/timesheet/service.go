package timesheet

import (
	"context"
	"io"
)

type Service interface {
	Create(ctx context.Context, req CreateTimesheetRequest) (Timesheet, error)
	Update(ctx context.Context, id string, req UpdateTimesheetRequest) (Timesheet, error)
	Get(ctx context.Context, id string) (Timesheet, error)
	List(ctx context.Context, filter Filter) ([]Timesheet, error)
	Approve(ctx context.Context, id, reviewerID, comments string) (Timesheet, error)
	Reject(ctx context.Context, id, reviewerID, reason string) (Timesheet, error)
	// SaveWeekly replaces the employee's PENDING entries for the week
	// starting at weekStart with entries.
	SaveWeekly(ctx context.Context, req SaveWeeklyRequest) ([]Timesheet, error)
	TeamTimesheets(ctx context.Context, managerID string) ([]Timesheet, error)
	ExportXLSX(ctx context.Context, filter Filter, w io.Writer) error
}
