package timesheet

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string) (Timesheet, error)
	GetByIDForUpdate(ctx context.Context, id string) (Timesheet, error)
	// List returns entries ordered by date, newest first.
	List(ctx context.Context, filter Filter) ([]Timesheet, error)
	Update(ctx context.Context, t Timesheet) error
	// DeletePendingInRange removes PENDING entries of the employee dated
	// within [from, to].
	DeletePendingInRange(ctx context.Context, employeeID string, from, to time.Time) error
	ClearReviewer(ctx context.Context, userID string) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}
