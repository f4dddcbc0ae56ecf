package attendance

import (
	"context"
	"time"
)

// Service is a read-only projection of approved leave onto calendar days.
type Service interface {
	// GetCalendarAttendance maps each working day in [start, end] that has at
	// least one employee on approved leave to their full names.
	GetCalendarAttendance(ctx context.Context, start, end time.Time) (Calendar, error)
	// LeaveCalendar renders approved leave in [start, end] as an iCalendar feed.
	LeaveCalendar(ctx context.Context, start, end time.Time) ([]byte, error)
}
