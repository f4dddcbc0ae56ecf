package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/attendance"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/export"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	leave.LeaveRepository
	now func() time.Time
}

func NewAttendanceService(leaveRepo leave.LeaveRepository) attendance.Service {
	return &AttendanceServiceImpl{
		LeaveRepository: leaveRepo,
		now:             time.Now,
	}
}

// GetCalendarAttendance implements attendance.Service. Weekends are never
// listed, even when a leave spans them.
func (a *AttendanceServiceImpl) GetCalendarAttendance(ctx context.Context, start, end time.Time) (attendance.Calendar, error) {
	calendar := attendance.Calendar{}
	if end.Before(start) {
		return calendar, nil
	}

	leaves, err := a.LeaveRepository.ListApprovedOverlapping(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	for _, day := range leave.WorkingDays(start, end) {
		var names []string
		for _, l := range leaves {
			if l.Covers(day) {
				names = append(names, l.EmployeeName)
			}
		}
		if len(names) > 0 {
			calendar[day.Format(validator.DateLayout)] = names
		}
	}
	return calendar, nil
}

// LeaveCalendar implements attendance.Service.
func (a *AttendanceServiceImpl) LeaveCalendar(ctx context.Context, start, end time.Time) ([]byte, error) {
	var leaves []leave.Leave
	if !end.Before(start) {
		var err error
		leaves, err = a.LeaveRepository.ListApprovedOverlapping(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list approved leaves: %w", err)
		}
	}
	return []byte(export.LeaveCalendar(leaves, a.now())), nil
}
