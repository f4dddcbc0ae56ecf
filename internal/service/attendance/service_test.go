package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/attendance"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type attendanceFixture struct {
	employees employee.EmployeeRepository
	leaves    leave.LeaveRepository
	svc       attendance.Service
}

func newAttendanceFixture() *attendanceFixture {
	s := memory.NewStore()
	f := &attendanceFixture{
		employees: memory.NewEmployeeRepository(s),
		leaves:    memory.NewLeaveRepository(s),
	}
	f.svc = NewAttendanceService(f.leaves)
	return f
}

func (f *attendanceFixture) leave(t *testing.T, first, last string, start, end time.Time, status leave.LeaveStatus) {
	t.Helper()
	ctx := context.Background()

	emp, err := f.employees.GetByEmail(ctx, first+"@corp.example")
	if err != nil {
		emp, err = f.employees.Create(ctx, employee.Employee{FirstName: first, LastName: last, Email: first + "@corp.example", Active: true})
		require.NoError(t, err)
	}

	l, err := f.leaves.Create(ctx, leave.Leave{
		EmployeeID: emp.ID, StartDate: start, EndDate: end,
		LeaveType: leave.LeaveTypeCasual, Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)
	if status != leave.LeaveStatusPending {
		l.Status = status
		require.NoError(t, f.leaves.UpdateReview(ctx, l))
	}
}

func TestGetCalendarAttendance_SkipsWeekends(t *testing.T) {
	f := newAttendanceFixture()
	// Friday 2025-06-13 through Monday 2025-06-16
	f.leave(t, "ada", "Lovelace", date(2025, 6, 13), date(2025, 6, 16), leave.LeaveStatusApproved)

	cal, err := f.svc.GetCalendarAttendance(context.Background(), date(2025, 6, 9), date(2025, 6, 22))
	require.NoError(t, err)

	assert.Equal(t, attendance.Calendar{
		"2025-06-13": {"ada Lovelace"},
		"2025-06-16": {"ada Lovelace"},
	}, cal)
}

func TestGetCalendarAttendance_WeekendOnlyLeave(t *testing.T) {
	f := newAttendanceFixture()
	f.leave(t, "ada", "Lovelace", date(2025, 6, 14), date(2025, 6, 15), leave.LeaveStatusApproved)

	cal, err := f.svc.GetCalendarAttendance(context.Background(), date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, err)
	assert.Empty(t, cal)
}

func TestGetCalendarAttendance_OnlyApproved(t *testing.T) {
	f := newAttendanceFixture()
	f.leave(t, "ada", "Lovelace", date(2025, 6, 17), date(2025, 6, 17), leave.LeaveStatusApproved)
	f.leave(t, "alan", "Turing", date(2025, 6, 17), date(2025, 6, 17), leave.LeaveStatusApproved)
	f.leave(t, "grace", "Hopper", date(2025, 6, 17), date(2025, 6, 17), leave.LeaveStatusPending)
	f.leave(t, "edsger", "Dijkstra", date(2025, 6, 17), date(2025, 6, 17), leave.LeaveStatusRejected)

	cal, err := f.svc.GetCalendarAttendance(context.Background(), date(2025, 6, 17), date(2025, 6, 17))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ada Lovelace", "alan Turing"}, cal["2025-06-17"])
}

func TestGetCalendarAttendance_InvertedRange(t *testing.T) {
	f := newAttendanceFixture()
	f.leave(t, "ada", "Lovelace", date(2025, 6, 17), date(2025, 6, 17), leave.LeaveStatusApproved)

	cal, err := f.svc.GetCalendarAttendance(context.Background(), date(2025, 6, 20), date(2025, 6, 10))
	require.NoError(t, err)
	assert.NotNil(t, cal)
	assert.Empty(t, cal)
}

func TestLeaveCalendar(t *testing.T) {
	f := newAttendanceFixture()
	f.leave(t, "ada", "Lovelace", date(2025, 6, 16), date(2025, 6, 18), leave.LeaveStatusApproved)

	body, err := f.svc.LeaveCalendar(context.Background(), date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, err)

	feed := string(body)
	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Equal(t, 1, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20250616")
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20250619")
	assert.Contains(t, feed, "ada Lovelace (CASUAL leave)")
}
