package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)

type dashboardFixture struct {
	employees  employee.EmployeeRepository
	users      user.UserRepository
	leaves     leave.LeaveRepository
	timesheets timesheet.Repository
	assignRepo reporting.Repository
	svc        *DashboardServiceImpl
}

func newDashboardFixture() *dashboardFixture {
	s := memory.NewStore()
	f := &dashboardFixture{
		employees:  memory.NewEmployeeRepository(s),
		users:      memory.NewUserRepository(s),
		leaves:     memory.NewLeaveRepository(s),
		timesheets: memory.NewTimesheetRepository(s),
		assignRepo: memory.NewReportingRepository(s),
	}
	f.svc = NewDashboardService(memory.NewDashboardRepository(s), f.employees, f.assignRepo).(*DashboardServiceImpl)
	f.svc.now = func() time.Time { return today }
	return f
}

func (f *dashboardFixture) person(t *testing.T, name string, role user.Role, active bool) employee.Employee {
	t.Helper()
	ctx := context.Background()
	email := name + "@corp.example"
	u, err := f.users.Create(ctx, user.User{Username: email, Email: email, Role: role})
	require.NoError(t, err)
	emp, err := f.employees.Create(ctx, employee.Employee{UserID: &u.ID, FirstName: name, LastName: "X", Email: email, Active: active})
	require.NoError(t, err)
	return emp
}

func (f *dashboardFixture) leave(t *testing.T, employeeID string, status leave.LeaveStatus) {
	t.Helper()
	ctx := context.Background()
	l, err := f.leaves.Create(ctx, leave.Leave{
		EmployeeID: employeeID, StartDate: leave.DateOf(today), EndDate: leave.DateOf(today),
		LeaveType: leave.LeaveTypeSick, Status: leave.LeaveStatusPending,
	})
	require.NoError(t, err)
	if status != leave.LeaveStatusPending {
		l.Status = status
		require.NoError(t, f.leaves.UpdateReview(ctx, l))
	}
}

func TestAdminSummary(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	f.person(t, "root", user.RoleAdmin, true)
	lead := f.person(t, "lead", user.RoleReportingManager, true)
	f.person(t, "people", user.RoleHR, true)
	dev := f.person(t, "dev", user.RoleEmployee, true)
	f.person(t, "gone", user.RoleEmployee, false)

	f.leave(t, dev.ID, leave.LeaveStatusPending)
	f.leave(t, lead.ID, leave.LeaveStatusApproved)
	_, err := f.timesheets.Create(ctx, timesheet.Timesheet{EmployeeID: dev.ID, Date: today, StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)

	got, err := f.svc.AdminSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.TotalEmployees)
	assert.Equal(t, int64(4), got.ActiveEmployees)
	assert.Equal(t, int64(1), got.Managers)
	assert.Equal(t, int64(1), got.HR)
	assert.Equal(t, int64(1), got.PendingLeaves)
	assert.Equal(t, int64(1), got.PendingTimesheets)
	assert.Equal(t, []string{"lead X"}, got.OnLeaveToday)
}

func TestAdminSummary_Empty(t *testing.T) {
	f := newDashboardFixture()

	got, err := f.svc.AdminSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got.OnLeaveToday)
	assert.Zero(t, got.TotalEmployees)
}

func TestTeamSummary(t *testing.T) {
	f := newDashboardFixture()
	ctx := context.Background()

	lead := f.person(t, "lead", user.RoleReportingManager, true)
	member := f.person(t, "member", user.RoleEmployee, true)
	other := f.person(t, "other", user.RoleEmployee, true)
	_, err := f.assignRepo.Upsert(ctx, reporting.EmployeeReporting{EmployeeID: member.ID, ReportingManagerID: &lead.ID})
	require.NoError(t, err)

	f.leave(t, member.ID, leave.LeaveStatusApproved)
	f.leave(t, member.ID, leave.LeaveStatusPending)
	f.leave(t, other.ID, leave.LeaveStatusPending)

	got, err := f.svc.TeamSummary(ctx, lead.ID)
	require.NoError(t, err)

	assert.Equal(t, lead.ID, got.ManagerID)
	assert.Equal(t, 1, got.TeamSize)
	assert.Equal(t, int64(1), got.PendingLeaves)
	assert.Equal(t, []string{"member X"}, got.OnLeaveToday)

	_, err = f.svc.TeamSummary(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTeamSummary_NoTeam(t *testing.T) {
	f := newDashboardFixture()
	lead := f.person(t, "lead", user.RoleReportingManager, true)

	got, err := f.svc.TeamSummary(context.Background(), lead.ID)
	require.NoError(t, err)
	assert.Zero(t, got.TeamSize)
	assert.Equal(t, []string{}, got.OnLeaveToday)
}
