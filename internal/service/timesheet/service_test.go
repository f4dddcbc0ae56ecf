package timesheet

import (
	"bytes"
	"context"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type timesheetFixture struct {
	employees  employee.EmployeeRepository
	assignRepo reporting.Repository
	svc        timesheet.Service
	reviewerID string
}

func newTimesheetFixture(t *testing.T) *timesheetFixture {
	t.Helper()
	s := memory.NewStore()
	users := memory.NewUserRepository(s)
	f := &timesheetFixture{
		employees:  memory.NewEmployeeRepository(s),
		assignRepo: memory.NewReportingRepository(s),
	}
	f.svc = NewTimesheetService(s, memory.NewTimesheetRepository(s), f.employees, users, f.assignRepo)

	reviewer, err := users.Create(context.Background(), user.User{Username: "lead@corp.example", Role: user.RoleReportingManager})
	require.NoError(t, err)
	f.reviewerID = reviewer.ID
	return f
}

func (f *timesheetFixture) employee(t *testing.T, email string) employee.Employee {
	t.Helper()
	emp, err := f.employees.Create(context.Background(), employee.Employee{FirstName: "T", LastName: "S", Email: email, Active: true})
	require.NoError(t, err)
	return emp
}

func (f *timesheetFixture) entry(t *testing.T, employeeID, date string) timesheet.Timesheet {
	t.Helper()
	created, err := f.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
		EmployeeID: employeeID,
		EntryFields: timesheet.EntryFields{
			Date: date, StartTime: "09:00", EndTime: "17:30", Billable: true,
		},
	})
	require.NoError(t, err)
	return created
}

func TestCreate_DerivesHours(t *testing.T) {
	f := newTimesheetFixture(t)
	emp := f.employee(t, "a@corp.example")

	created := f.entry(t, emp.ID, "2025-06-16")

	assert.Equal(t, timesheet.StatusPending, created.Status)
	assert.True(t, decimal.NewFromFloat(8.5).Equal(created.TotalHours), created.TotalHours.String())

	_, err := f.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
		EmployeeID:  "missing",
		EntryFields: timesheet.EntryFields{Date: "2025-06-16", StartTime: "09:00", EndTime: "10:00"},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.svc.Create(context.Background(), timesheet.CreateTimesheetRequest{
		EmployeeID:  emp.ID,
		EntryFields: timesheet.EntryFields{Date: "16/06/2025", StartTime: "9am", EndTime: "10:00"},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestReview_TerminalStates(t *testing.T) {
	f := newTimesheetFixture(t)
	ctx := context.Background()
	emp := f.employee(t, "a@corp.example")

	approved := f.entry(t, emp.ID, "2025-06-16")
	got, err := f.svc.Approve(ctx, approved.ID, f.reviewerID, "")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, got.Status)
	assert.Nil(t, got.ManagerComments)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, f.reviewerID, *got.ReviewedBy)

	rejected := f.entry(t, emp.ID, "2025-06-17")
	got, err = f.svc.Reject(ctx, rejected.ID, f.reviewerID, "wrong project")
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRejected, got.Status)
	require.NotNil(t, got.ManagerComments)
	assert.Equal(t, "wrong project", *got.ManagerComments)

	for _, id := range []string{approved.ID, rejected.ID} {
		_, err = f.svc.Approve(ctx, id, f.reviewerID, "")
		assert.ErrorIs(t, err, timesheet.ErrInvalidTransition)
		_, err = f.svc.Reject(ctx, id, f.reviewerID, "again")
		assert.ErrorIs(t, err, timesheet.ErrInvalidTransition)
		_, err = f.svc.Update(ctx, id, timesheet.UpdateTimesheetRequest{
			EntryFields: timesheet.EntryFields{Date: "2025-06-18", StartTime: "10:00", EndTime: "11:00"},
		})
		assert.ErrorIs(t, err, timesheet.ErrInvalidTransition)
	}
}

func TestReview_Errors(t *testing.T) {
	f := newTimesheetFixture(t)
	ctx := context.Background()
	emp := f.employee(t, "a@corp.example")
	pending := f.entry(t, emp.ID, "2025-06-16")

	_, err := f.svc.Reject(ctx, pending.ID, f.reviewerID, " ")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = f.svc.Approve(ctx, pending.ID, "ghost", "")
	assert.ErrorIs(t, err, timesheet.ErrReviewerNotFound)

	_, err = f.svc.Approve(ctx, "missing", f.reviewerID, "")
	assert.ErrorIs(t, err, timesheet.ErrTimesheetNotFound)

	got, err := f.svc.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPending, got.Status)
}

func TestUpdate_Pending(t *testing.T) {
	f := newTimesheetFixture(t)
	emp := f.employee(t, "a@corp.example")
	pending := f.entry(t, emp.ID, "2025-06-16")

	project := "payroll"
	updated, err := f.svc.Update(context.Background(), pending.ID, timesheet.UpdateTimesheetRequest{
		EntryFields: timesheet.EntryFields{Date: "2025-06-16", StartTime: "08:00", EndTime: "12:15", Project: &project},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(4.25).Equal(updated.TotalHours))
	require.NotNil(t, updated.Project)
	assert.Equal(t, "payroll", *updated.Project)
}

func TestSaveWeekly_ReplacesOnlyPending(t *testing.T) {
	f := newTimesheetFixture(t)
	ctx := context.Background()
	emp := f.employee(t, "a@corp.example")

	kept := f.entry(t, emp.ID, "2025-06-16")
	_, err := f.svc.Approve(ctx, kept.ID, f.reviewerID, "")
	require.NoError(t, err)
	f.entry(t, emp.ID, "2025-06-17")
	outside := f.entry(t, emp.ID, "2025-06-23")

	saved, err := f.svc.SaveWeekly(ctx, timesheet.SaveWeeklyRequest{
		EmployeeID: emp.ID,
		WeekStart:  "2025-06-16",
		Entries: []timesheet.EntryFields{
			{Date: "2025-06-18", StartTime: "09:00", EndTime: "17:00"},
			{Date: "2025-06-19", StartTime: "09:00", EndTime: "13:00"},
		},
	})
	require.NoError(t, err)

	dates := make([]string, 0, len(saved))
	for _, e := range saved {
		dates = append(dates, e.Date.Format("2006-01-02"))
	}
	assert.ElementsMatch(t, []string{"2025-06-16", "2025-06-18", "2025-06-19"}, dates)

	_, err = f.svc.Get(ctx, outside.ID)
	assert.NoError(t, err)
}

func TestSaveWeekly_RejectsDatesOutsideWeek(t *testing.T) {
	f := newTimesheetFixture(t)
	emp := f.employee(t, "a@corp.example")

	_, err := f.svc.SaveWeekly(context.Background(), timesheet.SaveWeeklyRequest{
		EmployeeID: emp.ID,
		WeekStart:  "2025-06-16",
		Entries:    []timesheet.EntryFields{{Date: "2025-06-25", StartTime: "09:00", EndTime: "17:00"}},
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "entries[0].date", verrs[0].Field)
}

func TestTeamTimesheets(t *testing.T) {
	f := newTimesheetFixture(t)
	ctx := context.Background()
	manager := f.employee(t, "m@corp.example")
	member := f.employee(t, "e@corp.example")
	outsider := f.employee(t, "o@corp.example")

	empty, err := f.svc.TeamTimesheets(ctx, manager.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = f.assignRepo.Upsert(ctx, reporting.EmployeeReporting{EmployeeID: member.ID, ReportingManagerID: &manager.ID})
	require.NoError(t, err)
	f.entry(t, member.ID, "2025-06-16")
	f.entry(t, outsider.ID, "2025-06-16")

	team, err := f.svc.TeamTimesheets(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, member.ID, team[0].EmployeeID)
}

func TestExportXLSX(t *testing.T) {
	f := newTimesheetFixture(t)
	emp := f.employee(t, "a@corp.example")
	f.entry(t, emp.ID, "2025-06-16")
	f.entry(t, emp.ID, "2025-06-17")

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportXLSX(context.Background(), timesheet.Filter{EmployeeID: &emp.ID}, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Timesheets")
	require.NoError(t, err)
	// header, two entries, total
	assert.Len(t, rows, 4)
}
