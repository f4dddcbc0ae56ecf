package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTimesheetsXLSX(t *testing.T) {
	project := "onboarding"
	entries := []timesheet.Timesheet{
		{
			EmployeeName: "Ada Lovelace",
			Date:         time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			StartTime:    "09:00",
			EndTime:      "17:30",
			TotalHours:   decimal.RequireFromString("8.5"),
			Project:      &project,
			Billable:     true,
			Status:       timesheet.StatusApproved,
		},
		{
			EmployeeName: "Ada Lovelace",
			Date:         time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
			StartTime:    "09:00",
			EndTime:      "12:00",
			TotalHours:   decimal.NewFromInt(3),
			Status:       timesheet.StatusPending,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTimesheetsXLSX(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{timesheetSheet}, f.GetSheetList())

	header, err := f.GetCellValue(timesheetSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	billable, err := f.GetCellValue(timesheetSheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "Yes", billable)

	gotProject, err := f.GetCellValue(timesheetSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "onboarding", gotProject)

	formula, err := f.GetCellFormula(timesheetSheet, "E4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(E2:E3)", formula)
}

func TestWriteTimesheetsXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimesheetsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(timesheetSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestLeaveCalendar(t *testing.T) {
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	leaves := []leave.Leave{
		{
			ID:           "l-1",
			EmployeeName: "Alan Turing",
			LeaveType:    leave.LeaveTypeEarned,
			StartDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Reason:       "conference",
		},
	}

	feed := LeaveCalendar(leaves, stamp)

	assert.Contains(t, feed, "PRODID:"+calendarProductID)
	assert.Contains(t, feed, "UID:l-1@hrms")
	assert.Contains(t, feed, "DTSTART;VALUE=DATE:20250630")
	assert.Contains(t, feed, "DTEND;VALUE=DATE:20250702")
	assert.Contains(t, feed, "DESCRIPTION:conference")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(feed), "END:VCALENDAR"))
}

func TestLeaveCalendar_NoLeaves(t *testing.T) {
	feed := LeaveCalendar(nil, time.Now())
	assert.NotContains(t, feed, "BEGIN:VEVENT")
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
}
