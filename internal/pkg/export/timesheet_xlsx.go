package export

import (
	"fmt"
	"io"

	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

const timesheetSheet = "Timesheets"

var timesheetHeaders = []string{
	"Employee", "Date", "Start", "End", "Hours", "Project", "Task", "Category", "Billable", "Status", "Manager Comments",
}

// WriteTimesheetsXLSX renders entries as a single-sheet workbook with a
// header row and a closing total of hours.
func WriteTimesheetsXLSX(w io.Writer, entries []timesheet.Timesheet) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(timesheetSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(timesheetSheet, "A1", &timesheetHeaders); err != nil {
		return err
	}
	lastCol := colName(len(timesheetHeaders))
	if err := f.SetCellStyle(timesheetSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	_ = f.SetColWidth(timesheetSheet, "A", "A", 24)
	_ = f.SetColWidth(timesheetSheet, "B", "B", 12)
	_ = f.SetColWidth(timesheetSheet, "F", "H", 18)
	_ = f.SetColWidth(timesheetSheet, lastCol, lastCol, 32)

	row := 2
	for _, t := range entries {
		hours, _ := t.TotalHours.Float64()
		values := []any{
			t.EmployeeName,
			t.Date.Format(validator.DateLayout),
			t.StartTime,
			t.EndTime,
			hours,
			deref(t.Project),
			deref(t.Task),
			deref(t.Category),
			yesNo(t.Billable),
			string(t.Status),
			deref(t.ManagerComments),
		}
		if err := f.SetSheetRow(timesheetSheet, cell("A", row), &values); err != nil {
			return err
		}
		row++
	}

	if len(entries) > 0 {
		if err := f.SetCellValue(timesheetSheet, cell("D", row), "Total"); err != nil {
			return err
		}
		formula := fmt.Sprintf("SUM(E2:E%d)", row-1)
		if err := f.SetCellFormula(timesheetSheet, cell("E", row), formula); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
