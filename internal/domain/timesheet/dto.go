package timesheet

import (
	"strconv"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

// EntryFields are the user-editable fields of a timesheet entry.
type EntryFields struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Project   *string `json:"project,omitempty"`
	Task      *string `json:"task,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Category  *string `json:"category,omitempty"`
	Billable  bool    `json:"billable"`
}

func (f *EntryFields) validate(errs *validator.ValidationErrors, prefix string) {
	if _, ok := validator.IsValidDate(f.Date); !ok {
		errs.Add(prefix+"date", "date must be in YYYY-MM-DD format")
	}
	if _, ok := validator.IsValidClock(f.StartTime); !ok {
		errs.Add(prefix+"start_time", "start_time must be in HH:MM format")
	}
	if _, ok := validator.IsValidClock(f.EndTime); !ok {
		errs.Add(prefix+"end_time", "end_time must be in HH:MM format")
	}
}

// Apply copies the fields onto t and derives TotalHours. Call after Validate.
func (f *EntryFields) Apply(t *Timesheet) {
	t.Date, _ = validator.IsValidDate(f.Date)
	t.StartTime = f.StartTime
	t.EndTime = f.EndTime
	t.TotalHours = HoursBetween(f.StartTime, f.EndTime)
	t.Project = f.Project
	t.Task = f.Task
	t.Notes = f.Notes
	t.Category = f.Category
	t.Billable = f.Billable
}

type CreateTimesheetRequest struct {
	EmployeeID string `json:"employee_id"`
	EntryFields
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	r.EntryFields.validate(&errs, "")

	return errs.Err()
}

type UpdateTimesheetRequest struct {
	EntryFields
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors
	r.EntryFields.validate(&errs, "")
	return errs.Err()
}

type ReviewRequest struct {
	Comments string `json:"comments"`
}

type SaveWeeklyRequest struct {
	EmployeeID string        `json:"employee_id"`
	WeekStart  string        `json:"week_start"`
	Entries    []EntryFields `json:"entries"`
}

func (r *SaveWeeklyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	weekStart, ok := validator.IsValidDate(r.WeekStart)
	if !ok {
		errs.Add("week_start", "week_start must be in YYYY-MM-DD format")
	}
	for i := range r.Entries {
		prefix := "entries[" + strconv.Itoa(i) + "]."
		r.Entries[i].validate(&errs, prefix)
		if !ok {
			continue
		}
		if d, dok := validator.IsValidDate(r.Entries[i].Date); dok {
			if d.Before(weekStart) || d.After(weekStart.AddDate(0, 0, 6)) {
				errs.Add(prefix+"date", "date must fall within the week")
			}
		}
	}

	return errs.Err()
}

// Week returns the first and last date of the requested week. Call after
// Validate.
func (r *SaveWeeklyRequest) Week() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.WeekStart)
	return start, start.AddDate(0, 0, 6)
}

type TimesheetResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	TotalHours      string  `json:"total_hours"`
	Project         *string `json:"project,omitempty"`
	Task            *string `json:"task,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Category        *string `json:"category,omitempty"`
	Billable        bool    `json:"billable"`
	Status          string  `json:"status"`
	ManagerComments *string `json:"manager_comments,omitempty"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
}

func NewTimesheetResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		EmployeeName:    t.EmployeeName,
		Date:            t.Date.Format(validator.DateLayout),
		StartTime:       t.StartTime,
		EndTime:         t.EndTime,
		TotalHours:      t.TotalHours.StringFixed(2),
		Project:         t.Project,
		Task:            t.Task,
		Notes:           t.Notes,
		Category:        t.Category,
		Billable:        t.Billable,
		Status:          string(t.Status),
		ManagerComments: t.ManagerComments,
		ReviewedBy:      t.ReviewedBy,
	}
	if t.ReviewedAt != nil {
		reviewedAt := t.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

func NewTimesheetResponses(list []Timesheet) []TimesheetResponse {
	out := make([]TimesheetResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTimesheetResponse(t))
	}
	return out
}
