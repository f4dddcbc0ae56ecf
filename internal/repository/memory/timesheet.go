package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
)

type timesheetRepository struct {
	s *Store
}

func NewTimesheetRepository(s *Store) timesheet.Repository {
	return &timesheetRepository{s: s}
}

func matches(f timesheet.Filter, t timesheet.Timesheet) bool {
	if f.EmployeeID != nil && t.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.EmployeeIDs != nil && !slices.Contains(f.EmployeeIDs, t.EmployeeID) {
		return false
	}
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	return true
}

func (r *timesheetRepository) Create(_ context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = newID()
	t.CreatedAt = r.s.now()
	if t.Status == "" {
		t.Status = timesheet.StatusPending
	}
	r.s.data.timesheets[t.ID] = t
	t.EmployeeName = r.s.fullName(t.EmployeeID)
	return t, nil
}

func (r *timesheetRepository) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.data.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	t.EmployeeName = r.s.fullName(t.EmployeeID)
	return t, nil
}

func (r *timesheetRepository) GetByIDForUpdate(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return r.GetByID(ctx, id)
}

func (r *timesheetRepository) List(_ context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	timesheets := make([]timesheet.Timesheet, 0)
	for _, t := range r.s.data.timesheets {
		if matches(filter, t) {
			t.EmployeeName = r.s.fullName(t.EmployeeID)
			timesheets = append(timesheets, t)
		}
	}
	slices.SortFunc(timesheets, func(a, b timesheet.Timesheet) int {
		return cmp.Or(
			b.Date.Compare(a.Date),
			cmp.Compare(b.StartTime, a.StartTime),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return timesheets, nil
}

func (r *timesheetRepository) Update(_ context.Context, t timesheet.Timesheet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.data.timesheets[t.ID]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	t.EmployeeID = cur.EmployeeID
	t.CreatedAt = cur.CreatedAt
	t.EmployeeName = ""
	r.s.data.timesheets[t.ID] = t
	return nil
}

func (r *timesheetRepository) DeletePendingInRange(_ context.Context, employeeID string, from, to time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.timesheets, func(_ string, t timesheet.Timesheet) bool {
		return t.EmployeeID == employeeID && t.Status == timesheet.StatusPending &&
			!t.Date.Before(from) && !t.Date.After(to)
	})
	return nil
}

func (r *timesheetRepository) ClearReviewer(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, t := range r.s.data.timesheets {
		if t.ReviewedBy != nil && *t.ReviewedBy == userID {
			t.ReviewedBy = nil
			r.s.data.timesheets[id] = t
		}
	}
	return nil
}

func (r *timesheetRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.timesheets, func(_ string, t timesheet.Timesheet) bool { return t.EmployeeID == employeeID })
	return nil
}
