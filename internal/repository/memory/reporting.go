package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
)

type reportingRepository struct {
	s *Store
}

func NewReportingRepository(s *Store) reporting.Repository {
	return &reportingRepository{s: s}
}

func byAssigned(a, b reporting.EmployeeReporting) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (r *reportingRepository) GetByEmployeeID(_ context.Context, employeeID string) (reporting.EmployeeReporting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.data.reporting[employeeID]
	if !ok {
		return reporting.EmployeeReporting{}, reporting.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *reportingRepository) Upsert(_ context.Context, a reporting.EmployeeReporting) (reporting.EmployeeReporting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	if cur, ok := r.s.data.reporting[a.EmployeeID]; ok {
		a.ID = cur.ID
		a.CreatedAt = cur.CreatedAt
	} else {
		a.ID = newID()
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	r.s.data.reporting[a.EmployeeID] = a
	return a, nil
}

func (r *reportingRepository) collect(match func(reporting.EmployeeReporting) bool) []reporting.EmployeeReporting {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	assignments := make([]reporting.EmployeeReporting, 0)
	for _, a := range r.s.data.reporting {
		if match(a) {
			assignments = append(assignments, a)
		}
	}
	slices.SortFunc(assignments, byAssigned)
	return assignments
}

func (r *reportingRepository) List(_ context.Context) ([]reporting.EmployeeReporting, error) {
	return r.collect(func(reporting.EmployeeReporting) bool { return true }), nil
}

func (r *reportingRepository) ListByManagerID(_ context.Context, managerID string) ([]reporting.EmployeeReporting, error) {
	return r.collect(func(a reporting.EmployeeReporting) bool { return a.ReportsTo(managerID) }), nil
}

func (r *reportingRepository) clear(id string, field func(*reporting.EmployeeReporting) **string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for key, a := range r.s.data.reporting {
		if p := field(&a); *p != nil && **p == id {
			*p = nil
			a.UpdatedAt = r.s.now()
			r.s.data.reporting[key] = a
		}
	}
}

func (r *reportingRepository) ClearManager(_ context.Context, managerID string) error {
	r.clear(managerID, func(a *reporting.EmployeeReporting) **string { return &a.ReportingManagerID })
	return nil
}

func (r *reportingRepository) ClearHR(_ context.Context, hrID string) error {
	r.clear(hrID, func(a *reporting.EmployeeReporting) **string { return &a.HRID })
	return nil
}

func (r *reportingRepository) ClearPreviousManager(_ context.Context, managerID string) error {
	r.clear(managerID, func(a *reporting.EmployeeReporting) **string { return &a.PreviousReportingManagerID })
	return nil
}

func (r *reportingRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.data.reporting, employeeID)
	return nil
}
