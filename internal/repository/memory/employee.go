package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepository{s: s}
}

func byName(a, b employee.Employee) int {
	return cmp.Or(
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.ID, b.ID),
	)
}

func (r *employeeRepository) find(match func(employee.Employee) bool) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.data.employees {
		if match(e) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.ID == id })
}

func (r *employeeRepository) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.UserID != nil && *e.UserID == userID })
}

func (r *employeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return strings.EqualFold(e.Email, email) })
}

func (r *employeeRepository) GetByPhoneNumber(_ context.Context, phone string) (employee.Employee, error) {
	return r.find(func(e employee.Employee) bool { return e.PhoneNumber != nil && *e.PhoneNumber == phone })
}

// checkUnique mirrors the unique constraints of the employees table.
// Caller holds mu.
func (r *employeeRepository) checkUnique(e employee.Employee) error {
	for _, other := range r.s.data.employees {
		if other.ID == e.ID {
			continue
		}
		if other.Email == e.Email {
			return employee.ErrEmailExists
		}
		if e.PhoneNumber != nil && other.PhoneNumber != nil && *other.PhoneNumber == *e.PhoneNumber {
			return employee.ErrPhoneExists
		}
	}
	return nil
}

func (r *employeeRepository) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = newID()
	if err := r.checkUnique(e); err != nil {
		return employee.Employee{}, err
	}
	e.ReportingManagerID = nil
	e.CreatedAt = r.s.now()
	e.UpdatedAt = e.CreatedAt
	r.s.data.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepository) Update(_ context.Context, e employee.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.employees[e.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if err := r.checkUnique(e); err != nil {
		return err
	}
	// user_id and the manager mirror have their own setters
	e.UserID = current.UserID
	e.ReportingManagerID = current.ReportingManagerID
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = r.s.now()
	r.s.data.employees[e.ID] = e
	return nil
}

func (r *employeeRepository) collect(match func(employee.Employee) bool) []employee.Employee {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	employees := make([]employee.Employee, 0)
	for _, e := range r.s.data.employees {
		if match(e) {
			employees = append(employees, e)
		}
	}
	slices.SortFunc(employees, byName)
	return employees
}

func (r *employeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	return r.collect(func(employee.Employee) bool { return true }), nil
}

func (r *employeeRepository) ListByIDs(_ context.Context, ids []string) ([]employee.Employee, error) {
	set := inSet(ids)
	return r.collect(func(e employee.Employee) bool {
		_, ok := set[e.ID]
		return ok
	}), nil
}

func (r *employeeRepository) ListWithoutCompanyDetail(_ context.Context) ([]employee.Employee, error) {
	return r.collect(func(e employee.Employee) bool {
		_, ok := r.s.data.companyDetails[e.ID]
		return !ok
	}), nil
}

func (r *employeeRepository) mutate(id string, fn func(*employee.Employee)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.data.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	fn(&e)
	e.UpdatedAt = r.s.now()
	r.s.data.employees[id] = e
	return nil
}

func (r *employeeRepository) SetActive(_ context.Context, id string, active bool) error {
	return r.mutate(id, func(e *employee.Employee) { e.Active = active })
}

func (r *employeeRepository) SetUserID(_ context.Context, id string, userID *string) error {
	return r.mutate(id, func(e *employee.Employee) { e.UserID = userID })
}

func (r *employeeRepository) SetReportingManager(_ context.Context, id string, managerID *string) error {
	return r.mutate(id, func(e *employee.Employee) { e.ReportingManagerID = managerID })
}

func (r *employeeRepository) ClearReportingManagerRefs(_ context.Context, managerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, e := range r.s.data.employees {
		if e.ReportingManagerID != nil && *e.ReportingManagerID == managerID {
			e.ReportingManagerID = nil
			e.UpdatedAt = r.s.now()
			r.s.data.employees[id] = e
		}
	}
	return nil
}

func (r *employeeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.data.employees, id)
	return nil
}

type companyDetailRepository struct {
	s *Store
}

func NewCompanyDetailRepository(s *Store) employee.CompanyDetailRepository {
	return &companyDetailRepository{s: s}
}

func (r *companyDetailRepository) GetByEmployeeID(_ context.Context, employeeID string) (employee.CompanyDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.data.companyDetails[employeeID]
	if !ok {
		return employee.CompanyDetail{}, employee.ErrCompanyDetailNotFound
	}
	return d, nil
}

func (r *companyDetailRepository) ListByEmployeeIDs(_ context.Context, employeeIDs []string) ([]employee.CompanyDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	details := make([]employee.CompanyDetail, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		if d, ok := r.s.data.companyDetails[id]; ok {
			details = append(details, d)
		}
	}
	return details, nil
}

// corporateIDTaken ignores the placeholder, which may repeat. Caller holds mu.
func (r *companyDetailRepository) corporateIDTaken(d employee.CompanyDetail) bool {
	if d.CorporateID == employee.PlaceholderCorporateID {
		return false
	}
	for _, other := range r.s.data.companyDetails {
		if other.EmployeeID != d.EmployeeID && other.CorporateID == d.CorporateID {
			return true
		}
	}
	return false
}

func (r *companyDetailRepository) Create(_ context.Context, d employee.CompanyDetail) (employee.CompanyDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.companyDetails[d.EmployeeID]; ok {
		return employee.CompanyDetail{}, employee.ErrCompanyDetailExists
	}
	if r.corporateIDTaken(d) {
		return employee.CompanyDetail{}, employee.ErrCorporateIDExists
	}
	d.ID = newID()
	d.CreatedAt = r.s.now()
	d.UpdatedAt = d.CreatedAt
	r.s.data.companyDetails[d.EmployeeID] = d
	return d, nil
}

func (r *companyDetailRepository) Update(_ context.Context, d employee.CompanyDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.data.companyDetails[d.EmployeeID]
	if !ok {
		return employee.ErrCompanyDetailNotFound
	}
	if r.corporateIDTaken(d) {
		return employee.ErrCorporateIDExists
	}
	d.ID = current.ID
	d.CreatedAt = current.CreatedAt
	d.UpdatedAt = r.s.now()
	r.s.data.companyDetails[d.EmployeeID] = d
	return nil
}

func (r *companyDetailRepository) ExistsByCorporateID(_ context.Context, corporateID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.data.companyDetails {
		if d.CorporateID == corporateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *companyDetailRepository) ExistsByCorporateEmail(_ context.Context, corporateEmail string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, d := range r.s.data.companyDetails {
		if strings.EqualFold(d.CorporateEmail, corporateEmail) {
			return true, nil
		}
	}
	return false, nil
}

func (r *companyDetailRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.data.companyDetails, employeeID)
	return nil
}
