package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
)

type profileRepository struct {
	s *Store
}

func NewProfileRepository(s *Store) employee.ProfileRepository {
	return &profileRepository{s: s}
}

func (r *profileRepository) ListEducation(_ context.Context, employeeID string) ([]employee.Education, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	education := make([]employee.Education, 0)
	for _, e := range r.s.data.education {
		if e.EmployeeID == employeeID {
			education = append(education, e)
		}
	}
	slices.SortFunc(education, func(a, b employee.Education) int { return cmp.Compare(a.ID, b.ID) })
	return education, nil
}

func (r *profileRepository) CreateEducation(_ context.Context, e employee.Education) (employee.Education, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = newID()
	r.s.data.education[e.ID] = e
	return e, nil
}

func (r *profileRepository) DeleteEducationByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.education, func(_ string, e employee.Education) bool { return e.EmployeeID == employeeID })
	return nil
}

func (r *profileRepository) ListExperience(_ context.Context, employeeID string) ([]employee.Experience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	experience := make([]employee.Experience, 0)
	for _, e := range r.s.data.experience {
		if e.EmployeeID == employeeID {
			experience = append(experience, e)
		}
	}
	slices.SortFunc(experience, func(a, b employee.Experience) int { return cmp.Compare(a.ID, b.ID) })
	return experience, nil
}

func (r *profileRepository) CreateExperience(_ context.Context, e employee.Experience) (employee.Experience, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e.ID = newID()
	r.s.data.experience[e.ID] = e
	return e, nil
}

func (r *profileRepository) DeleteExperienceByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.experience, func(_ string, e employee.Experience) bool { return e.EmployeeID == employeeID })
	return nil
}

type documentRepository struct {
	s *Store
}

func NewDocumentRepository(s *Store) employee.DocumentRepository {
	return &documentRepository{s: s}
}

func (r *documentRepository) Create(_ context.Context, d employee.Document) (employee.Document, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d.ID == "" {
		d.ID = newID()
	}
	d.UploadedAt = r.s.now()
	r.s.data.documents[d.ID] = d
	return d, nil
}

func (r *documentRepository) GetByID(_ context.Context, id string) (employee.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.data.documents[id]
	if !ok {
		return employee.Document{}, employee.ErrDocumentNotFound
	}
	return d, nil
}

func (r *documentRepository) ListByEmployeeID(_ context.Context, employeeID string) ([]employee.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	documents := make([]employee.Document, 0)
	for _, d := range r.s.data.documents {
		if d.EmployeeID == employeeID {
			documents = append(documents, d)
		}
	}
	// newest first
	slices.SortFunc(documents, func(a, b employee.Document) int { return cmp.Compare(b.ID, a.ID) })
	return documents, nil
}

func (r *documentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.documents[id]; !ok {
		return employee.ErrDocumentNotFound
	}
	delete(r.s.data.documents, id)
	return nil
}

func (r *documentRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.documents, func(_ string, d employee.Document) bool { return d.EmployeeID == employeeID })
	return nil
}
