package postgresql

import (
	"context"
	"fmt"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

// ListEducation implements employee.ProfileRepository.
func (r *profileRepositoryImpl) ListEducation(ctx context.Context, employeeID string) ([]employee.Education, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, institution_name, degree_level, start_year, end_year
		FROM employee_education
		WHERE employee_id = $1
		ORDER BY start_year NULLS LAST, id`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	education := make([]employee.Education, 0)
	for rows.Next() {
		var e employee.Education
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.InstitutionName, &e.DegreeLevel, &e.StartYear, &e.EndYear); err != nil {
			return nil, err
		}
		education = append(education, e)
	}
	return education, rows.Err()
}

// CreateEducation implements employee.ProfileRepository.
func (r *profileRepositoryImpl) CreateEducation(ctx context.Context, e employee.Education) (employee.Education, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_education (employee_id, institution_name, degree_level, start_year, end_year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if err := q.QueryRow(ctx, query, e.EmployeeID, e.InstitutionName, e.DegreeLevel, e.StartYear, e.EndYear).Scan(&e.ID); err != nil {
		return employee.Education{}, fmt.Errorf("failed to create education: %w", err)
	}
	return e, nil
}

// DeleteEducationByEmployeeID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) DeleteEducationByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_education WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	return nil
}

// ListExperience implements employee.ProfileRepository.
func (r *profileRepositoryImpl) ListExperience(ctx context.Context, employeeID string) ([]employee.Experience, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employer_name, business_type, designation, start_date, end_date, employer_address
		FROM employee_experience
		WHERE employee_id = $1
		ORDER BY start_date NULLS LAST, id`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	experience := make([]employee.Experience, 0)
	for rows.Next() {
		var e employee.Experience
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.EmployerName, &e.BusinessType, &e.Designation, &e.StartDate, &e.EndDate, &e.EmployerAddress); err != nil {
			return nil, err
		}
		experience = append(experience, e)
	}
	return experience, rows.Err()
}

// CreateExperience implements employee.ProfileRepository.
func (r *profileRepositoryImpl) CreateExperience(ctx context.Context, e employee.Experience) (employee.Experience, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_experience (employee_id, employer_name, business_type, designation, start_date, end_date, employer_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := q.QueryRow(ctx, query, e.EmployeeID, e.EmployerName, e.BusinessType, e.Designation, e.StartDate, e.EndDate, e.EmployerAddress).Scan(&e.ID)
	if err != nil {
		return employee.Experience{}, fmt.Errorf("failed to create experience: %w", err)
	}
	return e, nil
}

// DeleteExperienceByEmployeeID implements employee.ProfileRepository.
func (r *profileRepositoryImpl) DeleteExperienceByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM employee_experience WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	return nil
}

func NewProfileRepository(db *database.DB) employee.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}
