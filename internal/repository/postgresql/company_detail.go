package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type companyDetailRepositoryImpl struct {
	db *database.DB
}

const companyDetailColumns = `id, employee_id, corporate_id, corporate_email, designation, joining_date, created_at, updated_at`

func scanCompanyDetail(row pgx.Row) (employee.CompanyDetail, error) {
	var d employee.CompanyDetail
	err := row.Scan(&d.ID, &d.EmployeeID, &d.CorporateID, &d.CorporateEmail, &d.Designation, &d.JoiningDate, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func mapCompanyDetailErr(err error) error {
	switch {
	case constraintViolated(err, "company_details_corporate_id_key"):
		return employee.ErrCorporateIDExists
	case constraintViolated(err, "company_details_employee_id_key"):
		return employee.ErrCompanyDetailExists
	}
	return nil
}

// GetByEmployeeID implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.CompanyDetail, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanCompanyDetail(q.QueryRow(ctx, `SELECT `+companyDetailColumns+` FROM company_details WHERE employee_id = $1`, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.CompanyDetail{}, employee.ErrCompanyDetailNotFound
		}
		return employee.CompanyDetail{}, fmt.Errorf("failed to get company detail for employee %s: %w", employeeID, err)
	}
	return d, nil
}

// ListByEmployeeIDs implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]employee.CompanyDetail, error) {
	details := make([]employee.CompanyDetail, 0)
	if len(employeeIDs) == 0 {
		return details, nil
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT `+companyDetailColumns+` FROM company_details WHERE employee_id = ANY($1::uuid[])`, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list company details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		d, err := scanCompanyDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Create implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) Create(ctx context.Context, d employee.CompanyDetail) (employee.CompanyDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_details (employee_id, corporate_id, corporate_email, designation, joining_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyDetailColumns

	created, err := scanCompanyDetail(q.QueryRow(ctx, query, d.EmployeeID, d.CorporateID, d.CorporateEmail, d.Designation, d.JoiningDate))
	if err != nil {
		if mapped := mapCompanyDetailErr(err); mapped != nil {
			return employee.CompanyDetail{}, mapped
		}
		return employee.CompanyDetail{}, fmt.Errorf("failed to create company detail: %w", err)
	}
	return created, nil
}

// Update implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) Update(ctx context.Context, d employee.CompanyDetail) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE company_details
		SET corporate_id = $1, corporate_email = $2, designation = $3, joining_date = $4, updated_at = NOW()
		WHERE employee_id = $5`

	tag, err := q.Exec(ctx, query, d.CorporateID, d.CorporateEmail, d.Designation, d.JoiningDate, d.EmployeeID)
	if err != nil {
		if mapped := mapCompanyDetailErr(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update company detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrCompanyDetailNotFound
	}
	return nil
}

// ExistsByCorporateID implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) ExistsByCorporateID(ctx context.Context, corporateID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM company_details WHERE corporate_id = $1)`, corporateID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check corporate id: %w", err)
	}
	return exists, nil
}

// ExistsByCorporateEmail implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) ExistsByCorporateEmail(ctx context.Context, corporateEmail string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM company_details WHERE LOWER(corporate_email) = LOWER($1))`, corporateEmail).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check corporate email: %w", err)
	}
	return exists, nil
}

// DeleteByEmployeeID implements employee.CompanyDetailRepository.
func (r *companyDetailRepositoryImpl) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM company_details WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete company detail: %w", err)
	}
	return nil
}

func NewCompanyDetailRepository(db *database.DB) employee.CompanyDetailRepository {
	return &companyDetailRepositoryImpl{db: db}
}
