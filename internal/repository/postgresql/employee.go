package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

const employeeColumns = `
	id, user_id, first_name, middle_name, last_name, email, phone_number, alternate_phone,
	date_of_birth, gender, blood_group, marital_status, present_address, permanent_address,
	emergency_contact_name, emergency_relationship, emergency_phone, reporting_manager_id,
	active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FirstName, &e.MiddleName, &e.LastName, &e.Email, &e.PhoneNumber, &e.AlternatePhone,
		&e.DOB, &e.Gender, &e.BloodGroup, &e.MaritalStatus, &e.PresentAddress, &e.PermanentAddress,
		&e.EmergencyContactName, &e.EmergencyRelationship, &e.EmergencyPhone, &e.ReportingManagerID,
		&e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE `+where, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return r.getOne(ctx, "user_id = $1", userID)
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return r.getOne(ctx, "LOWER(email) = LOWER($1)", email)
}

// GetByPhoneNumber implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByPhoneNumber(ctx context.Context, phone string) (employee.Employee, error) {
	return r.getOne(ctx, "phone_number = $1", phone)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, first_name, middle_name, last_name, email, phone_number, alternate_phone,
			date_of_birth, gender, blood_group, marital_status, present_address, permanent_address,
			emergency_contact_name, emergency_relationship, emergency_phone, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.UserID, e.FirstName, e.MiddleName, e.LastName, e.Email, e.PhoneNumber, e.AlternatePhone,
		e.DOB, e.Gender, e.BloodGroup, e.MaritalStatus, e.PresentAddress, e.PermanentAddress,
		e.EmergencyContactName, e.EmergencyRelationship, e.EmergencyPhone, e.Active,
	))
	if err != nil {
		switch {
		case constraintViolated(err, "employees_email_key"):
			return employee.Employee{}, employee.ErrEmailExists
		case constraintViolated(err, "employees_phone_number_key"):
			return employee.Employee{}, employee.ErrPhoneExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $1, middle_name = $2, last_name = $3, email = $4, phone_number = $5,
			alternate_phone = $6, date_of_birth = $7, gender = $8, blood_group = $9,
			marital_status = $10, present_address = $11, permanent_address = $12,
			emergency_contact_name = $13, emergency_relationship = $14, emergency_phone = $15,
			active = $16, updated_at = NOW()
		WHERE id = $17`

	tag, err := q.Exec(ctx, query,
		e.FirstName, e.MiddleName, e.LastName, e.Email, e.PhoneNumber,
		e.AlternatePhone, e.DOB, e.Gender, e.BloodGroup,
		e.MaritalStatus, e.PresentAddress, e.PermanentAddress,
		e.EmergencyContactName, e.EmergencyRelationship, e.EmergencyPhone,
		e.Active, e.ID,
	)
	if err != nil {
		switch {
		case constraintViolated(err, "employees_email_key"):
			return employee.ErrEmailExists
		case constraintViolated(err, "employees_phone_number_key"):
			return employee.ErrPhoneExists
		}
		return fmt.Errorf("failed to update employee with id %s: %w", e.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY first_name, last_name, id`)
}

// ListByIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return []employee.Employee{}, nil
	}
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ANY($1::uuid[]) ORDER BY first_name, last_name, id`, ids)
}

// ListWithoutCompanyDetail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListWithoutCompanyDetail(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `
		SELECT `+employeeColumns+` FROM employees e
		WHERE NOT EXISTS (SELECT 1 FROM company_details cd WHERE cd.employee_id = e.id)
		ORDER BY first_name, last_name, id`)
}

func (r *employeeRepositoryImpl) exec(ctx context.Context, query string, args ...interface{}) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	return r.exec(ctx, `UPDATE employees SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
}

// SetUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetUserID(ctx context.Context, id string, userID *string) error {
	return r.exec(ctx, `UPDATE employees SET user_id = $1, updated_at = NOW() WHERE id = $2`, userID, id)
}

// SetReportingManager implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetReportingManager(ctx context.Context, id string, managerID *string) error {
	return r.exec(ctx, `UPDATE employees SET reporting_manager_id = $1, updated_at = NOW() WHERE id = $2`, managerID, id)
}

// ClearReportingManagerRefs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ClearReportingManagerRefs(ctx context.Context, managerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE employees SET reporting_manager_id = NULL, updated_at = NOW() WHERE reporting_manager_id = $1`, managerID)
	if err != nil {
		return fmt.Errorf("failed to clear reporting manager references to %s: %w", managerID, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}
