package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

// Repositories groups the stores the employee service reads and cascades
// through.
type Repositories struct {
	Employee      employee.EmployeeRepository
	CompanyDetail employee.CompanyDetailRepository
	Profile       employee.ProfileRepository
	Document      employee.DocumentRepository
	User          user.UserRepository
	Balance       leave.BalanceRepository
	Leave         leave.LeaveRepository
	Reporting     reporting.Repository
	Timesheet     timesheet.Repository
}

type EmployeeServiceImpl struct {
	tx                database.Transactor
	employeeRepo      employee.EmployeeRepository
	companyDetailRepo employee.CompanyDetailRepository
	profileRepo       employee.ProfileRepository
	documentRepo      employee.DocumentRepository
	userRepo          user.UserRepository
	balanceRepo       leave.BalanceRepository
	leaveRepo         leave.LeaveRepository
	reportingRepo     reporting.Repository
	timesheetRepo     timesheet.Repository
	balanceService    leave.BalanceService
	files             storage.FileStorage
	defaultPassword   string
}

func NewEmployeeService(
	tx database.Transactor,
	repos Repositories,
	balanceService leave.BalanceService,
	files storage.FileStorage,
	defaultPassword string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:                tx,
		employeeRepo:      repos.Employee,
		companyDetailRepo: repos.CompanyDetail,
		profileRepo:       repos.Profile,
		documentRepo:      repos.Document,
		userRepo:          repos.User,
		balanceRepo:       repos.Balance,
		leaveRepo:         repos.Leave,
		reportingRepo:     repos.Reporting,
		timesheetRepo:     repos.Timesheet,
		balanceService:    balanceService,
		files:             files,
		defaultPassword:   defaultPassword,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	corporateEmail := req.Email
	if req.CorporateEmail != nil && strings.TrimSpace(*req.CorporateEmail) != "" {
		corporateEmail = *req.CorporateEmail
	}
	corporateID := employee.PlaceholderCorporateID
	if req.CorporateID != nil && strings.TrimSpace(*req.CorporateID) != "" {
		corporateID = *req.CorporateID
	}
	designation := employee.DefaultDesignation
	if req.Designation != nil && strings.TrimSpace(*req.Designation) != "" {
		designation = *req.Designation
	}

	var created employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkPersonalConflicts(ctx, "", req.Email, req.PhoneNumber); err != nil {
			return err
		}
		if err := s.checkCorporateConflicts(ctx, corporateID, corporateEmail); err != nil {
			return err
		}

		var newEmployee employee.Employee
		req.PersonalDetails.Apply(&newEmployee)
		newEmployee.Active = true

		var err error
		created, err = s.employeeRepo.Create(ctx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		if err := s.replaceHistory(ctx, created.ID, req.Education, req.Experience); err != nil {
			return err
		}

		_, err = s.companyDetailRepo.Create(ctx, employee.CompanyDetail{
			EmployeeID:     created.ID,
			CorporateID:    corporateID,
			CorporateEmail: corporateEmail,
			Designation:    designation,
			JoiningDate:    employee.ParseJoiningDate(req.JoiningDate),
		})
		if err != nil {
			return fmt.Errorf("failed to create company detail: %w", err)
		}

		if req.CreateAccount {
			if err := s.provisionAccount(ctx, created); err != nil {
				return err
			}
		}

		if _, err := s.balanceService.InitializeLeaveBalance(ctx, created.ID); err != nil {
			return fmt.Errorf("failed to initialize leave balance: %w", err)
		}

		created, err = s.employeeRepo.GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "account", created.UserID != nil)
	return created, nil
}

// provisionAccount creates an EMPLOYEE login named after the email and links
// it to emp.
func (s *EmployeeServiceImpl) provisionAccount(ctx context.Context, emp employee.Employee) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	account, err := s.userRepo.Create(ctx, user.User{
		Username:     emp.Email,
		Email:        emp.Email,
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return err
	}
	return s.employeeRepo.SetUserID(ctx, emp.ID, &account.ID)
}

// checkPersonalConflicts rejects an email or phone number held by an
// employee other than selfID.
func (s *EmployeeServiceImpl) checkPersonalConflicts(ctx context.Context, selfID, email string, phone *string) error {
	existing, err := s.employeeRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != selfID:
		return employee.ErrEmailExists
	case err != nil && !errors.Is(err, employee.ErrEmployeeNotFound):
		return err
	}

	if phone == nil {
		return nil
	}
	existing, err = s.employeeRepo.GetByPhoneNumber(ctx, *phone)
	switch {
	case err == nil && existing.ID != selfID:
		return employee.ErrPhoneExists
	case err != nil && !errors.Is(err, employee.ErrEmployeeNotFound):
		return err
	}
	return nil
}

// checkCorporateConflicts rejects corporate identifiers already in use. The
// placeholder corporate ID may repeat.
func (s *EmployeeServiceImpl) checkCorporateConflicts(ctx context.Context, corporateID, corporateEmail string) error {
	if corporateID != "" && corporateID != employee.PlaceholderCorporateID {
		exists, err := s.companyDetailRepo.ExistsByCorporateID(ctx, corporateID)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrCorporateIDExists
		}
	}
	if corporateEmail != "" {
		exists, err := s.companyDetailRepo.ExistsByCorporateEmail(ctx, corporateEmail)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrCorporateEmailExists
		}
	}
	return nil
}

// replaceHistory swaps the stored education and experience for the given
// requests. A nil slice leaves that history untouched.
func (s *EmployeeServiceImpl) replaceHistory(ctx context.Context, employeeID string, education []employee.EducationRequest, experience []employee.ExperienceRequest) error {
	if education != nil {
		if err := s.profileRepo.DeleteEducationByEmployeeID(ctx, employeeID); err != nil {
			return err
		}
		for _, ed := range employee.ToEducation(employeeID, education) {
			if _, err := s.profileRepo.CreateEducation(ctx, ed); err != nil {
				return err
			}
		}
	}
	if experience != nil {
		if err := s.profileRepo.DeleteExperienceByEmployeeID(ctx, employeeID); err != nil {
			return err
		}
		for _, ex := range employee.ToExperience(employeeID, experience) {
			if _, err := s.profileRepo.CreateExperience(ctx, ex); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// GetEmployeeByUserID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, userID)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		var phone *string
		if req.PhoneNumber != nil && (current.PhoneNumber == nil || *current.PhoneNumber != *req.PhoneNumber) {
			phone = req.PhoneNumber
		}
		email := req.Email
		if strings.EqualFold(email, current.Email) {
			email = current.Email
		}
		if email != current.Email || phone != nil {
			if err := s.checkPersonalConflicts(ctx, id, email, phone); err != nil {
				return err
			}
		}

		req.PersonalDetails.Apply(&current)
		if req.Active != nil {
			current.Active = *req.Active
		}
		if err := s.employeeRepo.Update(ctx, current); err != nil {
			return err
		}

		if req.HasCompanyDetail() {
			if err := s.patchCompanyDetail(ctx, current, req); err != nil {
				return err
			}
		}

		if err := s.replaceHistory(ctx, id, req.Education, req.Experience); err != nil {
			return err
		}

		updated, err = s.employeeRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("Employee updated", "employee_id", id)
	return updated, nil
}

func (s *EmployeeServiceImpl) patchCompanyDetail(ctx context.Context, emp employee.Employee, req employee.UpdateEmployeeRequest) error {
	detail, err := s.companyDetailRepo.GetByEmployeeID(ctx, emp.ID)
	exists := err == nil
	if err != nil && !errors.Is(err, employee.ErrCompanyDetailNotFound) {
		return err
	}
	if !exists {
		detail = employee.CompanyDetail{
			EmployeeID:     emp.ID,
			CorporateID:    employee.PlaceholderCorporateID,
			CorporateEmail: emp.Email,
			Designation:    employee.DefaultDesignation,
		}
	}

	var newCorporateID, newCorporateEmail string
	if req.CorporateID != nil && *req.CorporateID != detail.CorporateID {
		newCorporateID = *req.CorporateID
		detail.CorporateID = *req.CorporateID
	}
	if req.CorporateEmail != nil && !strings.EqualFold(*req.CorporateEmail, detail.CorporateEmail) {
		newCorporateEmail = *req.CorporateEmail
		detail.CorporateEmail = *req.CorporateEmail
	}
	if !exists {
		newCorporateEmail = detail.CorporateEmail
	}
	if err := s.checkCorporateConflicts(ctx, newCorporateID, newCorporateEmail); err != nil {
		return err
	}

	if req.Designation != nil {
		detail.Designation = *req.Designation
	}
	joiningChanged := false
	if req.JoiningDate != nil {
		detail.JoiningDate = employee.ParseJoiningDate(req.JoiningDate)
		joiningChanged = true
	}

	if exists {
		err = s.companyDetailRepo.Update(ctx, detail)
	} else {
		_, err = s.companyDetailRepo.Create(ctx, detail)
	}
	if err != nil {
		return err
	}

	if joiningChanged {
		return s.refreshBalance(ctx, emp.ID)
	}
	return nil
}

// refreshBalance recomputes the employee's entitlement after the tenure
// anchor moved. Employees without a balance row are skipped.
func (s *EmployeeServiceImpl) refreshBalance(ctx context.Context, employeeID string) error {
	balance, err := s.balanceRepo.GetByEmployeeIDForUpdate(ctx, employeeID)
	if errors.Is(err, leave.ErrBalanceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = s.balanceService.RefreshLeaveBalance(ctx, balance)
	return err
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !emp.Active {
			return employee.ErrEmployeeAlreadyInactive
		}
		if err := s.employeeRepo.SetActive(ctx, id, false); err != nil {
			return err
		}
		slog.Info("Employee deactivated", "employee_id", id)
		return nil
	})
}
