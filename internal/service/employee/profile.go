package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

// GetProfile implements employee.EmployeeService. It never writes; a missing
// balance row is reported as absent.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, id string) (employee.Profile, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Profile{}, err
	}
	profile := employee.Profile{Employee: emp}

	if emp.UserID != nil {
		account, err := s.userRepo.GetByID(ctx, *emp.UserID)
		switch {
		case err == nil:
			profile.Account = &account
		case !errors.Is(err, user.ErrUserNotFound):
			return employee.Profile{}, fmt.Errorf("failed to get account: %w", err)
		}
	}

	detail, err := s.companyDetailRepo.GetByEmployeeID(ctx, id)
	switch {
	case err == nil:
		profile.CompanyDetail = &detail
	case !errors.Is(err, employee.ErrCompanyDetailNotFound):
		return employee.Profile{}, fmt.Errorf("failed to get company detail: %w", err)
	}

	if profile.Education, err = s.profileRepo.ListEducation(ctx, id); err != nil {
		return employee.Profile{}, fmt.Errorf("failed to list education: %w", err)
	}
	if profile.Experience, err = s.profileRepo.ListExperience(ctx, id); err != nil {
		return employee.Profile{}, fmt.Errorf("failed to list experience: %w", err)
	}
	if profile.Documents, err = s.documentRepo.ListByEmployeeID(ctx, id); err != nil {
		return employee.Profile{}, fmt.Errorf("failed to list documents: %w", err)
	}

	balance, err := s.balanceRepo.GetByEmployeeID(ctx, id)
	switch {
	case err == nil:
		profile.Balance = &balance
	case !errors.Is(err, leave.ErrBalanceNotFound):
		return employee.Profile{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return profile, nil
}

// GetCompanyDetail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetCompanyDetail(ctx context.Context, employeeID string) (employee.CompanyDetail, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return employee.CompanyDetail{}, err
	}
	return s.companyDetailRepo.GetByEmployeeID(ctx, employeeID)
}

// AddCompanyDetail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddCompanyDetail(ctx context.Context, employeeID string, req employee.CompanyDetailRequest) (employee.CompanyDetail, error) {
	if err := req.Validate(); err != nil {
		return employee.CompanyDetail{}, err
	}
	if req.CorporateID == "" {
		req.CorporateID = employee.PlaceholderCorporateID
	}
	if req.Designation == "" {
		req.Designation = employee.DefaultDesignation
	}

	var created employee.CompanyDetail
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return err
		}

		_, err := s.companyDetailRepo.GetByEmployeeID(ctx, employeeID)
		if err == nil {
			return employee.ErrCompanyDetailExists
		}
		if !errors.Is(err, employee.ErrCompanyDetailNotFound) {
			return err
		}

		if err := s.checkCorporateConflicts(ctx, req.CorporateID, req.CorporateEmail); err != nil {
			return err
		}

		created, err = s.companyDetailRepo.Create(ctx, employee.CompanyDetail{
			EmployeeID:     employeeID,
			CorporateID:    req.CorporateID,
			CorporateEmail: req.CorporateEmail,
			Designation:    req.Designation,
			JoiningDate:    employee.ParseJoiningDate(req.JoiningDate),
		})
		if err != nil {
			return err
		}
		return s.refreshBalance(ctx, employeeID)
	})
	if err != nil {
		return employee.CompanyDetail{}, err
	}

	slog.Info("Company detail added", "employee_id", employeeID)
	return created, nil
}

// ListEmployeesWithoutCompanyDetail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployeesWithoutCompanyDetail(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.ListWithoutCompanyDetail(ctx)
}
