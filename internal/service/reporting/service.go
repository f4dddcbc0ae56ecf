package reporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type ReportingServiceImpl struct {
	tx database.Transactor
	reporting.Repository
	employee.EmployeeRepository
	employee.CompanyDetailRepository
	user.UserRepository
}

func NewReportingService(tx database.Transactor, reportingRepository reporting.Repository, employeeRepository employee.EmployeeRepository, companyDetailRepository employee.CompanyDetailRepository, userRepository user.UserRepository) reporting.Service {
	return &ReportingServiceImpl{
		tx:                      tx,
		Repository:              reportingRepository,
		EmployeeRepository:      employeeRepository,
		CompanyDetailRepository: companyDetailRepository,
		UserRepository:          userRepository,
	}
}

// CreateOrUpdate implements reporting.Service.
func (s *ReportingServiceImpl) CreateOrUpdate(ctx context.Context, req reporting.AssignRequest) (reporting.EmployeeReporting, error) {
	if err := req.Validate(); err != nil {
		return reporting.EmployeeReporting{}, err
	}

	var saved reporting.EmployeeReporting
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		if req.ReportingManagerID != nil {
			if err := s.assignRole(ctx, *req.ReportingManagerID, user.RoleReportingManager); err != nil {
				return err
			}
		}
		if req.HRID != nil {
			if err := s.assignRole(ctx, *req.HRID, user.RoleHR); err != nil {
				return err
			}
		}

		assignment, err := s.assignmentOf(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		assignment.ReportingManagerID = req.ReportingManagerID
		assignment.HRID = req.HRID

		saved, err = s.save(ctx, assignment)
		return err
	})
	if err != nil {
		return reporting.EmployeeReporting{}, err
	}

	slog.Info("Reporting assignment saved", "employee_id", saved.EmployeeID,
		"reporting_manager_id", saved.ReportingManagerID, "hr_id", saved.HRID)
	return saved, nil
}

// assignRole auto-promotes the employee about to be referenced as manager or
// HR and chains them under the admin.
func (s *ReportingServiceImpl) assignRole(ctx context.Context, employeeID string, target user.Role) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.UserID == nil {
		return nil
	}

	u, err := s.UserRepository.GetByID(ctx, *emp.UserID)
	if err != nil {
		return err
	}
	next, changed := user.AutoPromote(u.Role, target)
	if !changed {
		return nil
	}
	if err := s.UserRepository.UpdateRole(ctx, u.ID, next); err != nil {
		return err
	}
	slog.Info("User auto-promoted", "employee_id", emp.ID, "user_id", u.ID, "role", next)

	return s.ensureReportsToAdmin(ctx, emp)
}

// PromoteToManager implements reporting.Service.
func (s *ReportingServiceImpl) PromoteToManager(ctx context.Context, employeeID string) (employee.Employee, error) {
	return s.promote(ctx, employeeID, user.RoleReportingManager)
}

// PromoteToHR implements reporting.Service.
func (s *ReportingServiceImpl) PromoteToHR(ctx context.Context, employeeID string) (employee.Employee, error) {
	return s.promote(ctx, employeeID, user.RoleHR)
}

func (s *ReportingServiceImpl) promote(ctx context.Context, employeeID string, target user.Role) (employee.Employee, error) {
	var emp employee.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		emp, err = s.EmployeeRepository.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if emp.UserID == nil {
			return nil
		}

		u, err := s.UserRepository.GetByID(ctx, *emp.UserID)
		if err != nil {
			return err
		}
		next, changed := user.Promote(u.Role, target)
		if !changed {
			return nil
		}
		if err := s.UserRepository.UpdateRole(ctx, u.ID, next); err != nil {
			return err
		}
		slog.Info("User promoted", "employee_id", emp.ID, "user_id", u.ID, "from", u.Role, "to", next)

		if err := s.ensureReportsToAdmin(ctx, emp); err != nil {
			return err
		}
		// the admin chaining may have rewritten the mirror column
		emp, err = s.EmployeeRepository.GetByID(ctx, employeeID)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// RemoveManager implements reporting.Service.
func (s *ReportingServiceImpl) RemoveManager(ctx context.Context, managerID string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		manager, err := s.EmployeeRepository.GetByID(ctx, managerID)
		if err != nil {
			return err
		}

		if manager.UserID != nil {
			u, err := s.UserRepository.GetByID(ctx, *manager.UserID)
			if err != nil {
				return err
			}
			if next, changed := user.Demote(u.Role, user.RoleReportingManager); changed {
				if err := s.UserRepository.UpdateRole(ctx, u.ID, next); err != nil {
					return err
				}
				slog.Info("Manager demoted", "employee_id", managerID, "user_id", u.ID)
			}
		}

		// restore the manager's own line from the single history slot
		own, err := s.Repository.GetByEmployeeID(ctx, managerID)
		switch {
		case err == nil:
			own.ReportingManagerID = own.PreviousReportingManagerID
			own.PreviousReportingManagerID = nil
			if _, err := s.save(ctx, own); err != nil {
				return err
			}
		case !errors.Is(err, reporting.ErrAssignmentNotFound):
			return err
		}

		team, err := s.Repository.ListByManagerID(ctx, managerID)
		if err != nil {
			return err
		}
		for _, member := range team {
			member.ReportingManagerID = nil
			if _, err := s.save(ctx, member); err != nil {
				return err
			}
		}

		slog.Info("Manager removed", "employee_id", managerID, "team_size", len(team))
		return nil
	})
}

// RemoveTeamMember implements reporting.Service.
func (s *ReportingServiceImpl) RemoveTeamMember(ctx context.Context, employeeID string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		assignment, err := s.Repository.GetByEmployeeID(ctx, employeeID)
		if errors.Is(err, reporting.ErrAssignmentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		assignment.ReportingManagerID = nil
		_, err = s.save(ctx, assignment)
		return err
	})
}

// ChainUnderAdmin implements reporting.Service.
func (s *ReportingServiceImpl) ChainUnderAdmin(ctx context.Context) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, role := range []user.Role{user.RoleReportingManager, user.RoleHR} {
			employees, err := s.employeesWithRole(ctx, role)
			if err != nil {
				return err
			}
			for _, emp := range employees {
				if err := s.ensureReportsToAdmin(ctx, emp); err != nil {
					return fmt.Errorf("failed to chain %s under admin: %w", emp.ID, err)
				}
			}
		}
		return nil
	})
}

// findAdmin resolves the employee record of the root admin: the oldest ADMIN
// user that has one.
func (s *ReportingServiceImpl) findAdmin(ctx context.Context) (employee.Employee, bool, error) {
	admins, err := s.UserRepository.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return employee.Employee{}, false, fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) > 1 {
		slog.Warn("Multiple admin accounts found, using the oldest", "count", len(admins), "user_id", admins[0].ID)
	}

	for _, a := range admins {
		emp, err := s.EmployeeRepository.GetByUserID(ctx, a.ID)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			continue
		}
		if err != nil {
			return employee.Employee{}, false, err
		}
		return emp, true, nil
	}
	return employee.Employee{}, false, nil
}

// ensureReportsToAdmin points emp's manager edge at the admin, keeping the
// replaced manager in the history slot.
func (s *ReportingServiceImpl) ensureReportsToAdmin(ctx context.Context, emp employee.Employee) error {
	admin, ok, err := s.findAdmin(ctx)
	if err != nil || !ok {
		return err
	}
	if admin.ID == emp.ID {
		return nil
	}

	assignment, err := s.assignmentOf(ctx, emp.ID)
	if err != nil {
		return err
	}
	if assignment.ReportsTo(admin.ID) {
		return nil
	}

	if assignment.ReportingManagerID != nil {
		assignment.PreviousReportingManagerID = assignment.ReportingManagerID
	}
	adminID := admin.ID
	assignment.ReportingManagerID = &adminID

	if _, err := s.save(ctx, assignment); err != nil {
		return err
	}
	slog.Info("Chained under admin", "employee_id", emp.ID, "admin_id", admin.ID)
	return nil
}

// assignmentOf returns the stored row or a fresh unsaved one.
func (s *ReportingServiceImpl) assignmentOf(ctx context.Context, employeeID string) (reporting.EmployeeReporting, error) {
	assignment, err := s.Repository.GetByEmployeeID(ctx, employeeID)
	if errors.Is(err, reporting.ErrAssignmentNotFound) {
		return reporting.EmployeeReporting{EmployeeID: employeeID}, nil
	}
	return assignment, err
}

// save is the only writer of manager edges. It keeps the deprecated
// employees.reporting_manager_id column equal to the edge.
func (s *ReportingServiceImpl) save(ctx context.Context, assignment reporting.EmployeeReporting) (reporting.EmployeeReporting, error) {
	saved, err := s.Repository.Upsert(ctx, assignment)
	if err != nil {
		return reporting.EmployeeReporting{}, err
	}
	if err := s.EmployeeRepository.SetReportingManager(ctx, saved.EmployeeID, saved.ReportingManagerID); err != nil {
		return reporting.EmployeeReporting{}, err
	}
	return saved, nil
}
