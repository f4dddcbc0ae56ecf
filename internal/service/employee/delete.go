package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
)

type cascadeStep struct {
	name string
	run  func(ctx context.Context) error
}

// DeleteEmployee implements employee.EmployeeService. References to the
// employee are cleared before its own rows go, all in one transaction.
// Uploaded files are removed once that transaction has committed.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	var storedFiles []string
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		docs, err := s.documentRepo.ListByEmployeeID(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: list documents: %w", employee.ErrDeletionFailed, err)
		}
		for _, d := range docs {
			if d.StoragePath != "" {
				storedFiles = append(storedFiles, d.StoragePath)
			}
		}

		for _, step := range s.cascade(emp) {
			if err := step.run(ctx); err != nil {
				return fmt.Errorf("%w: %s: %w", employee.ErrDeletionFailed, step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range storedFiles {
		s.removeFile(ctx, key)
	}
	slog.Info("Employee deleted", "employee_id", id, "files_removed", len(storedFiles))
	return nil
}

// cascade lists the deletion steps for emp in dependency order.
func (s *EmployeeServiceImpl) cascade(emp employee.Employee) []cascadeStep {
	id := emp.ID
	steps := []cascadeStep{
		{"clear manager references", func(ctx context.Context) error { return s.reportingRepo.ClearManager(ctx, id) }},
		{"clear hr references", func(ctx context.Context) error { return s.reportingRepo.ClearHR(ctx, id) }},
		{"clear previous manager references", func(ctx context.Context) error { return s.reportingRepo.ClearPreviousManager(ctx, id) }},
		{"clear employee manager column", func(ctx context.Context) error { return s.employeeRepo.ClearReportingManagerRefs(ctx, id) }},
	}

	if emp.UserID != nil {
		userID := *emp.UserID
		steps = append(steps,
			cascadeStep{"clear leave approvals", func(ctx context.Context) error { return s.leaveRepo.ClearApprover(ctx, userID) }},
			cascadeStep{"clear timesheet reviews", func(ctx context.Context) error { return s.timesheetRepo.ClearReviewer(ctx, userID) }},
		)
	}

	steps = append(steps,
		cascadeStep{"delete reporting assignment", func(ctx context.Context) error { return s.reportingRepo.DeleteByEmployeeID(ctx, id) }},
		cascadeStep{"delete timesheets", func(ctx context.Context) error { return s.timesheetRepo.DeleteByEmployeeID(ctx, id) }},
		cascadeStep{"delete education", func(ctx context.Context) error { return s.profileRepo.DeleteEducationByEmployeeID(ctx, id) }},
		cascadeStep{"delete experience", func(ctx context.Context) error { return s.profileRepo.DeleteExperienceByEmployeeID(ctx, id) }},
		cascadeStep{"delete documents", func(ctx context.Context) error { return s.documentRepo.DeleteByEmployeeID(ctx, id) }},
		cascadeStep{"delete company detail", func(ctx context.Context) error { return s.companyDetailRepo.DeleteByEmployeeID(ctx, id) }},
		cascadeStep{"delete leave balance", func(ctx context.Context) error { return s.balanceRepo.DeleteByEmployeeID(ctx, id) }},
		cascadeStep{"delete leaves", func(ctx context.Context) error { return s.leaveRepo.DeleteByEmployeeID(ctx, id) }},
	)

	if emp.UserID != nil {
		userID := *emp.UserID
		steps = append(steps,
			cascadeStep{"detach account", func(ctx context.Context) error { return s.employeeRepo.SetUserID(ctx, id, nil) }},
			cascadeStep{"delete account", func(ctx context.Context) error { return s.userRepo.Delete(ctx, userID) }},
		)
	}

	return append(steps, cascadeStep{"delete employee", func(ctx context.Context) error { return s.employeeRepo.Delete(ctx, id) }})
}
