package timesheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/export"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	tx database.Transactor
	timesheet.Repository
	employee.EmployeeRepository
	user.UserRepository
	reportingRepository reporting.Repository
}

func NewTimesheetService(
	tx database.Transactor,
	timesheetRepo timesheet.Repository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	reportingRepo reporting.Repository,
) timesheet.Service {
	return &TimesheetServiceImpl{
		tx:                  tx,
		Repository:          timesheetRepo,
		EmployeeRepository:  employeeRepo,
		UserRepository:      userRepo,
		reportingRepository: reportingRepo,
	}
}

// Create implements timesheet.Service.
func (s *TimesheetServiceImpl) Create(ctx context.Context, req timesheet.CreateTimesheetRequest) (timesheet.Timesheet, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Timesheet{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return timesheet.Timesheet{}, err
	}

	entry := timesheet.Timesheet{EmployeeID: req.EmployeeID, Status: timesheet.StatusPending}
	req.EntryFields.Apply(&entry)

	created, err := s.Repository.Create(ctx, entry)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	slog.Info("Timesheet entry created", "timesheet_id", created.ID, "employee_id", created.EmployeeID,
		"hours", created.TotalHours.StringFixed(2))
	return created, nil
}

// Update implements timesheet.Service. Reviewed entries are frozen.
func (s *TimesheetServiceImpl) Update(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest) (timesheet.Timesheet, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Timesheet{}, err
	}

	var updated timesheet.Timesheet
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.Repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if entry.Status != timesheet.StatusPending {
			return timesheet.ErrInvalidTransition
		}

		req.EntryFields.Apply(&entry)
		if err := s.Repository.Update(ctx, entry); err != nil {
			return err
		}

		updated, err = s.Repository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	return updated, nil
}

// Get implements timesheet.Service.
func (s *TimesheetServiceImpl) Get(ctx context.Context, id string) (timesheet.Timesheet, error) {
	return s.Repository.GetByID(ctx, id)
}

// List implements timesheet.Service.
func (s *TimesheetServiceImpl) List(ctx context.Context, filter timesheet.Filter) ([]timesheet.Timesheet, error) {
	return s.Repository.List(ctx, filter)
}

// Approve implements timesheet.Service.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, id, reviewerID, comments string) (timesheet.Timesheet, error) {
	return s.review(ctx, id, reviewerID, timesheet.StatusApproved, comments)
}

// Reject implements timesheet.Service.
func (s *TimesheetServiceImpl) Reject(ctx context.Context, id, reviewerID, reason string) (timesheet.Timesheet, error) {
	if validator.IsEmpty(reason) {
		var errs validator.ValidationErrors
		errs.Add("comments", "a reason is required to reject a timesheet")
		return timesheet.Timesheet{}, errs
	}
	return s.review(ctx, id, reviewerID, timesheet.StatusRejected, reason)
}

func (s *TimesheetServiceImpl) review(ctx context.Context, id, reviewerID string, status timesheet.Status, comments string) (timesheet.Timesheet, error) {
	if validator.IsEmpty(reviewerID) {
		var errs validator.ValidationErrors
		errs.Add("reviewer_id", "reviewer_id is required")
		return timesheet.Timesheet{}, errs
	}

	var reviewed timesheet.Timesheet
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := s.Repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if entry.Status != timesheet.StatusPending {
			return timesheet.ErrInvalidTransition
		}

		if _, err := s.UserRepository.GetByID(ctx, reviewerID); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return timesheet.ErrReviewerNotFound
			}
			return err
		}

		now := time.Now()
		entry.Status = status
		entry.ReviewedBy = &reviewerID
		entry.ReviewedAt = &now
		entry.ManagerComments = nil
		if comments != "" {
			entry.ManagerComments = &comments
		}
		if err := s.Repository.Update(ctx, entry); err != nil {
			return err
		}

		reviewed, err = s.Repository.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	slog.Info("Timesheet reviewed", "timesheet_id", id, "status", status, "reviewer_id", reviewerID)
	return reviewed, nil
}

// SaveWeekly implements timesheet.Service.
func (s *TimesheetServiceImpl) SaveWeekly(ctx context.Context, req timesheet.SaveWeeklyRequest) ([]timesheet.Timesheet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	from, to := req.Week()

	var saved []timesheet.Timesheet
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		if err := s.Repository.DeletePendingInRange(ctx, req.EmployeeID, from, to); err != nil {
			return fmt.Errorf("failed to clear pending week: %w", err)
		}

		for _, fields := range req.Entries {
			entry := timesheet.Timesheet{EmployeeID: req.EmployeeID, Status: timesheet.StatusPending}
			fields.Apply(&entry)
			if _, err := s.Repository.Create(ctx, entry); err != nil {
				return fmt.Errorf("failed to save weekly entry: %w", err)
			}
		}

		var err error
		saved, err = s.Repository.List(ctx, timesheet.Filter{EmployeeID: &req.EmployeeID, From: &from, To: &to})
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Weekly timesheet saved", "employee_id", req.EmployeeID, "week_start", req.WeekStart,
		"entries", len(req.Entries))
	return saved, nil
}

// TeamTimesheets implements timesheet.Service.
func (s *TimesheetServiceImpl) TeamTimesheets(ctx context.Context, managerID string) ([]timesheet.Timesheet, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, managerID); err != nil {
		return nil, err
	}

	assignments, err := s.reportingRepository.ListByManagerID(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team of manager %s: %w", managerID, err)
	}
	if len(assignments) == 0 {
		return []timesheet.Timesheet{}, nil
	}

	memberIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		memberIDs = append(memberIDs, a.EmployeeID)
	}
	return s.Repository.List(ctx, timesheet.Filter{EmployeeIDs: memberIDs})
}

// ExportXLSX implements timesheet.Service.
func (s *TimesheetServiceImpl) ExportXLSX(ctx context.Context, filter timesheet.Filter, w io.Writer) error {
	entries, err := s.Repository.List(ctx, filter)
	if err != nil {
		return err
	}
	return export.WriteTimesheetsXLSX(w, entries)
}
