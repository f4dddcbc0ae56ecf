// Package fixtures seeds the data the service needs before it can accept
// requests: a root administrator and a consistent reporting hierarchy.
package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// AdminAccount describes the administrator created on first start.
type AdminAccount struct {
	Username string
	Email    string
	Password string
}

type Bootstrapper struct {
	tx               database.Transactor
	userRepo         user.UserRepository
	employeeRepo     employee.EmployeeRepository
	reportingService reporting.Service
}

func NewBootstrapper(tx database.Transactor, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository, reportingService reporting.Service) *Bootstrapper {
	return &Bootstrapper{
		tx:               tx,
		userRepo:         userRepo,
		employeeRepo:     employeeRepo,
		reportingService: reportingService,
	}
}

// Run seeds the admin and then repairs the hierarchy. Both steps are
// idempotent.
func (b *Bootstrapper) Run(ctx context.Context, admin AdminAccount) error {
	if err := b.EnsureAdmin(ctx, admin); err != nil {
		return err
	}
	return b.SyncHierarchy(ctx)
}

// EnsureAdmin creates an ADMIN account and its employee record when no
// ADMIN exists yet.
func (b *Bootstrapper) EnsureAdmin(ctx context.Context, admin AdminAccount) error {
	admins, err := b.userRepo.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) > 0 {
		return nil
	}

	if admin.Username == "" || admin.Password == "" {
		return fmt.Errorf("admin username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	passwordHash := string(hash)

	return b.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := b.userRepo.Create(ctx, user.User{
			Username:     admin.Username,
			Email:        admin.Email,
			PasswordHash: &passwordHash,
			Role:         user.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		if err := b.ensureEmployee(ctx, created); err != nil {
			return err
		}
		slog.Info("Admin account created", "user_id", created.ID, "username", created.Username)
		return nil
	})
}

// SyncHierarchy gives every account an employee record and chains every
// manager and HR employee under the admin.
func (b *Bootstrapper) SyncHierarchy(ctx context.Context) error {
	users, err := b.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	err = b.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, u := range users {
			if err := b.ensureEmployee(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := b.reportingService.ChainUnderAdmin(ctx); err != nil {
		return fmt.Errorf("failed to chain hierarchy under admin: %w", err)
	}
	return nil
}

// ensureEmployee links u to an employee record, adopting an unlinked record
// with the same email before creating a new one from the username.
func (b *Bootstrapper) ensureEmployee(ctx context.Context, u user.User) error {
	_, err := b.employeeRepo.GetByUserID(ctx, u.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return err
	}

	email := u.Email
	if email == "" {
		email = u.Username
	}
	userID := u.ID

	existing, err := b.employeeRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.UserID == nil:
		if err := b.employeeRepo.SetUserID(ctx, existing.ID, &userID); err != nil {
			return fmt.Errorf("failed to link employee %s: %w", existing.ID, err)
		}
		slog.Info("Linked account to existing employee", "user_id", u.ID, "employee_id", existing.ID)
		return nil
	case err == nil:
		slog.Warn("Employee email belongs to another account, skipping", "user_id", u.ID, "email", email)
		return nil
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return err
	}

	first, last := splitName(u.Username)
	created, err := b.employeeRepo.Create(ctx, employee.Employee{
		UserID:    &userID,
		FirstName: first,
		LastName:  last,
		Email:     email,
		Active:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to create employee for user %s: %w", u.ID, err)
	}
	slog.Info("Created employee record for account", "user_id", u.ID, "employee_id", created.ID)
	return nil
}

// splitName derives a display name from a username such as
// "jane.doe@corp.example".
func splitName(username string) (string, string) {
	local, _, _ := strings.Cut(username, "@")
	first, last, _ := strings.Cut(local, ".")
	if first == "" {
		first = username
	}
	return first, last
}
