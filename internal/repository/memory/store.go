// Package memory keeps every table in process memory. It backs the service
// tests and the DB_DRIVER=memory mode used for local development.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/oryfolks/hrms-backend-go/internal/domain/reporting"
	"github.com/oryfolks/hrms-backend-go/internal/domain/timesheet"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
)

type tables struct {
	users          map[string]user.User
	employees      map[string]employee.Employee
	companyDetails map[string]employee.CompanyDetail // by employee id
	education      map[string]employee.Education
	experience     map[string]employee.Experience
	documents      map[string]employee.Document
	balances       map[string]leave.LeaveBalance // by employee id
	leaves         map[string]leave.Leave
	reporting      map[string]reporting.EmployeeReporting // by employee id
	timesheets     map[string]timesheet.Timesheet
}

func newTables() tables {
	return tables{
		users:          make(map[string]user.User),
		employees:      make(map[string]employee.Employee),
		companyDetails: make(map[string]employee.CompanyDetail),
		education:      make(map[string]employee.Education),
		experience:     make(map[string]employee.Experience),
		documents:      make(map[string]employee.Document),
		balances:       make(map[string]leave.LeaveBalance),
		leaves:         make(map[string]leave.Leave),
		reporting:      make(map[string]reporting.EmployeeReporting),
		timesheets:     make(map[string]timesheet.Timesheet),
	}
}

func (t tables) clone() tables {
	return tables{
		users:          maps.Clone(t.users),
		employees:      maps.Clone(t.employees),
		companyDetails: maps.Clone(t.companyDetails),
		education:      maps.Clone(t.education),
		experience:     maps.Clone(t.experience),
		documents:      maps.Clone(t.documents),
		balances:       maps.Clone(t.balances),
		leaves:         maps.Clone(t.leaves),
		reporting:      maps.Clone(t.reporting),
		timesheets:     maps.Clone(t.timesheets),
	}
}

// Store holds the tables shared by every repository built from it.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data tables
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{data: newTables(), now: time.Now}
}

type txMarker struct{}

// WithinTransaction implements database.Transactor. Transactions are
// serialized; a failing fn restores the snapshot taken before it ran.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txMarker{}).(bool); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	committed := false
	defer func() {
		if !committed {
			s.mu.Lock()
			s.data = snapshot
			s.mu.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		return err
	}
	committed = true
	return nil
}

var _ database.Transactor = (*Store)(nil)

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// fullName resolves an employee display name. Caller holds mu.
func (s *Store) fullName(employeeID string) string {
	if e, ok := s.data.employees[employeeID]; ok {
		return e.FullName()
	}
	return ""
}

// userDisplayName prefers the linked employee's name over the username.
// Caller holds mu.
func (s *Store) userDisplayName(userID string) *string {
	for _, e := range s.data.employees {
		if e.UserID != nil && *e.UserID == userID {
			name := e.FullName()
			return &name
		}
	}
	if u, ok := s.data.users[userID]; ok {
		name := u.Username
		return &name
	}
	return nil
}

func inSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
