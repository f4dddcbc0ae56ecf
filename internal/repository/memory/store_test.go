package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	s := NewStore()
	users := NewUserRepository(s)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := users.Create(ctx, user.User{Username: "ghost"})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = users.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestWithinTransaction_NestedCallsJoin(t *testing.T) {
	s := NewStore()
	users := NewUserRepository(s)
	employees := NewEmployeeRepository(s)
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		err := s.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := users.Create(ctx, user.User{Username: "inner"})
			return err
		})
		require.NoError(t, err)

		_, err = employees.Create(ctx, employee.Employee{FirstName: "A", LastName: "B", Email: "a@corp.example"})
		require.NoError(t, err)
		return errors.New("outer fails")
	})
	require.Error(t, err)

	_, err = users.GetByUsername(ctx, "inner")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	all, err := employees.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	s := NewStore()
	users := NewUserRepository(s)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.WithinTransaction(ctx, func(ctx context.Context) error {
			_, _ = users.Create(ctx, user.User{Username: "panicky"})
			panic("boom")
		})
	})

	_, err := users.GetByUsername(ctx, "panicky")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestWithinTransaction_Commits(t *testing.T) {
	s := NewStore()
	users := NewUserRepository(s)
	ctx := context.Background()

	require.NoError(t, s.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := users.Create(ctx, user.User{Username: "kept"})
		return err
	}))

	u, err := users.GetByUsername(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, u.Role)
}

func TestEmployeeRepository_Uniqueness(t *testing.T) {
	s := NewStore()
	employees := NewEmployeeRepository(s)
	ctx := context.Background()

	phone := "5550100"
	_, err := employees.Create(ctx, employee.Employee{FirstName: "A", LastName: "B", Email: "a@corp.example", PhoneNumber: &phone})
	require.NoError(t, err)

	_, err = employees.Create(ctx, employee.Employee{FirstName: "C", LastName: "D", Email: "a@corp.example"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = employees.Create(ctx, employee.Employee{FirstName: "C", LastName: "D", Email: "c@corp.example", PhoneNumber: &phone})
	assert.ErrorIs(t, err, employee.ErrPhoneExists)
}
