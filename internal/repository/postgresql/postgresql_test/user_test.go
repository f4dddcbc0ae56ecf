package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
	"github.com/oryfolks/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	hashStr := string(hash)

	created, err := repo.Create(ctx, user.User{
		Username:     "ada@corp.example",
		Email:        "ada@corp.example",
		PasswordHash: &hashStr,
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)

	byName, err := repo.GetByUsername(ctx, "ada@corp.example")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	require.NotNil(t, byName.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*byName.PasswordHash), []byte("password123")))

	_, err = repo.GetByUsername(ctx, "ADA@corp.example")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.User{Username: "dup", Email: "dup@corp.example", Role: user.RoleEmployee})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{Username: "dup", Email: "other@corp.example", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_RolesAndDelete(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	first, err := repo.Create(ctx, user.User{Username: "root", Email: "root@corp.example", Role: user.RoleAdmin})
	require.NoError(t, err)
	second, err := repo.Create(ctx, user.User{Username: "root2", Email: "root2@corp.example", Role: user.RoleAdmin})
	require.NoError(t, err)
	lead, err := repo.Create(ctx, user.User{Username: "lead", Email: "lead@corp.example", Role: user.RoleEmployee})
	require.NoError(t, err)

	admins, err := repo.ListByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, first.ID, admins[0].ID)
	assert.Equal(t, second.ID, admins[1].ID)

	require.NoError(t, repo.UpdateRole(ctx, lead.ID, user.RoleReportingManager))
	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleReportingManager, got.Role)

	require.NoError(t, repo.Delete(ctx, lead.ID))
	_, err = repo.GetByID(ctx, lead.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	assert.ErrorIs(t, repo.UpdateRole(ctx, lead.ID, user.RoleHR), user.ErrUserNotFound)
}

func TestTransactor_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, user.User{Username: "ghost", Email: "ghost@corp.example", Role: user.RoleEmployee}); err != nil {
			return err
		}
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
