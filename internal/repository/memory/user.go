package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/oryfolks/hrms-backend-go/internal/domain/user"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) user.UserRepository {
	return &userRepository{s: s}
}

func byCreated(a, b user.User) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (r *userRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.data.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.data.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.users {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	u.ID = newID()
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	if u.Role == "" {
		u.Role = user.RoleEmployee
	}
	r.s.data.users[u.ID] = u
	return u, nil
}

func (r *userRepository) ListByRole(_ context.Context, role user.Role) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]user.User, 0)
	for _, u := range r.s.data.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	slices.SortFunc(users, byCreated)
	return users, nil
}

func (r *userRepository) List(_ context.Context) ([]user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := slices.Collect(maps.Values(r.s.data.users))
	slices.SortFunc(users, byCreated)
	return users, nil
}

func (r *userRepository) UpdateRole(_ context.Context, id string, role user.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.data.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = r.s.now()
	r.s.data.users[id] = u
	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.s.data.users, id)
	return nil
}
