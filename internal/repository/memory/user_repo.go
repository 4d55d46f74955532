// Package memory provides map-backed repository implementations with the
// same observable behavior as the postgres ones. Intended for tests and
// demo mode; state does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/gracehill/ministry/internal/domain"
)

type UserRepo struct {
	mu     sync.RWMutex
	users  map[int]domain.User
	nextID int
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		users:  make(map[int]domain.User),
		nextID: 1,
	}
}

func (r *UserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}
