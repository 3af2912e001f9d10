package memory

import (
	"context"
	"errors"
	"sync"

	"pet-adoption-portal/internal/domain/users"
)

type userRepo struct {
	mu    sync.RWMutex
	items []users.User
}

func NewUsersRepo() users.Repository {
	return &userRepo{}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	for _, it := range r.items {
		if it.Email == u.Email {
			return users.ErrEmailTaken
		}
	}
	r.items = append(r.items, u)
	return nil
}
