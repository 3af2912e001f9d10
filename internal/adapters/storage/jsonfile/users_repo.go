package jsonfile

import (
	"context"

	"pet-adoption-portal/internal/domain/users"
)

type UsersRepo struct {
	store *Store
}

func NewUsersRepo(s *Store) *UsersRepo {
	return &UsersRepo{store: s}
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	items, err := list[users.User](r.store, colUsers)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range items {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	items, err := list[users.User](r.store, colUsers)
	if err != nil {
		return users.User{}, err
	}
	for _, u := range items {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return update(r.store, colUsers, func(items []users.User) ([]users.User, error) {
		// Re-chequeo del email bajo el lock.
		for _, it := range items {
			if it.Email == u.Email {
				return nil, users.ErrEmailTaken
			}
		}
		return append(items, u), nil
	})
}
