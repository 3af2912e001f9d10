package memory

import (
	"context"
	"sync"

	"pet-adoption-portal/internal/domain/favorites"
)

type favoriteRepo struct {
	mu    sync.RWMutex
	items []favorites.Favorite
}

func NewFavoritesRepo() favorites.Repository {
	return &favoriteRepo{}
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]favorites.Favorite, 0)
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, userID, petID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.items {
		if f.UserID == userID && f.PetID == petID {
			return true, nil
		}
	}
	return false, nil
}

func (r *favoriteRepo) Create(ctx context.Context, f favorites.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.UserID == f.UserID && it.PetID == f.PetID {
			return favorites.ErrDuplicate
		}
	}
	r.items = append(r.items, f)
	return nil
}

func (r *favoriteRepo) Delete(ctx context.Context, userID, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.items[:0]
	for _, it := range r.items {
		if !(it.UserID == userID && it.PetID == petID) {
			out = append(out, it)
		}
	}
	r.items = out
	return nil
}
