package jsonfile

import (
	"context"

	"pet-adoption-portal/internal/domain/favorites"
)

type FavoritesRepo struct {
	store *Store
}

func NewFavoritesRepo(s *Store) *FavoritesRepo {
	return &FavoritesRepo{store: s}
}

func (r *FavoritesRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	items, err := list[favorites.Favorite](r.store, colFavorites)
	if err != nil {
		return nil, err
	}
	out := make([]favorites.Favorite, 0)
	for _, f := range items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FavoritesRepo) Exists(ctx context.Context, userID, petID string) (bool, error) {
	items, err := list[favorites.Favorite](r.store, colFavorites)
	if err != nil {
		return false, err
	}
	for _, f := range items {
		if f.UserID == userID && f.PetID == petID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoritesRepo) Create(ctx context.Context, f favorites.Favorite) error {
	return update(r.store, colFavorites, func(items []favorites.Favorite) ([]favorites.Favorite, error) {
		// Re-chequeo bajo el lock: Exists corre fuera de la sección crítica.
		for _, it := range items {
			if it.UserID == f.UserID && it.PetID == f.PetID {
				return nil, favorites.ErrDuplicate
			}
		}
		return append(items, f), nil
	})
}

func (r *FavoritesRepo) Delete(ctx context.Context, userID, petID string) error {
	// No-op si no existe.
	return update(r.store, colFavorites, func(items []favorites.Favorite) ([]favorites.Favorite, error) {
		out := items[:0]
		for _, it := range items {
			if !(it.UserID == userID && it.PetID == petID) {
				out = append(out, it)
			}
		}
		return out, nil
	})
}
