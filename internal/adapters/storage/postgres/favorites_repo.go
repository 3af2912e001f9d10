package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-portal/internal/domain/favorites"
)

type FavoritesRepo struct {
	db *sql.DB
}

func NewFavoritesRepo(db *sql.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

func (r *FavoritesRepo) ListByUser(ctx context.Context, userID string) ([]favorites.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, pet_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]favorites.Favorite, 0)
	for rows.Next() {
		var f favorites.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PetID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FavoritesRepo) Exists(ctx context.Context, userID, petID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM favorites WHERE user_id = $1 AND pet_id = $2
	`, userID, petID).Scan(&n)
	return n > 0, err
}

func (r *FavoritesRepo) Create(ctx context.Context, f favorites.Favorite) error {
	// El UNIQUE (user_id, pet_id) del esquema respalda el invariante.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (id, user_id, pet_id, created_at)
		VALUES ($1,$2,$3,$4)
	`, f.ID, f.UserID, f.PetID, f.CreatedAt)
	return err
}

func (r *FavoritesRepo) Delete(ctx context.Context, userID, petID string) error {
	// No-op si no existe.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM favorites WHERE user_id = $1 AND pet_id = $2
	`, userID, petID)
	return err
}
