package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-portal/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) get(ctx context.Context, where, arg string) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, role, created_at
		FROM users `+where,
		arg,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.CreatedAt)
	return err
}
