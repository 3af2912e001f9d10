package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-portal/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

const applicationColumns = `
	id, user_id, pet_id, status, email, date_of_birth, full_name, phone,
	address, housing_type, experience, reason, submitted_at, reviewed_at,
	admin_notes
`

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		ORDER BY submitted_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1
	`, id)

	a, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return applications.Application{}, applications.ErrNotFound
	}
	return a, err
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.ID, a.UserID, a.PetID, string(a.Status), a.Email, a.DateOfBirth,
		a.FullName, a.Phone, a.Address, a.HousingType, a.Experience,
		a.Reason, a.SubmittedAt, toNullTime(a.ReviewedAt), a.AdminNotes,
	)
	return err
}

func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications SET
			status = $2, reviewed_at = $3, admin_notes = $4
		WHERE id = $1
	`,
		a.ID, string(a.Status), toNullTime(a.ReviewedAt), a.AdminNotes,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return applications.ErrNotFound
	}
	return nil
}

func scanApplication(row rowScanner) (applications.Application, error) {
	var (
		a          applications.Application
		status     string
		reviewedAt sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.PetID, &status, &a.Email, &a.DateOfBirth,
		&a.FullName, &a.Phone, &a.Address, &a.HousingType, &a.Experience,
		&a.Reason, &a.SubmittedAt, &reviewedAt, &a.AdminNotes,
	)
	if err != nil {
		return applications.Application{}, err
	}
	a.Status = applications.Status(status)
	a.ReviewedAt = fromNullTime(reviewedAt)
	return a, nil
}
