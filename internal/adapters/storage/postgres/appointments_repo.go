package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-portal/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `
	id, user_id, pet_id, date, time, notes, status, created_at, cancelled_at
`

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)

	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, err
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID, a.UserID, a.PetID, a.Date, a.Time, a.Notes,
		string(a.Status), a.CreatedAt, toNullTime(a.CancelledAt),
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments SET
			notes = $2, status = $3, cancelled_at = $4
		WHERE id = $1
	`,
		a.ID, a.Notes, string(a.Status), toNullTime(a.CancelledAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var (
		a           appointments.Appointment
		status      string
		cancelledAt sql.NullTime
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.PetID, &a.Date, &a.Time, &a.Notes,
		&status, &a.CreatedAt, &cancelledAt,
	)
	if err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	a.CancelledAt = fromNullTime(cancelledAt)
	return a, nil
}
