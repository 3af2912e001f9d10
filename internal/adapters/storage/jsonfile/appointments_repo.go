package jsonfile

import (
	"context"
	"errors"

	"pet-adoption-portal/internal/domain/appointments"
)

type AppointmentsRepo struct {
	store *Store
}

func NewAppointmentsRepo(s *Store) *AppointmentsRepo {
	return &AppointmentsRepo{store: s}
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return list[appointments.Appointment](r.store, colAppointments)
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	items, err := list[appointments.Appointment](r.store, colAppointments)
	if err != nil {
		return appointments.Appointment{}, err
	}
	for _, a := range items {
		if a.ID == id {
			return a, nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	return update(r.store, colAppointments, func(items []appointments.Appointment) ([]appointments.Appointment, error) {
		for _, it := range items {
			if it.ID == a.ID {
				return nil, errors.New("appointment already exists")
			}
			// Re-chequeo del slot bajo el lock de la colección.
			if it.Date == a.Date && it.Time == a.Time && it.Status != appointments.StatusCancelled {
				return nil, appointments.ErrSlotTaken
			}
		}
		return append(items, a), nil
	})
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	return update(r.store, colAppointments, func(items []appointments.Appointment) ([]appointments.Appointment, error) {
		for i, it := range items {
			if it.ID == a.ID {
				items[i] = a
				return items, nil
			}
		}
		return nil, appointments.ErrNotFound
	})
}
