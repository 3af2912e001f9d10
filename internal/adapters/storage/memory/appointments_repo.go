package memory

import (
	"context"
	"errors"
	"sync"

	"pet-adoption-portal/internal/domain/appointments"
)

type appointmentRepo struct {
	mu    sync.RWMutex
	items []appointments.Appointment
}

func NewAppointmentsRepo() appointments.Repository {
	return &appointmentRepo{}
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("appointment id required")
	}
	for _, it := range r.items {
		if it.Date == a.Date && it.Time == a.Time && it.Status != appointments.StatusCancelled {
			return appointments.ErrSlotTaken
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == a.ID {
			r.items[i] = a
			return nil
		}
	}
	return appointments.ErrNotFound
}
