package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("missing required fields")
	ErrSlotTaken    = errors.New("time slot not available")
	ErrNotFound     = errors.New("appointment not found")
	ErrForbidden    = errors.New("access denied")
)

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

type ScheduleInput struct {
	PetID string
	Date  string
	Time  string
	Notes string
}

// Schedule agenda una visita si el slot (date, time) está libre en todo el
// calendario (no por mascota).
func (s *Service) Schedule(ctx context.Context, userID string, in ScheduleInput) (Appointment, error) {
	if strings.TrimSpace(userID) == "" ||
		strings.TrimSpace(in.PetID) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return Appointment{}, ErrInvalidInput
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return Appointment{}, err
	}

	if slotTaken(all, in.Date, in.Time) {
		return Appointment{}, ErrSlotTaken
	}

	a := Appointment{
		ID:        s.newID(),
		UserID:    userID,
		PetID:     strings.TrimSpace(in.PetID),
		Date:      strings.TrimSpace(in.Date),
		Time:      strings.TrimSpace(in.Time),
		Notes:     in.Notes,
		Status:    StatusScheduled,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Appointment, 0)
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// Cancel solo lo puede hacer el dueño de la visita.
func (s *Service) Cancel(ctx context.Context, id, userID string) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if a.UserID != userID {
		return Appointment{}, ErrForbidden
	}

	now := s.now()
	a.Status = StatusCancelled
	a.CancelledAt = &now

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// SlotsFor calcula los horarios libres de una fecha.
func (s *Service) SlotsFor(ctx context.Context, date string) ([]string, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrInvalidInput
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return AvailableSlots(all, date), nil
}
