package applications

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"pet-adoption-portal/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("valid email address is required")
	ErrInvalidDOB   = errors.New("date of birth is required")
	ErrUnderage     = errors.New("you must be at least 18 years old to submit an application")
	ErrDuplicate    = errors.New("you already have an application for this pet")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("application not found")
)

// Forma básica local@dominio.tld, igual que el front.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minAge = 18

// PetStatusSetter es el side effect de aprobación: la mascota pasa a pending.
// Lo satisface pets.Service.
type PetStatusSetter interface {
	SetStatus(ctx context.Context, petID string, status string) error
}

type Service struct {
	repo    Repository
	petsSvc PetStatusSetter
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, petsSvc PetStatusSetter) *Service {
	return &Service{
		repo:    repo,
		petsSvc: petsSvc,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

type SubmitInput struct {
	PetID       string
	Email       string
	DateOfBirth string
	FullName    string
	Phone       string
	Address     string
	HousingType string
	Experience  string
	Reason      string
}

// Submit valida en orden: email, fecha de nacimiento, edad >= 18,
// y que no exista otra solicitud activa para el mismo (user, pet).
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Application, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(in.PetID) == "" {
		return Application{}, ErrInvalidInput
	}

	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		return Application{}, ErrInvalidEmail
	}

	dob, err := parseDOB(in.DateOfBirth)
	if err != nil {
		return Application{}, ErrInvalidDOB
	}
	if ageAt(dob, s.now()) < minAge {
		return Application{}, ErrUnderage
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return Application{}, err
	}
	for _, a := range existing {
		if a.UserID == userID && a.PetID == in.PetID && a.Status.IsActive() {
			return Application{}, ErrDuplicate
		}
	}

	app := Application{
		ID:          s.newID(),
		UserID:      userID,
		PetID:       strings.TrimSpace(in.PetID),
		Status:      StatusPending,
		Email:       strings.TrimSpace(in.Email),
		DateOfBirth: strings.TrimSpace(in.DateOfBirth),
		FullName:    strings.TrimSpace(in.FullName),
		Phone:       strings.TrimSpace(in.Phone),
		Address:     strings.TrimSpace(in.Address),
		HousingType: in.HousingType,
		Experience:  in.Experience,
		Reason:      in.Reason,
		SubmittedAt: s.now(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Application, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Application, 0)
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListAll filtra opcionalmente por status (vista admin).
func (s *Service) ListAll(ctx context.Context, status string) ([]Application, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := make([]Application, 0)
	for _, a := range all {
		if string(a.Status) == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus setea status/reviewedAt/notes. Si queda approved, la mascota
// pasa a pending; mascota inexistente se tolera. Los dos writes no son
// atómicos: si el segundo falla el primero ya persistió.
func (s *Service) UpdateStatus(ctx context.Context, id, status, notes string) (Application, error) {
	if strings.TrimSpace(status) == "" {
		return Application{}, ErrInvalidInput
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}

	now := s.now()
	app.Status = Status(status)
	app.ReviewedAt = &now
	if strings.TrimSpace(notes) != "" {
		app.AdminNotes = notes
	}

	if app.Status == StatusApproved {
		if err := s.petsSvc.SetStatus(ctx, app.PetID, string(pets.StatusPending)); err != nil {
			if !errors.Is(err, pets.ErrNotFound) {
				return Application{}, err
			}
		}
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// parseDOB acepta YYYY-MM-DD y RFC3339 como fallback.
func parseDOB(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDOB
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// ageAt calcula edad por diferencia de años calendario ajustada por mes/día
// (no días transcurridos / 365.25).
func ageAt(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}
