package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("pet already in favorites")
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

// ListPetIDs devuelve solo los petIds (lo que consume el front).
func (s *Service) ListPetIDs(ctx context.Context, userID string) ([]string, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, f := range items {
		out = append(out, f.PetID)
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, userID, petID string) (Favorite, error) {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return Favorite{}, ErrInvalidInput
	}

	exists, err := s.repo.Exists(ctx, userID, petID)
	if err != nil {
		return Favorite{}, err
	}
	if exists {
		return Favorite{}, ErrDuplicate
	}

	f := Favorite{
		ID:        s.newID(),
		UserID:    userID,
		PetID:     petID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return Favorite{}, err
	}
	return f, nil
}

// Remove es idempotente: quitar un favorito inexistente es éxito no-op.
func (s *Service) Remove(ctx context.Context, userID, petID string) error {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, petID)
}
