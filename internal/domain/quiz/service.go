package quiz

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"pet-adoption-portal/internal/domain/pets"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("no quiz results found")
)

type Service struct {
	repo  Repository
	pets  pets.Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, petsRepo pets.Repository) *Service {
	return &Service{
		repo:  repo,
		pets:  petsRepo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit puntúa todas las mascotas disponibles, ordena desc por score
// (empates quedan en orden de colección) y reemplaza el resultado previo
// del usuario.
func (s *Service) Submit(ctx context.Context, userID string, answers Answers) (Result, error) {
	if strings.TrimSpace(userID) == "" {
		return Result{}, ErrInvalidInput
	}

	all, err := s.pets.List(ctx)
	if err != nil {
		return Result{}, err
	}

	matches := make([]Match, 0, len(all))
	for _, p := range all {
		if p.Status != pets.StatusAvailable {
			continue
		}
		matches = append(matches, Match{PetID: p.ID, Score: Score(answers, p)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	res := Result{
		ID:        s.newID(),
		UserID:    userID,
		Answers:   answers,
		Matches:   matches,
		CreatedAt: s.now(),
	}

	if err := s.repo.Save(ctx, res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *Service) ResultsFor(ctx context.Context, userID string) (Result, error) {
	if strings.TrimSpace(userID) == "" {
		return Result{}, ErrInvalidInput
	}
	return s.repo.GetByUser(ctx, userID)
}
