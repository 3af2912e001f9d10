package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
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

type CreateInput struct {
	Name        string
	Species     string
	Breed       string
	Size        string
	Gender      string
	AgeCategory string
	Description string
	ImageURL    string

	ActivityLevel    string
	NeedsYard        bool
	GoodForFirstTime bool
	NeedsExperienced bool
	TimeRequirement  string
	GoodWith         []string
	SpecialNeeds     bool
}

// UpdateInput usa punteros para update parcial: nil = no tocar.
// ID, Status y DateAdded no se tocan por esta vía.
type UpdateInput struct {
	Name        *string
	Species     *string
	Breed       *string
	Size        *string
	Gender      *string
	AgeCategory *string
	Description *string
	ImageURL    *string

	ActivityLevel    *string
	NeedsYard        *bool
	GoodForFirstTime *bool
	NeedsExperienced *bool
	TimeRequirement  *string
	GoodWith         *[]string
	SpecialNeeds     *bool
	Status           *string
}

// List aplica el pipeline de query sobre la colección completa.
func (s *Service) List(ctx context.Context, params ListParams) (ListResult, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return Query(all, params)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:          s.newID(),
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Size:        in.Size,
		Gender:      in.Gender,
		AgeCategory: in.AgeCategory,
		Description: in.Description,
		ImageURL:    in.ImageURL,

		ActivityLevel:    in.ActivityLevel,
		NeedsYard:        in.NeedsYard,
		GoodForFirstTime: in.GoodForFirstTime,
		NeedsExperienced: in.NeedsExperienced,
		TimeRequirement:  in.TimeRequirement,
		GoodWith:         in.GoodWith,
		SpecialNeeds:     in.SpecialNeeds,

		Status:    StatusAvailable,
		DateAdded: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update hace merge parcial preservando ID y DateAdded.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.AgeCategory != nil {
		p.AgeCategory = *in.AgeCategory
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.ActivityLevel != nil {
		p.ActivityLevel = *in.ActivityLevel
	}
	if in.NeedsYard != nil {
		p.NeedsYard = *in.NeedsYard
	}
	if in.GoodForFirstTime != nil {
		p.GoodForFirstTime = *in.GoodForFirstTime
	}
	if in.NeedsExperienced != nil {
		p.NeedsExperienced = *in.NeedsExperienced
	}
	if in.TimeRequirement != nil {
		p.TimeRequirement = *in.TimeRequirement
	}
	if in.GoodWith != nil {
		p.GoodWith = *in.GoodWith
	}
	if in.SpecialNeeds != nil {
		p.SpecialNeeds = *in.SpecialNeeds
	}
	if in.Status != nil {
		p.Status = Status(*in.Status)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SetStatus implementa el port applications.PetStatusSetter
// (side effect de aprobación de solicitudes).
func (s *Service) SetStatus(ctx context.Context, id string, status string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = Status(status)
	return s.repo.Update(ctx, p)
}
