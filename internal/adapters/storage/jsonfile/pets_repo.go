package jsonfile

import (
	"context"
	"errors"

	"pet-adoption-portal/internal/domain/pets"
)

type PetsRepo struct {
	store *Store
}

func NewPetsRepo(s *Store) *PetsRepo {
	return &PetsRepo{store: s}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return list[pets.Pet](r.store, colPets)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	items, err := list[pets.Pet](r.store, colPets)
	if err != nil {
		return pets.Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return update(r.store, colPets, func(items []pets.Pet) ([]pets.Pet, error) {
		for _, it := range items {
			if it.ID == p.ID {
				return nil, errors.New("pet already exists")
			}
		}
		return append(items, p), nil
	})
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	return update(r.store, colPets, func(items []pets.Pet) ([]pets.Pet, error) {
		for i, it := range items {
			if it.ID == p.ID {
				items[i] = p
				return items, nil
			}
		}
		return nil, pets.ErrNotFound
	})
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return update(r.store, colPets, func(items []pets.Pet) ([]pets.Pet, error) {
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		if len(out) == len(items) {
			return nil, pets.ErrNotFound
		}
		return out, nil
	})
}
