// Package memory implementa los repos sobre slices en memoria, para dev y
// tests. Se usan slices (no maps) para preservar el orden de inserción,
// igual que las colecciones en archivo: el scorer del quiz desempata por
// orden de colección.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-adoption-portal/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

func NewPetsRepo() pets.Repository {
	return &petRepo{}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	for _, it := range r.items {
		if it.ID == p.ID {
			return errors.New("pet already exists")
		}
	}
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = p
			return nil
		}
	}
	return pets.ErrNotFound
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return pets.ErrNotFound
}
