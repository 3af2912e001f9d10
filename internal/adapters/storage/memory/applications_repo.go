package memory

import (
	"context"
	"errors"
	"sync"

	"pet-adoption-portal/internal/domain/applications"
)

type applicationRepo struct {
	mu    sync.RWMutex
	items []applications.Application
}

func NewApplicationsRepo() applications.Repository {
	return &applicationRepo{}
}

func (r *applicationRepo) List(ctx context.Context) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return applications.Application{}, applications.ErrNotFound
}

func (r *applicationRepo) Create(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("application id required")
	}
	for _, it := range r.items {
		if it.ID == a.ID {
			return errors.New("application already exists")
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *applicationRepo) Update(ctx context.Context, a applications.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == a.ID {
			r.items[i] = a
			return nil
		}
	}
	return applications.ErrNotFound
}
