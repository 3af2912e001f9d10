package jsonfile

import (
	"context"
	"errors"

	"pet-adoption-portal/internal/domain/applications"
)

type ApplicationsRepo struct {
	store *Store
}

func NewApplicationsRepo(s *Store) *ApplicationsRepo {
	return &ApplicationsRepo{store: s}
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	return list[applications.Application](r.store, colApplications)
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	items, err := list[applications.Application](r.store, colApplications)
	if err != nil {
		return applications.Application{}, err
	}
	for _, a := range items {
		if a.ID == id {
			return a, nil
		}
	}
	return applications.Application{}, applications.ErrNotFound
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	return update(r.store, colApplications, func(items []applications.Application) ([]applications.Application, error) {
		for _, it := range items {
			if it.ID == a.ID {
				return nil, errors.New("application already exists")
			}
		}
		return append(items, a), nil
	})
}

func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application) error {
	return update(r.store, colApplications, func(items []applications.Application) ([]applications.Application, error) {
		for i, it := range items {
			if it.ID == a.ID {
				items[i] = a
				return items, nil
			}
		}
		return nil, applications.ErrNotFound
	})
}
