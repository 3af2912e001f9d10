package applications

import "context"

type Repository interface {
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
}
