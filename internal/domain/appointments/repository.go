package appointments

import "context"

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
}
