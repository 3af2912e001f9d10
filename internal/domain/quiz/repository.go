package quiz

import "context"

// Repository guarda a lo sumo un resultado por usuario.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (Result, error)
	// Save reemplaza cualquier resultado previo del mismo usuario.
	Save(ctx context.Context, res Result) error
}
