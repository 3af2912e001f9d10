package favorites

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Exists(ctx context.Context, userID, petID string) (bool, error)
	Create(ctx context.Context, f Favorite) error
	// Delete es no-op si el favorito no existe.
	Delete(ctx context.Context, userID, petID string) error
}
