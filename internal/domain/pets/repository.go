package pets

import "context"

// Repository persiste la colección de mascotas.
// List devuelve la colección completa: el pipeline de filtros/orden/paginación
// se aplica en memoria (ver query.go), igual para todos los adapters.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
