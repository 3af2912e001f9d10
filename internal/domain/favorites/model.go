package favorites

import "time"

// Favorite marca una mascota como favorita de un usuario.
// Invariante: único por (userId, petId).
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PetID     string    `json:"petId"`
	CreatedAt time.Time `json:"createdAt"`
}
