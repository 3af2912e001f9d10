package appointments

import "time"

// Status de una visita.
// @Enum scheduled, cancelled
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// Appointment es una visita agendada para conocer una mascota.
// Invariante: no hay dos visitas no-canceladas con el mismo (date, time).
// La exclusividad es global: un solo calendario compartido del refugio,
// no un calendario por mascota.
type Appointment struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	PetID       string     `json:"petId"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Time        string     `json:"time"` // HH:MM
	Notes       string     `json:"notes"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}
