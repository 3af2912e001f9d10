package applications

import "time"

// Status del workflow de solicitudes. El set es abierto: el admin puede
// setear otros valores; estos tres más "rejected" son los que usa la UI.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// IsActive: una solicitud activa bloquea duplicados para el mismo (user, pet).
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusUnderReview || s == StatusApproved
}

// Application es una solicitud de adopción.
type Application struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	PetID  string `json:"petId"`
	Status Status `json:"status"`

	// Datos del solicitante.
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	FullName    string `json:"fullName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	HousingType string `json:"housingType,omitempty"`
	Experience  string `json:"experience,omitempty"`
	Reason      string `json:"reason,omitempty"`

	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	AdminNotes  string     `json:"adminNotes,omitempty"`
}
