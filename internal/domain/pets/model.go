package pets

import "time"

// Status define el ciclo de vida de una mascota en el portal.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// Species define las especies soportadas.
// @Enum dog, cat, rabbit, bird, other
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesRabbit Species = "rabbit"
	SpeciesBird   Species = "bird"
	SpeciesOther  Species = "other"
)

// Size define el tamaño de la mascota.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Tags de compatibilidad usados en GoodWith.
const (
	TagKids = "kids"
	TagPets = "pets"
)

// Pet representa el perfil de adopción de una mascota.
// Los nombres JSON son camelCase: es el contrato de datos del front end
// y de los archivos de colección.
type Pet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Size        string `json:"size"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// Perfil de convivencia usado por el quiz de matching.
	ActivityLevel    string   `json:"activityLevel"`
	NeedsYard        bool     `json:"needsYard"`
	GoodForFirstTime bool     `json:"goodForFirstTime"`
	NeedsExperienced bool     `json:"needsExperienced"`
	TimeRequirement  string   `json:"timeRequirement"`
	GoodWith         []string `json:"goodWith"`
	SpecialNeeds     bool     `json:"specialNeeds"`

	Status    Status    `json:"status"`
	DateAdded time.Time `json:"dateAdded"`
}

// GoodWithTag reporta si la mascota convive bien con el tag dado.
func (p Pet) GoodWithTag(tag string) bool {
	for _, t := range p.GoodWith {
		if t == tag {
			return true
		}
	}
	return false
}
