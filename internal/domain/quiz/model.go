package quiz

import "time"

// Answers son las respuestas del cuestionario de matching.
// El front manda el record completo; se guarda tal cual junto al resultado.
type Answers struct {
	ActivityLevel     string   `json:"activityLevel"`
	SizePreference    []string `json:"sizePreference"`
	SpeciesPreference string   `json:"speciesPreference"`
	HousingType       string   `json:"housingType"`
	HasYard           bool     `json:"hasYard"`
	Experience        string   `json:"experience"`
	TimeCommitment    string   `json:"timeCommitment"`
	HasKids           bool     `json:"hasKids"`
	HasOtherPets      bool     `json:"hasOtherPets"`
}

// Match es un par (mascota, score) del resultado.
type Match struct {
	PetID string `json:"petId"`
	Score int    `json:"score"`
}

// Result es el resultado almacenado de un usuario.
// Invariante: a lo sumo un Result por usuario; un nuevo submit reemplaza el anterior.
type Result struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Answers   Answers   `json:"answers"`
	Matches   []Match   `json:"matches"`
	CreatedAt time.Time `json:"createdAt"`
}
