package quiz

import (
	"testing"

	"pet-adoption-portal/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectPet() pets.Pet {
	return pets.Pet{
		ID:               "pet-1",
		Species:          "dog",
		Size:             "medium",
		ActivityLevel:    "high",
		NeedsYard:        false,
		GoodForFirstTime: true,
		NeedsExperienced: false,
		TimeRequirement:  "moderate",
		GoodWith:         []string{pets.TagKids, pets.TagPets},
		Status:           pets.StatusAvailable,
	}
}

func perfectAnswers() Answers {
	return Answers{
		ActivityLevel:     "high",
		SizePreference:    []string{"medium"},
		SpeciesPreference: "dog",
		HousingType:       "apartment",
		HasYard:           false,
		Experience:        "experienced",
		TimeCommitment:    "high",
		HasKids:           true,
		HasOtherPets:      true,
	}
}

func TestScore_PerfectMatch(t *testing.T) {
	require.Equal(t, 100, Score(perfectAnswers(), perfectPet()))
}

func TestScore_ActivityTiers(t *testing.T) {
	pet := perfectPet()
	pet.ActivityLevel = "high"

	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"exact match", "high", 100},
		{"adjacent tier", "moderate", 90},
		{"opposite tier", "low", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := perfectAnswers()
			a.ActivityLevel = tt.answer
			assert.Equal(t, tt.want, Score(a, pet))
		})
	}
}

func TestScore_Housing(t *testing.T) {
	a := perfectAnswers()
	pet := perfectPet()

	// Casa con patio y mascota que necesita patio: 15 puntos de vivienda.
	a.HousingType = "house"
	a.HasYard = true
	pet.NeedsYard = true
	assert.Equal(t, 100, Score(a, pet))

	// Departamento sin patio y mascota que necesita patio: 0 de vivienda.
	a.HousingType = "apartment"
	a.HasYard = false
	assert.Equal(t, 85, Score(a, pet))

	// Mascota sin necesidad de patio suma 15 siempre.
	pet.NeedsYard = false
	assert.Equal(t, 100, Score(a, pet))
}

func TestScore_ExperienceAndTime(t *testing.T) {
	pet := perfectPet()
	pet.GoodForFirstTime = false
	pet.TimeRequirement = "high"

	a := perfectAnswers()
	// "some" sin needsExperienced: 7 en vez de 10. Compromiso "low" con
	// requerimiento "high": 0 en vez de 10.
	a.Experience = "some"
	a.TimeCommitment = "low"
	assert.Equal(t, 87, Score(a, pet))

	// "moderate" tampoco alcanza cuando el pet exige "high".
	a.TimeCommitment = "moderate"
	assert.Equal(t, 87, Score(a, pet))

	// Con requerimiento moderado cualquier compromiso suma los 10.
	pet.TimeRequirement = "moderate"
	a.TimeCommitment = "low"
	assert.Equal(t, 97, Score(a, pet))
}

func TestScore_Compatibility(t *testing.T) {
	pet := perfectPet()
	pet.GoodWith = nil

	a := perfectAnswers()
	a.HasKids = true
	a.HasOtherPets = true
	// Pierde kids (10) y pets (5).
	assert.Equal(t, 85, Score(a, pet))

	// Sin niños ni otras mascotas no se exige el tag.
	a.HasKids = false
	a.HasOtherPets = false
	assert.Equal(t, 100, Score(a, pet))
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	activities := []string{"high", "moderate", "low", ""}
	housings := []string{"house", "apartment", ""}
	experiences := []string{"experienced", "some", "none"}
	commitments := []string{"high", "moderate", "low"}

	pet := perfectPet()
	pet.NeedsYard = true
	pet.NeedsExperienced = true
	pet.GoodForFirstTime = false

	for _, act := range activities {
		for _, h := range housings {
			for _, exp := range experiences {
				for _, tc := range commitments {
					a := perfectAnswers()
					a.ActivityLevel = act
					a.HousingType = h
					a.Experience = exp
					a.TimeCommitment = tc

					got := Score(a, pet)
					require.GreaterOrEqual(t, got, 0)
					require.LessOrEqual(t, got, 100)
				}
			}
		}
	}
}
