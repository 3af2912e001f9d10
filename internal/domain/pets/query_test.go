package pets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePets() []Pet {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Pet{
		{ID: "p1", Name: "Luna", Species: "dog", Breed: "labrador", Size: "large", Gender: "female", AgeCategory: "adult", Description: "Juguetona y muy activa", GoodWith: []string{TagKids, TagPets}, Status: StatusAvailable, DateAdded: base},
		{ID: "p2", Name: "Michi", Species: "cat", Breed: "siames", Size: "small", Gender: "male", AgeCategory: "young", Description: "Tranquilo", GoodWith: []string{TagPets}, Status: StatusAvailable, DateAdded: base.AddDate(0, 0, 1)},
		{ID: "p3", Name: "Rocky", Species: "dog", Breed: "mestizo", Size: "medium", Gender: "male", AgeCategory: "senior", Description: "Necesita hogar tranquilo", SpecialNeeds: true, Status: StatusAvailable, DateAdded: base.AddDate(0, 0, 2)},
		{ID: "p4", Name: "Coco", Species: "bird", Breed: "canario", Size: "small", Gender: "female", AgeCategory: "adult", Description: "Canta de mañana", Status: StatusPending, DateAdded: base.AddDate(0, 0, 3)},
		{ID: "p5", Name: "Toby", Species: "dog", Breed: "beagle", Size: "medium", Gender: "male", AgeCategory: "adult", Description: "Curioso", GoodWith: []string{TagKids}, Status: StatusAdopted, DateAdded: base.AddDate(0, 0, 4)},
	}
}

func TestQuery_DefaultsToAvailable(t *testing.T) {
	res, err := Query(samplePets(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalCount)
	for _, p := range res.Pets {
		assert.Equal(t, StatusAvailable, p.Status)
	}
	// Default: dateAdded desc
	assert.Equal(t, "p3", res.Pets[0].ID)
	assert.Equal(t, "p1", res.Pets[2].ID)
}

func TestQuery_StatusFilter(t *testing.T) {
	res, err := Query(samplePets(), ListParams{Status: "adopted"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p5", res.Pets[0].ID)
}

func TestQuery_EqualityFilters(t *testing.T) {
	pets := samplePets()

	res, err := Query(pets, ListParams{Species: "dog"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount) // p5 queda fuera por status

	res, err = Query(pets, ListParams{Species: "dog", Size: "medium"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p3", res.Pets[0].ID)

	res, err = Query(pets, ListParams{SpecialNeeds: "true"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p3", res.Pets[0].ID)

	res, err = Query(pets, ListParams{SpecialNeeds: "false"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
}

func TestQuery_GoodWithIsAnd(t *testing.T) {
	pets := samplePets()

	res, err := Query(pets, ListParams{GoodWith: "kids"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p1", res.Pets[0].ID)

	// Ambos tags a la vez: solo Luna los tiene.
	res, err = Query(pets, ListParams{GoodWith: "kids,pets"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p1", res.Pets[0].ID)

	res, err = Query(pets, ListParams{GoodWith: "pets"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
}

func TestQuery_Search(t *testing.T) {
	pets := samplePets()

	// Matchea name, description o breed, case-insensitive.
	res, err := Query(pets, ListParams{Search: "  LUNA "})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p1", res.Pets[0].ID)

	res, err = Query(pets, ListParams{Search: "tranquilo"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)

	res, err = Query(pets, ListParams{Search: "mestizo"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 1)
	assert.Equal(t, "p3", res.Pets[0].ID)
}

func TestQuery_SearchLengthLimit(t *testing.T) {
	pets := samplePets()

	// 100 caracteres pasan, 101 no.
	_, err := Query(pets, ListParams{Search: strings.Repeat("a", 100)})
	require.NoError(t, err)

	_, err = Query(pets, ListParams{Search: strings.Repeat("a", 101)})
	require.ErrorIs(t, err, ErrSearchTooLong)
}

func TestQuery_SortByName(t *testing.T) {
	pets := samplePets()

	res, err := Query(pets, ListParams{SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, res.Pets, 3)
	assert.Equal(t, "Luna", res.Pets[0].Name)
	assert.Equal(t, "Michi", res.Pets[1].Name)
	assert.Equal(t, "Rocky", res.Pets[2].Name)

	res, err = Query(pets, ListParams{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "Rocky", res.Pets[0].Name)
}

func TestQuery_Pagination(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	many := make([]Pet, 0, 13)
	for i := 0; i < 13; i++ {
		many = append(many, Pet{
			ID:        string(rune('a' + i)),
			Name:      "Pet",
			Species:   "dog",
			Status:    StatusAvailable,
			DateAdded: base.AddDate(0, 0, i),
		})
	}

	res, err := Query(many, ListParams{Limit: 5, Page: 1, SortOrder: "asc"})
	require.NoError(t, err)
	assert.Len(t, res.Pets, 5)
	assert.Equal(t, 13, res.TotalCount)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, 3, res.TotalPages) // ceil(13/5)

	res, err = Query(many, ListParams{Limit: 5, Page: 3, SortOrder: "asc"})
	require.NoError(t, err)
	assert.Len(t, res.Pets, 3)

	// Página fuera de rango: lista vacía pero metadata coherente.
	res, err = Query(many, ListParams{Limit: 5, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, res.Pets)
	assert.Equal(t, 13, res.TotalCount)
	assert.Equal(t, 9, res.CurrentPage)
}

func TestQuery_DefaultLimit(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	many := make([]Pet, 0, 20)
	for i := 0; i < 20; i++ {
		many = append(many, Pet{ID: "x", Status: StatusAvailable, DateAdded: base})
	}

	res, err := Query(many, ListParams{})
	require.NoError(t, err)
	assert.Len(t, res.Pets, DefaultLimit)
	assert.Equal(t, 2, res.TotalPages)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	pets := samplePets()
	first := pets[0].ID

	_, err := Query(pets, ListParams{SortBy: "name", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, first, pets[0].ID)
}
