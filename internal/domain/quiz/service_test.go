package quiz

import (
	"context"
	"testing"
	"time"

	"pet-adoption-portal/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakes en memoria para aislar el service del adapter real

type fakeQuizRepo struct {
	results map[string]Result
	saves   int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{results: make(map[string]Result)}
}

func (f *fakeQuizRepo) GetByUser(_ context.Context, userID string) (Result, error) {
	res, ok := f.results[userID]
	if !ok {
		return Result{}, ErrNotFound
	}
	return res, nil
}

func (f *fakeQuizRepo) Save(_ context.Context, res Result) error {
	f.results[res.UserID] = res
	f.saves++
	return nil
}

type fakePetsRepo struct {
	items []pets.Pet
}

func (f *fakePetsRepo) List(_ context.Context) ([]pets.Pet, error) { return f.items, nil }

func (f *fakePetsRepo) GetByID(_ context.Context, id string) (pets.Pet, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (f *fakePetsRepo) Create(_ context.Context, p pets.Pet) error {
	f.items = append(f.items, p)
	return nil
}

func (f *fakePetsRepo) Update(context.Context, pets.Pet) error { return nil }
func (f *fakePetsRepo) Delete(context.Context, string) error   { return nil }

func newTestService(petList []pets.Pet) (*Service, *fakeQuizRepo) {
	repo := newFakeQuizRepo()
	svc := NewService(repo, &fakePetsRepo{items: petList})
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "result-1" }
	return svc, repo
}

func TestSubmit_OnlyAvailablePets(t *testing.T) {
	list := []pets.Pet{
		{ID: "a", Species: "dog", Status: pets.StatusAvailable},
		{ID: "b", Species: "dog", Status: pets.StatusPending},
		{ID: "c", Species: "dog", Status: pets.StatusAdopted},
	}
	svc, _ := newTestService(list)

	res, err := svc.Submit(context.Background(), "user-1", Answers{})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "a", res.Matches[0].PetID)
}

func TestSubmit_SortedByScoreDesc(t *testing.T) {
	// "gato" matchea especie (15) y el perro no; el resto de la tabla es igual.
	list := []pets.Pet{
		{ID: "dog-1", Species: "dog", Status: pets.StatusAvailable},
		{ID: "cat-1", Species: "cat", Status: pets.StatusAvailable},
	}
	svc, _ := newTestService(list)

	res, err := svc.Submit(context.Background(), "user-1", Answers{SpeciesPreference: "cat"})
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "cat-1", res.Matches[0].PetID)
	assert.Greater(t, res.Matches[0].Score, res.Matches[1].Score)
}

func TestSubmit_TiesKeepCollectionOrder(t *testing.T) {
	// Tres mascotas idénticas: mismo score, el orden de la colección se preserva.
	list := []pets.Pet{
		{ID: "first", Species: "dog", Status: pets.StatusAvailable},
		{ID: "second", Species: "dog", Status: pets.StatusAvailable},
		{ID: "third", Species: "dog", Status: pets.StatusAvailable},
	}
	svc, _ := newTestService(list)

	res, err := svc.Submit(context.Background(), "user-1", Answers{})
	require.NoError(t, err)
	require.Len(t, res.Matches, 3)
	assert.Equal(t, "first", res.Matches[0].PetID)
	assert.Equal(t, "second", res.Matches[1].PetID)
	assert.Equal(t, "third", res.Matches[2].PetID)
}

func TestSubmit_ReplacesPreviousResult(t *testing.T) {
	list := []pets.Pet{{ID: "a", Species: "dog", Status: pets.StatusAvailable}}
	svc, repo := newTestService(list)

	_, err := svc.Submit(context.Background(), "user-1", Answers{ActivityLevel: "low"})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "user-1", Answers{ActivityLevel: "high"})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.saves)
	require.Len(t, repo.results, 1)
	assert.Equal(t, "high", repo.results["user-1"].Answers.ActivityLevel)
}

func TestSubmit_EmptyUser(t *testing.T) {
	svc, _ := newTestService(nil)
	_, err := svc.Submit(context.Background(), "  ", Answers{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResultsFor(t *testing.T) {
	list := []pets.Pet{{ID: "a", Species: "dog", Status: pets.StatusAvailable}}
	svc, _ := newTestService(list)

	_, err := svc.ResultsFor(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrNotFound)

	submitted, err := svc.Submit(context.Background(), "user-1", Answers{})
	require.NoError(t, err)

	got, err := svc.ResultsFor(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, submitted, got)
}
