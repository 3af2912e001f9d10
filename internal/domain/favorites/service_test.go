package favorites

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items []Favorite
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]Favorite, error) {
	out := make([]Favorite, 0)
	for _, fav := range f.items {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeRepo) Exists(_ context.Context, userID, petID string) (bool, error) {
	for _, fav := range f.items {
		if fav.UserID == userID && fav.PetID == petID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(_ context.Context, fav Favorite) error {
	f.items = append(f.items, fav)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, userID, petID string) error {
	for i, fav := range f.items {
		if fav.UserID == userID && fav.PetID == petID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "fav-1" }
	return svc, repo
}

func TestAdd_OK(t *testing.T) {
	svc, repo := newTestService()

	f, err := svc.Add(context.Background(), "user-1", "pet-1")
	require.NoError(t, err)
	assert.Equal(t, "pet-1", f.PetID)
	assert.Len(t, repo.items, 1)
}

func TestAdd_Duplicate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Add(context.Background(), "user-1", "pet-1")
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), "user-1", "pet-1")
	require.ErrorIs(t, err, ErrDuplicate)

	// Mismo pet para otro usuario no es duplicado.
	_, err = svc.Add(context.Background(), "user-2", "pet-1")
	require.NoError(t, err)
}

func TestAdd_InvalidInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Add(context.Background(), " ", "pet-1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemove_IsIdempotent(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Add(context.Background(), "user-1", "pet-1")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), "user-1", "pet-1"))
	assert.Empty(t, repo.items)

	// Quitar algo que no está sigue siendo éxito.
	require.NoError(t, svc.Remove(context.Background(), "user-1", "pet-1"))
}

func TestListPetIDs(t *testing.T) {
	svc, _ := newTestService()

	ids, err := svc.ListPetIDs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = svc.Add(context.Background(), "user-1", "pet-1")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "user-1", "pet-2")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "user-2", "pet-3")
	require.NoError(t, err)

	ids, err = svc.ListPetIDs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"pet-1", "pet-2"}, ids)
}
