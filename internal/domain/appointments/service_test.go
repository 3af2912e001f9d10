package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items []Appointment
}

func (f *fakeRepo) List(context.Context) ([]Appointment, error) { return f.items, nil }

func (f *fakeRepo) GetByID(_ context.Context, id string) (Appointment, error) {
	for _, a := range f.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, a Appointment) error {
	f.items = append(f.items, a)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, a Appointment) error {
	for i := range f.items {
		if f.items[i].ID == a.ID {
			f.items[i] = a
			return nil
		}
	}
	return ErrNotFound
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }
	n := 0
	svc.newID = func() string {
		n++
		return "appt-" + string(rune('0'+n))
	}
	return svc, repo
}

func TestSchedule_OK(t *testing.T) {
	svc, repo := newTestService()

	a, err := svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00", Notes: "primera visita",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, a.Status)
	assert.Nil(t, a.CancelledAt)
	require.Len(t, repo.items, 1)
}

func TestSchedule_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	cases := []ScheduleInput{
		{Date: "2024-06-10", Time: "09:00"},
		{PetID: "pet-1", Time: "09:00"},
		{PetID: "pet-1", Date: "2024-06-10"},
	}
	for _, in := range cases {
		_, err := svc.Schedule(context.Background(), "user-1", in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := svc.Schedule(context.Background(), "", ScheduleInput{PetID: "p", Date: "d", Time: "t"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSchedule_SlotConflictIsGlobal(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	// Mismo slot, otro usuario y otra mascota: el calendario es uno solo.
	_, err = svc.Schedule(context.Background(), "user-2", ScheduleInput{
		PetID: "pet-2", Date: "2024-06-10", Time: "09:00",
	})
	require.ErrorIs(t, err, ErrSlotTaken)

	// Otra fecha u otro horario están libres.
	_, err = svc.Schedule(context.Background(), "user-2", ScheduleInput{
		PetID: "pet-2", Date: "2024-06-11", Time: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.Schedule(context.Background(), "user-2", ScheduleInput{
		PetID: "pet-2", Date: "2024-06-10", Time: "10:00",
	})
	require.NoError(t, err)
}

func TestSlotsFor(t *testing.T) {
	svc, _ := newTestService()

	// Fecha sin visitas: plantilla completa, ascendente.
	slots, err := svc.SlotsFor(context.Background(), "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00",
		"13:00", "14:00", "15:00", "16:00", "17:00",
	}, slots)

	_, err = svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	slots, err = svc.SlotsFor(context.Background(), "2024-06-10")
	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.NotContains(t, slots, "09:00")
	assert.Equal(t, "10:00", slots[0])

	// Otra fecha no se ve afectada.
	slots, err = svc.SlotsFor(context.Background(), "2024-06-11")
	require.NoError(t, err)
	assert.Len(t, slots, 9)
}

func TestCancel_FreesSlot(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	got, err := svc.Cancel(context.Background(), a.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)

	// El slot vuelve a estar disponible y se puede reagendar.
	slots, err := svc.SlotsFor(context.Background(), "2024-06-10")
	require.NoError(t, err)
	assert.Contains(t, slots, "09:00")

	_, err = svc.Schedule(context.Background(), "user-2", ScheduleInput{
		PetID: "pet-2", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)
}

func TestCancel_OwnerOnly(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), a.ID, "user-2")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Cancel(context.Background(), "nope", "user-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListByUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Schedule(context.Background(), "user-1", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)
	_, err = svc.Schedule(context.Background(), "user-2", ScheduleInput{
		PetID: "pet-1", Date: "2024-06-10", Time: "10:00",
	})
	require.NoError(t, err)

	mine, err := svc.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].UserID)
}
