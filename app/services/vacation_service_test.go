package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
)

// fakeVacationStore is an in-memory vacationStore, shared with the
// calendar tests.
type fakeVacationStore struct {
	vacations []models.Vacation
}

func (f *fakeVacationStore) All(ctx context.Context) ([]models.Vacation, error) {
	out := make([]models.Vacation, len(f.vacations))
	copy(out, f.vacations)
	return out, nil
}

func (f *fakeVacationStore) Create(ctx context.Context, v *models.Vacation) error {
	v.ID = primitive.NewObjectID()
	f.vacations = append(f.vacations, *v)
	return nil
}

func (f *fakeVacationStore) Delete(ctx context.Context, id string) error {
	for i, v := range f.vacations {
		if v.ID.Hex() == id {
			f.vacations = append(f.vacations[:i], f.vacations[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestVacationCreate(t *testing.T) {
	store := &fakeVacationStore{}
	svc := &VacationService{vacations: store}

	v, err := svc.Create(context.Background(), "2026-07-01", "2026-07-14", "congés d'été")
	require.NoError(t, err)

	assert.Equal(t, "2026-07-01", v.StartDate)
	assert.Equal(t, "2026-07-14", v.EndDate)
	assert.False(t, v.ID.IsZero())
	assert.Len(t, store.vacations, 1)
}

func TestVacationCreateSingleDay(t *testing.T) {
	svc := &VacationService{vacations: &fakeVacationStore{}}

	v, err := svc.Create(context.Background(), "2026-07-01", "2026-07-01", "")
	require.NoError(t, err)
	assert.Equal(t, 1, v.DurationDays())
}

func TestVacationCreateRejectsReversedRange(t *testing.T) {
	store := &fakeVacationStore{}
	svc := &VacationService{vacations: store}

	_, err := svc.Create(context.Background(), "2026-07-14", "2026-07-01", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, store.vacations, "validation failure must not write")
}

func TestVacationCreateRejectsMalformedDates(t *testing.T) {
	svc := &VacationService{vacations: &fakeVacationStore{}}

	_, err := svc.Create(context.Background(), "01/07/2026", "2026-07-14", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(context.Background(), "2026-07-01", "not-a-date", "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestVacationListDecoratesStateAndDuration(t *testing.T) {
	store := &fakeVacationStore{vacations: []models.Vacation{
		{ID: primitive.NewObjectID(), StartDate: "2000-01-01", EndDate: "2000-01-10"},
		{ID: primitive.NewObjectID(), StartDate: "2000-01-01", EndDate: "2999-12-31"},
		{ID: primitive.NewObjectID(), StartDate: "2999-01-01", EndDate: "2999-01-07"},
	}}
	svc := &VacationService{vacations: store}

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, models.VacationPast, views[0].State)
	assert.Equal(t, 10, views[0].DurationDays)
	assert.Equal(t, models.VacationCurrent, views[1].State)
	assert.Equal(t, models.VacationUpcoming, views[2].State)
	assert.Equal(t, 7, views[2].DurationDays)
}

func TestVacationRemove(t *testing.T) {
	store := &fakeVacationStore{}
	svc := &VacationService{vacations: store}

	v, err := svc.Create(context.Background(), "2026-07-01", "2026-07-14", "")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), v.ID.Hex()))
	assert.ErrorIs(t, svc.Remove(context.Background(), v.ID.Hex()), ErrNotFound)
}
