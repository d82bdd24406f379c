package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycybakery/fournil/app/models"
)

func TestMonthPartitionsOrdersAndVacations(t *testing.T) {
	orders := newFakeOrderStore()
	orders.put(models.Order{
		UserID:       "u1",
		Status:       models.StatusConfirmed,
		CreatedAt:    time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC),
		DeliveryDate: "2024-06-15",
	})
	vacations := &fakeVacationStore{vacations: []models.Vacation{
		{StartDate: "2024-06-10", EndDate: "2024-06-20", Reason: "congés d'été"},
	}}

	svc := &CalendarService{orders: orders, vacations: vacations}

	view, err := svc.Month(context.Background(), 2024, 6, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 6, view.Month)
	require.Len(t, view.Days, 30)

	// Day 3: the order was placed that day.
	day3 := view.Days[2]
	assert.Equal(t, "2024-06-03", day3.Date)
	assert.Len(t, day3.Placed, 1)
	assert.Empty(t, day3.Deliveries)
	assert.True(t, day3.HasEvents)

	// Day 15: delivery due, and the vacation covers it too.
	day15 := view.Days[14]
	assert.Empty(t, day15.Placed)
	assert.Len(t, day15.Deliveries, 1)
	assert.Len(t, day15.Vacations, 1)
	assert.True(t, day15.HasEvents)

	// Vacation boundaries are inclusive on both ends.
	assert.Len(t, view.Days[9].Vacations, 1, "start date is covered")
	assert.Len(t, view.Days[19].Vacations, 1, "end date is covered")
	assert.Empty(t, view.Days[20].Vacations)

	// Day 25: nothing at all.
	day25 := view.Days[24]
	assert.False(t, day25.HasEvents)
	assert.Empty(t, day25.Placed)
	assert.Empty(t, day25.Deliveries)
	assert.Empty(t, day25.Vacations)
}

func TestMonthUsesViewerTimeZone(t *testing.T) {
	// 23:30 UTC on June 3rd is already June 4th in UTC+2.
	orders := newFakeOrderStore()
	orders.put(models.Order{
		UserID:    "u1",
		Status:    models.StatusPending,
		CreatedAt: time.Date(2024, 6, 3, 23, 30, 0, 0, time.UTC),
	})
	svc := &CalendarService{orders: orders, vacations: &fakeVacationStore{}}

	paris := time.FixedZone("UTC+2", 2*60*60)
	view, err := svc.Month(context.Background(), 2024, 6, paris)
	require.NoError(t, err)

	assert.Empty(t, view.Days[2].Placed)
	assert.Len(t, view.Days[3].Placed, 1)
}

func TestMonthLengths(t *testing.T) {
	svc := &CalendarService{orders: newFakeOrderStore(), vacations: &fakeVacationStore{}}

	feb, err := svc.Month(context.Background(), 2024, 2, time.UTC) // leap year
	require.NoError(t, err)
	assert.Len(t, feb.Days, 29)

	jan, err := svc.Month(context.Background(), 2025, 1, time.UTC)
	require.NoError(t, err)
	assert.Len(t, jan.Days, 31)
}

func TestMonthNavigation(t *testing.T) {
	y, m := PrevMonth(2024, 1)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 12, m)

	y, m = NextMonth(2024, 12)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 1, m)

	y, m = PrevMonth(2024, 6)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 5, m)

	y, m = NextMonth(2024, 6)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 7, m)
}
