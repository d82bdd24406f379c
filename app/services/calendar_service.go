package services

import (
	"context"
	"time"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
	"github.com/joycybakery/fournil/pkg/collection"
)

// CalendarDay classifies one displayed day of the admin calendar.
type CalendarDay struct {
	Date       string            `json:"date"` // "YYYY-MM-DD"
	Day        int               `json:"day"`
	Placed     []models.Order    `json:"placed"`     // orders created on this day
	Deliveries []models.Order    `json:"deliveries"` // orders due for delivery on this day
	Vacations  []models.Vacation `json:"vacations"`  // vacations covering this day
	HasEvents  bool              `json:"hasEvents"`
}

// MonthView is the calendar for one month.
type MonthView struct {
	Year  int           `json:"year"`
	Month int           `json:"month"` // 1–12
	Days  []CalendarDay `json:"days"`
}

type calendarOrderStore interface {
	All(ctx context.Context) ([]models.Order, error)
}

type calendarVacationStore interface {
	All(ctx context.Context) ([]models.Vacation, error)
}

// CalendarService derives the per-day overlap view. The store has no
// date-range queries; both collections are fetched in full and partitioned
// here, in the viewer's time zone.
type CalendarService struct {
	orders    calendarOrderStore
	vacations calendarVacationStore
}

func NewCalendarService() *CalendarService {
	return &CalendarService{
		orders:    repositories.NewOrderRepository(),
		vacations: repositories.NewVacationRepository(),
	}
}

// Month builds the overlap view for (year, month) in loc. Creation
// timestamps are truncated to a calendar date in loc — not UTC-normalized,
// so the off-by-one risk near midnight is inherited from the original
// behaviour, not fixed here.
func (s *CalendarService) Month(ctx context.Context, year, month int, loc *time.Location) (MonthView, error) {
	if loc == nil {
		loc = time.Local
	}

	orders, err := s.orders.All(ctx)
	if err != nil {
		return MonthView{}, err
	}
	vacations, err := s.vacations.All(ctx)
	if err != nil {
		return MonthView{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := MonthView{Year: year, Month: month, Days: make([]CalendarDay, 0, daysInMonth)}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, loc).Format("2006-01-02")

		placed := collection.Filter(orders, func(o models.Order) bool {
			return o.CreatedAt.In(loc).Format("2006-01-02") == date
		})
		deliveries := collection.Filter(orders, func(o models.Order) bool {
			return o.DeliveryDate == date
		})
		covering := collection.Filter(vacations, func(v models.Vacation) bool {
			return v.Covers(date)
		})

		view.Days = append(view.Days, CalendarDay{
			Date:       date,
			Day:        d,
			Placed:     placed,
			Deliveries: deliveries,
			Vacations:  covering,
			HasEvents:  len(placed) > 0 || len(deliveries) > 0 || len(covering) > 0,
		})
	}
	return view, nil
}

// ─── Month navigation ─────────────────────────────────────────────────────────

// PrevMonth steps back one month, rolling the year at the Jan→Dec boundary.
func PrevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth steps forward one month, rolling the year at the Dec→Jan boundary.
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// Today returns the current year and month in loc.
func Today(loc *time.Location) (int, int) {
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	return now.Year(), int(now.Month())
}
