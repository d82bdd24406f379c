package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vacation states derived from today's date.
const (
	VacationPast     = "past"
	VacationCurrent  = "current"
	VacationUpcoming = "upcoming"
)

// Vacation is a staff absence over an inclusive calendar-date range.
// Immutable once created: the only operations are create and delete.
type Vacation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StartDate string             `bson:"startDate" json:"startDate"` // "YYYY-MM-DD"
	EndDate   string             `bson:"endDate" json:"endDate"`     // "YYYY-MM-DD", ≥ StartDate
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Covers reports whether day (a "YYYY-MM-DD" date) falls inside the
// inclusive [StartDate, EndDate] range. Lexicographic comparison is exact
// for this date format.
func (v Vacation) Covers(day string) bool {
	return v.StartDate <= day && day <= v.EndDate
}

// State classifies the vacation relative to today: past, current or upcoming.
func (v Vacation) State(today string) string {
	switch {
	case v.EndDate < today:
		return VacationPast
	case v.StartDate > today:
		return VacationUpcoming
	default:
		return VacationCurrent
	}
}

// DurationDays returns the inclusive length of the range in days,
// or 0 if either date fails to parse.
func (v Vacation) DurationDays() int {
	start, err := time.Parse("2006-01-02", v.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", v.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
