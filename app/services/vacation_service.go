package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
)

// ErrInvalidDateRange is returned when a vacation's end date precedes its
// start date, or either date is not a valid YYYY-MM-DD calendar date.
var ErrInvalidDateRange = errors.New("vacation: invalid date range")

// VacationView decorates a stored vacation with its derived state and
// inclusive duration, for the admin list.
type VacationView struct {
	models.Vacation
	State        string `json:"state"` // past | current | upcoming
	DurationDays int    `json:"durationDays"`
}

type vacationStore interface {
	All(ctx context.Context) ([]models.Vacation, error)
	Create(ctx context.Context, v *models.Vacation) error
	Delete(ctx context.Context, id string) error
}

// VacationService manages staff vacations: create, list, delete. Vacations
// are immutable; editing is delete-and-recreate.
type VacationService struct {
	vacations vacationStore
}

func NewVacationService() *VacationService {
	return &VacationService{vacations: repositories.NewVacationRepository()}
}

// List returns all vacations sorted ascending by start date, each decorated
// with its state relative to today and its duration in days.
func (s *VacationService) List(ctx context.Context) ([]VacationView, error) {
	vacations, err := s.vacations.All(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	views := make([]VacationView, 0, len(vacations))
	for _, v := range vacations {
		views = append(views, VacationView{
			Vacation:     v,
			State:        v.State(today),
			DurationDays: v.DurationDays(),
		})
	}
	return views, nil
}

// Create validates and persists a new vacation. An end date before the
// start date fails validation and performs no write.
func (s *VacationService) Create(ctx context.Context, startDate, endDate, reason string) (models.Vacation, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return models.Vacation{}, ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return models.Vacation{}, ErrInvalidDateRange
	}
	if end.Before(start) {
		return models.Vacation{}, ErrInvalidDateRange
	}

	vacation := models.Vacation{
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}
	if err := s.vacations.Create(ctx, &vacation); err != nil {
		return models.Vacation{}, err
	}
	return vacation, nil
}

// Remove deletes a vacation permanently.
func (s *VacationService) Remove(ctx context.Context, id string) error {
	err := s.vacations.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
