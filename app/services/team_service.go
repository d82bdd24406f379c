package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
)

type teamStore interface {
	All(ctx context.Context) ([]models.TeamMember, error)
	Create(ctx context.Context, m *models.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// TeamService manages bakery staff entries: create, list, delete.
// There is no update operation.
type TeamService struct {
	team teamStore
}

func NewTeamService() *TeamService {
	return &TeamService{team: repositories.NewTeamRepository()}
}

// List returns every team member.
func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	return s.team.All(ctx)
}

// Create persists a new team member. The schedule placeholder always starts
// empty.
func (s *TeamService) Create(ctx context.Context, name, role, email, phone string) (models.TeamMember, error) {
	member := models.TeamMember{
		Name:     name,
		Role:     role,
		Email:    email,
		Phone:    phone,
		Schedule: []models.ScheduleSlot{},
	}
	if err := s.team.Create(ctx, &member); err != nil {
		return models.TeamMember{}, err
	}
	return member, nil
}

// Remove deletes a team member permanently.
func (s *TeamService) Remove(ctx context.Context, id string) error {
	err := s.team.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
