package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/repositories"
	"github.com/joycybakery/fournil/pkg/auth"
)

// Auth sentinel errors.
var (
	ErrBadCredentials = errors.New("auth: invalid email or password")
	ErrEmailTaken     = errors.New("auth: email already registered")
)

type userStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// AuthService backs register/login/me. All session lifecycle beyond the
// token itself is delegated here.
type AuthService struct {
	users userStore
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates a customer account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, "", ErrBadCredentials
		}
		return models.User{}, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrBadCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Me resolves the current principal's account.
func (s *AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}
