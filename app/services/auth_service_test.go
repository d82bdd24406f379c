package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/pkg/auth"
)

type fakeUserStore struct {
	users map[string]models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, mongo.ErrNoDocuments
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = *u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := &AuthService{users: newFakeUserStore()}

	user, token, err := svc.Register(context.Background(), "Marie", "marie@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)

	_, _, err = svc.Login(context.Background(), "marie@example.com", "secret123")
	assert.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &AuthService{users: newFakeUserStore()}

	_, _, err := svc.Register(context.Background(), "Marie", "marie@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "Autre", "marie@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := &AuthService{users: newFakeUserStore()}

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, _, regErr := svc.Register(context.Background(), "Marie", "marie@example.com", "secret123")
	require.NoError(t, regErr)

	_, _, err = svc.Login(context.Background(), "marie@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestMe(t *testing.T) {
	svc := &AuthService{users: newFakeUserStore()}

	user, _, err := svc.Register(context.Background(), "Marie", "marie@example.com", "secret123")
	require.NoError(t, err)

	got, err := svc.Me(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "marie@example.com", got.Email)

	_, err = svc.Me(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
