package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/creds"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) FindByLogin(_ context.Context, login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			u := u
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func newTestAuthService(verifier creds.Verifier, users ...models.User) *AuthService {
	repo := &fakeUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		repo.users[u.Username] = u
	}
	return &AuthService{Repo: repo, Verifier: verifier}
}

func testUser(password string) models.User {
	return models.User{
		ID:       primitive.NewObjectID(),
		Username: "ezinne",
		Email:    "ezinne@shopokoa.com",
		Password: password,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()

	u := testUser("Secret123")
	svc := newTestAuthService(creds.Plain{}, u)

	got, err := svc.Login(context.Background(), "ezinne", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Username, got.Username)
	assert.Equal(t, u.Email, got.Email)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(creds.Plain{}, testUser("Secret123"))

	got, err := svc.Login(context.Background(), "ezinne@shopokoa.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "ezinne", got.Username)
}

func TestAuthService_Login_PasswordMutations(t *testing.T) {
	t.Parallel()

	password := "Secret123"
	svc := newTestAuthService(creds.Plain{}, testUser(password))

	// Every single-character mutation of the password must be rejected.
	for i := 0; i < len(password); i++ {
		mutated := []byte(password)
		mutated[i] ^= 0x01

		res, err := svc.Login(context.Background(), "ezinne", string(mutated))
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(creds.Plain{}, testUser("Secret123"))

	res, err := svc.Login(context.Background(), "nobody", "Secret123")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(creds.Plain{}, testUser("Secret123"))

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "Secret123"},
		{name: "empty password", username: "ezinne", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_BcryptVerifier(t *testing.T) {
	t.Parallel()

	hash, err := creds.HashPassword("Secret123")
	require.NoError(t, err)

	svc := newTestAuthService(creds.Bcrypt{}, testUser(hash))

	got, err := svc.Login(context.Background(), "ezinne", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "ezinne", got.Username)

	res, err := svc.Login(context.Background(), "ezinne", "Secret124")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
