package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/creds"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/logging"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
)

type UserRepo interface {
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

type AuthService struct {
	Repo     UserRepo
	Verifier creds.Verifier
}

// Login checks the password against the stored user record. No session or
// token is issued; the endpoint only confirms the credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.FindByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			l.Warn("login_failed", "reason", "unknown user")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.Verifier.Verify(user.Password, password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
