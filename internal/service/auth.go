package service

import (
	"context"
	"log/slog"

	"github.com/fletnix/fletnix/internal/api"
	"github.com/fletnix/fletnix/internal/domain"
	"github.com/fletnix/fletnix/internal/session"
)

// AuthService wraps the auth endpoints and writes successful results
// through to the session store. Auth actions are user-initiated and
// one-shot; there is no retry.
type AuthService struct {
	client  *api.Client
	session *session.Store
	logger  *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(client *api.Client, store *session.Store, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{client: client, session: store, logger: logger}
}

// Login authenticates with email and password. On success the token and
// user are persisted and the session becomes authenticated.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email, "error", err)
		return err
	}
	if err := s.session.Set(token, user); err != nil {
		return err
	}
	s.logger.Info("logged in", "user", user.Email)
	return nil
}

// Register creates an account. On success the session becomes
// authenticated, same as login.
func (s *AuthService) Register(ctx context.Context, email, password string, age int) error {
	token, user, err := s.client.Register(ctx, email, password, age)
	if err != nil {
		s.logger.Warn("registration failed", "email", email, "error", err)
		return err
	}
	if err := s.session.Set(token, user); err != nil {
		return err
	}
	s.logger.Info("registered", "user", user.Email)
	return nil
}

// RefreshProfile fetches the current user and updates only the cached
// user record. The token is untouched.
func (s *AuthService) RefreshProfile(ctx context.Context) (domain.User, error) {
	user, err := s.client.Profile(ctx, s.session.Token())
	if err != nil {
		return domain.User{}, err
	}
	s.session.SetUser(user)
	return user, nil
}

// Logout clears the session.
func (s *AuthService) Logout() error {
	s.logger.Info("logging out")
	return s.session.Clear()
}
