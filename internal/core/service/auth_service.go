package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/api/metrics"
	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/core/ports"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	tokens  ports.TokenIssuer
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, metrics: m, log: log}
}

// Login verifies username/password and returns a signed token for the user.
// An unknown username and a wrong password are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.metrics.LoginsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
			s.log.Info().Str("username", username).Msg("login failed: unknown user")
			return "", domain.ErrInvalidCredentials
		}
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginError).Inc()
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		s.log.Info().Str("username", username).Msg("login failed: bad password")
		return "", domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.metrics.LoginsTotal.WithLabelValues(metrics.LoginError).Inc()
		return "", fmt.Errorf("login: %w", err)
	}

	s.metrics.LoginsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	return token, nil
}
