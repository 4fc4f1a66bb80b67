package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/api/metrics"
	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/core/ports"
)

type userService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewUserService returns a UserService implementation.
func NewUserService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	m *metrics.Metrics,
	log zerolog.Logger,
) ports.UserService {
	return &userService{
		users:   users,
		hasher:  hasher,
		metrics: m,
		log:     log,
		now:     time.Now,
	}
}

// Create hashes the password and persists a new active user. Duplicate
// usernames or emails surface as domain.ErrUserExists.
func (s *userService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidUser
	}
	if utf8.RuneCountInString(username) > domain.MaxUsernameLen {
		return nil, fmt.Errorf("%w: username exceeds %d characters", domain.ErrInvalidUser, domain.MaxUsernameLen)
	}
	if utf8.RuneCountInString(email) > domain.MaxEmailLen {
		return nil, fmt.Errorf("%w: email exceeds %d characters", domain.ErrInvalidUser, domain.MaxEmailLen)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := domain.NewUser(username, email, hash, s.now())
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.metrics.CreateConflictsTotal.Inc()
			s.log.Info().Str("username", username).Msg("user create rejected: duplicate")
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.UsersCreatedTotal.Inc()
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteByEmail removes the user with email, or returns
// domain.ErrUserNotFound when there is none.
func (s *userService) DeleteByEmail(ctx context.Context, email string) error {
	if err := s.users.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("delete user: %w", err)
	}

	s.metrics.UsersDeletedTotal.Inc()
	s.log.Info().Str("email", email).Msg("user deleted")
	return nil
}
