package ports

import (
	"context"

	"github.com/99minutos/users-service/internal/core/domain"
)

// UserService orchestrates the user account operations exposed over HTTP.
type UserService interface {
	Create(ctx context.Context, username, email, password string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}
