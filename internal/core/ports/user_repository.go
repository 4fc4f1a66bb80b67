package ports

import (
	"context"

	"github.com/99minutos/users-service/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Implementations translate unique violations into domain.ErrUserExists and
// missing rows into domain.ErrUserNotFound.
type UserRepository interface {
	// Init creates the users table (or collection indexes) if missing.
	Init(ctx context.Context) error
	// Create inserts the user, sets user.ID and returns it.
	Create(ctx context.Context, user *domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns every user ordered by id.
	List(ctx context.Context) ([]*domain.User, error)
	DeleteByEmail(ctx context.Context, email string) error
	Ping(ctx context.Context) error
}
