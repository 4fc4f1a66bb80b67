package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/core/ports"
)

const (
	defaultCacheTTL = 10 * time.Minute

	// A deleted email holds a tombstone for tombstoneTTL so that a lookup
	// racing the delete cannot write the old row back.
	tombstone    = "-"
	tombstoneTTL = time.Minute
)

// UserCache is a read-through cache in front of a UserRepository. Only
// lookups by email are cached; deletes replace the entry with a tombstone.
// Key format: user:email:<email>
type UserCache struct {
	ports.UserRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewUserCache wraps next with a Redis cache. Cache errors are logged and the
// call falls through to next.
func NewUserCache(client *redis.Client, next ports.UserRepository, ttl time.Duration, log zerolog.Logger) *UserCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &UserCache{UserRepository: next, client: client, ttl: ttl, log: log}
}

type cachedUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

func (c *UserCache) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	key := c.key(email)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil && string(raw) == tombstone:
		return c.UserRepository.FindByEmail(ctx, email)
	case err == nil:
		var cu cachedUser
		if jsonErr := json.Unmarshal(raw, &cu); jsonErr == nil {
			return cu.toDomain(), nil
		}
		c.log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
		c.evict(ctx, email)
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("user cache read failed")
	}

	user, err := c.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(fromDomain(user)); err == nil {
		if err := c.client.SetNX(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("user cache write failed")
		}
	}
	return user, nil
}

// Create inserts through to the store and drops any stale entry for the email.
func (c *UserCache) Create(ctx context.Context, user *domain.User) (int64, error) {
	id, err := c.UserRepository.Create(ctx, user)
	if err != nil {
		return 0, err
	}
	c.evict(ctx, user.Email)
	return id, nil
}

func (c *UserCache) DeleteByEmail(ctx context.Context, email string) error {
	if err := c.UserRepository.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(email), tombstone, tombstoneTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", c.key(email)).Msg("user cache tombstone failed")
	}
	return nil
}

func (c *UserCache) evict(ctx context.Context, email string) {
	if err := c.client.Del(ctx, c.key(email)).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", c.key(email)).Msg("user cache evict failed")
	}
}

// Ping checks both the cache and the underlying store.
func (c *UserCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return c.UserRepository.Ping(ctx)
}

func (c *UserCache) key(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		IsActive:     u.IsActive,
	}
}

func (cu cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           cu.ID,
		Username:     cu.Username,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		CreatedAt:    cu.CreatedAt.UTC(),
		IsActive:     cu.IsActive,
	}
}
