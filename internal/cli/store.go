package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/api/handler"
	"github.com/99minutos/users-service/internal/core/ports"
	mongostore "github.com/99minutos/users-service/internal/infrastructure/db/mongo"
	"github.com/99minutos/users-service/internal/infrastructure/db/postgres"
	rediscache "github.com/99minutos/users-service/internal/infrastructure/db/redis"
	"github.com/99minutos/users-service/internal/infrastructure/db/sqlite"
	"github.com/99minutos/users-service/internal/pkg/config"
)

// store is an initialised user repository plus what the caller needs to
// release it and probe its health.
type store struct {
	users  ports.UserRepository
	checks map[string]handler.PingFunc
	closes []func()
}

func (s *store) Close() {
	for i := len(s.closes) - 1; i >= 0; i-- {
		s.closes[i]()
	}
}

// openStore connects the driver selected by cfg, creates its schema and, when
// Redis is configured, fronts it with the read-through cache.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	s := &store{checks: map[string]handler.PingFunc{}}

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		s.closes = append(s.closes, pool.Close)
		s.users = postgres.NewUserRepository(pool)

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		s.closes = append(s.closes, func() { _ = client.Disconnect(context.Background()) })
		s.users = mongostore.NewUserRepository(db)

	default:
		db, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.closes = append(s.closes, func() { _ = db.Close() })
		s.users = sqlite.NewUserRepository(db)
	}

	if err := s.users.Init(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("init %s store: %w", cfg.Store.Driver, err)
	}
	s.checks[cfg.Store.Driver] = s.users.Ping

	if cfg.Redis.Addr != "" {
		client, err := rediscache.Connect(ctx, rediscache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closes = append(s.closes, func() { _ = client.Close() })
		s.users = rediscache.NewUserCache(client, s.users, cfg.Redis.CacheTTL, log)
		s.checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	log.Info().
		Str("driver", cfg.Store.Driver).
		Bool("cache", cfg.Redis.Addr != "").
		Msg("user store ready")

	return s, nil
}
