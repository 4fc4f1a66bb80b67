package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/pkg/config"
)

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "nested", "users.db"),
		},
	}

	st, err := openStore(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.Close()

	if _, ok := st.checks[config.DriverSQLite]; !ok {
		t.Fatalf("expected a sqlite readiness check, got %v", st.checks)
	}
	if _, ok := st.checks["redis"]; ok {
		t.Fatalf("redis check registered without REDIS_ADDR")
	}
	for name, ping := range st.checks {
		if err := ping(context.Background()); err != nil {
			t.Fatalf("%s ping: %v", name, err)
		}
	}

	id, err := st.users.Create(context.Background(), domain.NewUser("sam", "sam@email.com", "hash", time.Now()))
	if err != nil || id <= 0 {
		t.Fatalf("create through opened store: id=%d err=%v", id, err)
	}
}

func TestNewRoot_Commands(t *testing.T) {
	root := NewRoot()

	for _, path := range [][]string{{"serve"}, {"user", "add"}, {"user", "list"}} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd.Name() != path[len(path)-1] {
			t.Fatalf("command %v not found: %v", path, err)
		}
	}
}

func TestUserAdd_RequiresFlags(t *testing.T) {
	root := NewRoot()
	root.SetArgs([]string{"user", "add", "--username", "sam"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Fatal("expected missing required flags to fail")
	}
}
