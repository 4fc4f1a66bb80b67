package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/users-service/internal/api/metrics"
	"github.com/99minutos/users-service/internal/core/domain"
	"github.com/99minutos/users-service/internal/infrastructure/crypto"
	"github.com/99minutos/users-service/internal/infrastructure/token"
)

type failingIssuer struct{}

func (failingIssuer) Issue(int64) (string, time.Time, error) {
	return "", time.Time{}, errors.New("signer unavailable")
}

func newTestAuth(t *testing.T) (*AuthService, *token.Issuer, *metrics.Metrics, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	m := newTestMetrics()

	users := newTestUserService(repo, m)
	if _, err := users.Create(context.Background(), "chris", "chris@email.com", "chris123"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	iss, err := token.NewIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	svc := NewAuthService(repo, crypto.NewBcryptHasher(bcrypt.MinCost), iss, m, zerolog.Nop())
	return svc, iss, m, repo
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, iss, m, _ := newTestAuth(t)

	tok, err := svc.Login(context.Background(), "chris", "chris123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}

	id, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected identity 1, got %d", id)
	}
	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(metrics.LoginSuccess)); got != 1 {
		t.Fatalf("expected success counter 1, got %v", got)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, m, _ := newTestAuth(t)

	if _, err := svc.Login(context.Background(), "chris", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(metrics.LoginInvalidCredentials)); got != 1 {
		t.Fatalf("expected invalid counter 1, got %v", got)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestAuth(t)

	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_BlankFields(t *testing.T) {
	svc, _, _, _ := newTestAuth(t)

	if _, err := svc.Login(context.Background(), "", "chris123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank username, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "chris", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for blank password, got %v", err)
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	svc, _, m, repo := newTestAuth(t)
	repo.err = errors.New("connection reset")

	_, err := svc.Login(context.Background(), "chris", "chris123")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
	if got := testutil.ToFloat64(m.LoginsTotal.WithLabelValues(metrics.LoginError)); got != 1 {
		t.Fatalf("expected error counter 1, got %v", got)
	}
}

func TestAuthService_Login_IssuerError(t *testing.T) {
	_, _, m, repo := newTestAuth(t)
	svc := NewAuthService(repo, crypto.NewBcryptHasher(bcrypt.MinCost), failingIssuer{}, m, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "chris", "chris123"); err == nil {
		t.Fatalf("expected issuer error")
	}
}
