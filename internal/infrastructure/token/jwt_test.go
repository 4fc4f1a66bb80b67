package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/users-service/internal/core/domain"
)

func newTestIssuer(t *testing.T, secret string, ttl time.Duration) *Issuer {
	t.Helper()
	iss, err := NewIssuer(secret, ttl)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return iss
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	iss := newTestIssuer(t, "secret", time.Minute)

	tok, exp, err := iss.Issue(42)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}
	if d := time.Until(exp); d <= 0 || d > time.Minute {
		t.Fatalf("unexpected expiry %v", exp)
	}

	id, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected identity 42, got %d", id)
	}
}

func TestIssuer_PayloadCarriesIdentity(t *testing.T) {
	iss := newTestIssuer(t, "secret", time.Minute)
	tok, _, err := iss.Issue(7)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["identity"] != float64(7) {
		t.Fatalf("expected identity claim 7, got %v", claims["identity"])
	}
	for _, k := range []string{"exp", "iat", "nbf", "jti"} {
		if _, ok := claims[k]; !ok {
			t.Fatalf("expected %s claim", k)
		}
	}
}

func TestIssuer_Expired(t *testing.T) {
	iss := newTestIssuer(t, "secret", time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tok, _, err := iss.Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	iss.now = time.Now
	if _, err := iss.Verify(tok); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	tok, _, err := newTestIssuer(t, "secret", time.Minute).Issue(1)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := newTestIssuer(t, "other", time.Minute).Verify(tok); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIssuer_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Identity: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := newTestIssuer(t, "secret", time.Minute).Verify(tok); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for HS512, got %v", err)
	}
}

func TestIssuer_RequiresExpiryAndIdentity(t *testing.T) {
	iss := newTestIssuer(t, "secret", time.Minute)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Identity: 1}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := iss.Verify(noExp); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without exp, got %v", err)
	}

	noIdentity, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := iss.Verify(noIdentity); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without identity, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	if _, err := newTestIssuer(t, "secret", time.Minute).Verify("not-a-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestNewIssuer_Defaults(t *testing.T) {
	if _, err := NewIssuer("", time.Minute); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	iss := newTestIssuer(t, "secret", 0)
	if iss.ttl != DefaultTTL {
		t.Fatalf("expected default ttl, got %v", iss.ttl)
	}
}
