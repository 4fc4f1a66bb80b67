package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/users-service/internal/core/domain"
)

type stubVerifier struct {
	token string
	id    int64
}

func (s stubVerifier) Verify(token string) (int64, error) {
	if token != s.token {
		return 0, domain.ErrUnauthorized
	}
	return s.id, nil
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, bool, any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/user/sam@email.com", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	var userID any
	mw := Auth(stubVerifier{token: "good", id: 42})
	handler := mw(func(c echo.Context) error {
		called = true
		userID = c.Get(UserIDKey)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("expected *echo.HTTPError, got %T", err)
		}
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, userID
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	rec, called, userID := runAuth(t, "Bearer good")

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != int64(42) {
		t.Fatalf("expected user_id 42 in context, got %v", userID)
	}
}

func TestAuthMiddleware_LegacyJWTScheme(t *testing.T) {
	rec, called, _ := runAuth(t, "JWT good")

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected JWT scheme to be accepted, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called, _ := runAuth(t, "")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, header := range []string{"Token good", "Bearer", "Bearer ", "good"} {
		rec, called, _ := runAuth(t, header)
		if called {
			t.Fatalf("%q: should not reach next", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, called, _ := runAuth(t, "Bearer not-a-token")

	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
