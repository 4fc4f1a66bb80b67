package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/users-service/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid user", domain.ErrInvalidUser, http.StatusBadRequest, domain.ErrInvalidUser.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unauthorized", fmt.Errorf("%w: token expired", domain.ErrUnauthorized), http.StatusUnauthorized, "unauthorized"},
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"exists", fmt.Errorf("insert: %w", domain.ErrUserExists), http.StatusConflict, "user already exists"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unexpected", errors.New("db exploded"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHTTPErrorHandler(zerolog.New(&buf))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, resp.Error)
			}

			logged := strings.Contains(buf.String(), "unhandled error")
			if logged != (tc.code == http.StatusInternalServerError) {
				t.Fatalf("unexpected logging (logged=%v): %s", logged, buf.String())
			}
			if strings.Contains(rec.Body.String(), "db exploded") {
				t.Fatalf("internal error leaked to client: %s", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	h := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/users", nil), rec)
	_ = c.String(http.StatusOK, "done")

	h(errors.New("late failure"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %d %s", rec.Code, rec.Body.String())
	}
}
