package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/users-service/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its absence
// means the route was not wrapped by Auth, which is reported as 401.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// pathParam returns the named path parameter. Echo routes on URL.RawPath when
// the request carries non-canonical escapes such as %40, leaving params
// escaped; otherwise it routes on the already-decoded URL.Path and the value
// must not be decoded a second time.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
