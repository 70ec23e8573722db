package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
)

// RequireAdmin rejects callers whose token lacks the admin flag.
// It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
			}
			if !identity.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "access denied").SetInternal(domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
