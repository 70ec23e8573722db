package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vidly/rental-system/internal/core/domain"
)

// HeaderAuthToken carries the token issued at registration and login.
const HeaderAuthToken = "x-auth-token"

const identityKey = "identity"

// TokenVerifier decodes a signed token into the caller's identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth verifies the request token and injects the identity into context.
// The token is read from x-auth-token, or from an "Authorization: Bearer" header.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := tokenFromRequest(c.Request())
			if err != nil {
				return err
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok && identity.UserID != ""
}

func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(HeaderAuthToken)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
