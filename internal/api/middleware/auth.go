package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// Context keys set on authenticated requests.
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// TokenVerifier checks a bearer token and returns the embedded user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder resolves a user id to the live account record.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth validates the bearer token, resolves the account it names and
// injects both into the request context. Requests with a missing or
// malformed header, an invalid or expired token, or a token for a user that
// no longer exists are all rejected with 401. Token contents are never
// logged.
func Auth(verifier TokenVerifier, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// The account may have vanished after the token was issued.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUserID, user.ID)
			c.Set(ContextUser, user)

			return next(c)
		}
	}
}
