package middleware

import (
	"net/http"

	"quicknotes/internal/utils/apierror"
	"quicknotes/internal/utils/session"

	"github.com/labstack/echo/v4"
)

type AuthMiddlewareConfig struct {
	Secret []byte
}

// NewAuthMiddleware gates protected routes behind a bearer session token.
// On success the decoded subject user ID is attached to the request
// context; the user row is NOT re-fetched, existence is assumed until the
// token expires.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := session.FromRequestCtx(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, apierror.NoTokenError)
			}

			claims, err := session.Parse(raw, cfg.Secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidTokenError)
			}

			c.Set("userID", claims.UserID)
			return next(c)
		}
	}
}
