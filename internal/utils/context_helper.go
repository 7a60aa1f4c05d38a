package utils

import (
	"quicknotes/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// GetUserIDFromContext reads the identity the auth middleware attached.
func GetUserIDFromContext(c echo.Context) (int64, apierror.ErrorResponse) {
	val := c.Get("userID")
	if val == nil {
		log.Warnf("route %s attempted to read nil user ID from context", c.Request().URL)
		return 0, apierror.NoTokenError
	}

	userID, ok := val.(int64)
	if !ok {
		log.Warnf("expected int64 at 'userID' context key, got %v", val)
		return 0, apierror.InternalServerError
	}
	return userID, nil
}
