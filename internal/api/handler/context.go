package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both claims must be present, which
// proves the middleware ran on this route.
func ctxIdentity(c echo.Context) (userID uint64, username string, err error) {
	userID, _ = c.Get("user_id").(uint64)
	username, _ = c.Get("username").(string)
	if userID == 0 || username == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, username, nil
}
