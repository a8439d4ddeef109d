package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identity is the caller identity injected by the Auth middleware.
type identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user id and role must be
// non-empty (presence proves the middleware ran).
func ctxIdentity(c echo.Context) (identity, error) {
	id := identity{}
	id.UserID, _ = c.Get("user_id").(string)
	id.Name, _ = c.Get("name").(string)
	id.Email, _ = c.Get("email").(string)
	id.Role, _ = c.Get("role").(string)

	if id.UserID == "" || id.Role == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
