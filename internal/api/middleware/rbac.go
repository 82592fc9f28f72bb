package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route group to the listed roles. Comparison is exact;
// the user-management routes mount it with domain.RoleAdmin.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(string)
			if !slices.Contains(roles, role) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Only admins can manage users",
				})
			}
			return next(c)
		}
	}
}
