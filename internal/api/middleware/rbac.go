package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

// RequireRole gates a route on the role claim decoded by Auth. The claim is
// parsed through the closed domain.Role enumeration, so an unknown or absent
// role never passes — there is no string comparison against raw input.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("role").(string)
			role, ok := domain.ParseRole(raw)
			if !ok || role != required {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": string(required) + " role required for this operation",
				})
			}
			return next(c)
		}
	}
}
