package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/hr-api/internal/api/metrics"
	"github.com/peopledesk/hr-api/internal/core/domain"
)

// RequireAdmin gates a route on the admin role claim. It must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxUserRole).(domain.Role)
			if !role.IsAdmin() {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"message": "You don't have permission to access"})
			}
			return next(c)
		}
	}
}
