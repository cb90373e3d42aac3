package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mw "github.com/peopledesk/hr-api/internal/api/middleware"
)

// ctxUserID extracts the subject id injected by the Auth middleware. A
// missing id means the middleware did not run; reject rather than trusting
// the route wiring.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(mw.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
