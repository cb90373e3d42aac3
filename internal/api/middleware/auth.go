package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/hr-api/internal/api/metrics"
	"github.com/peopledesk/hr-api/internal/core/domain"
	"github.com/peopledesk/hr-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// authHeaderCandidates is the ordered fallback chain of accepted header
// names. Auth-Token is the legacy spelling some clients still send.
var authHeaderCandidates = []string{"Authorization", "Auth-Token"}

// bearerToken extracts the bearer credential from the first matching header.
// Lookup is case-insensitive (http.Header canonicalizes names). The second
// return is false when no header carries a bearer credential.
func bearerToken(h http.Header) (string, bool) {
	for _, name := range authHeaderCandidates {
		v := h.Get(name)
		if v == "" {
			continue
		}
		parts := strings.SplitN(v, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1], true
		}
		// First non-empty candidate wins even when malformed.
		return "", false
	}
	return "", false
}

// Auth verifies the bearer credential and injects the decoded identity into
// the request context. The claims are never persisted and never logged.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header)
			if !ok {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrServerMisconfigured) {
					metrics.AuthFailuresTotal.WithLabelValues("no_secret").Inc()
					return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Token is not configured"})
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
			}

			c.Set(CtxUserID, claims.ID)
			c.Set(CtxUserEmail, claims.Email)
			c.Set(CtxUserRole, claims.Role)

			return next(c)
		}
	}
}
