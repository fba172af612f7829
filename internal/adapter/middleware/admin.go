package middleware

import (
	"context"
	"strings"

	"pet-adoption-backend/internal/usecase/identity"

	"github.com/labstack/echo/v4"
)

const (
	HeaderAdminUsername = "X-Admin-Username"

	ctxKeyAdmin = "admin_username"
)

type AdminResolver interface {
	ResolveAdmin(ctx context.Context, username string) (*identity.AdminDTO, error)
}

// RequireAdmin re-verifies the caller-supplied admin identity on every request.
// Failures are returned to echo's error handler (401 via apperr.ErrUnauthorized).
func RequireAdmin(r AdminResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name := strings.TrimSpace(c.Request().Header.Get(HeaderAdminUsername))
			adm, err := r.ResolveAdmin(c.Request().Context(), name)
			if err != nil {
				return err
			}
			c.Set(ctxKeyAdmin, adm.Username)
			return next(c)
		}
	}
}

// AdminFrom returns the admin resolved by RequireAdmin, or "".
func AdminFrom(c echo.Context) string {
	s, _ := c.Get(ctxKeyAdmin).(string)
	return s
}
