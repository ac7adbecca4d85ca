package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "mercadito/internal/log"
)

// RequireAdmin guards mutating admin routes with a bearer token checked
// against a bcrypt hash from configuration. An empty hash disables the
// routes entirely.
func RequireAdmin(tokenHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenHash == "" {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "admin routes disabled"})
			return jsonError(c, fiber.StatusForbidden, "admin access disabled")
		}
		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if token == "" {
			token = c.Get("X-Admin-Token")
		}
		if token == "" {
			return jsonError(c, fiber.StatusUnauthorized, "missing admin token")
		}
		if bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
			applog.Security(c, "access.denied.admin", nil)
			return jsonError(c, fiber.StatusForbidden, "invalid admin token")
		}
		return c.Next()
	}
}
