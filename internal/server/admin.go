package server

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminHeader carries the operator shared secret.
const AdminHeader = "X-Admin-Secret"

// AdminOnly gates operator endpoints behind a static shared secret.
// A deliberately weak scheme; hardening is out of scope. An empty
// configured secret disables operator access entirely.
func AdminOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "operator access disabled"})
		}
		got := c.Get(AdminHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}
