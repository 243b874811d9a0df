package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the client's persistent session identifier.
	SessionHeader = "X-Session-ID"

	sessionLocal = "session_id"
)

// SessionMiddleware ensures every request carries a session identifier.
// A missing header gets a fresh uuid, echoed back so the client can keep
// it. The session id partitions anonymous history and preserves pre-login
// continuity once an actor signs in.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Locals(sessionLocal, sessionID)
		c.Set(SessionHeader, sessionID)
		return c.Next()
	}
}

// SessionID returns the request's session identifier.
func SessionID(c *fiber.Ctx) string {
	if v, ok := c.Locals(sessionLocal).(string); ok {
		return v
	}
	return ""
}
