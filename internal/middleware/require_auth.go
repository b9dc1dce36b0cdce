package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jayakrishnatangudu/Mini-Social-Platform/internal/authctx"
)

// RequireAuth rejects requests whose bearer token did not resolve to a valid
// user ObjectID. Mounted on every write route; feed reads stay public.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.UserIDFrom(c); !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}
