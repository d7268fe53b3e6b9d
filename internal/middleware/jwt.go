package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/auth"
	"github.com/reussir-academy/reussir_api/internal/config"
)

// JWTAuth validates the bearer access token and stores the caller's identity
// in request locals: "address", "phone" and "paid".
func JWTAuth(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		claims, err := auth.Parse(tokenStr, []byte(cfg.JWTSecret))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals("address", claims.Subject)
		c.Locals("phone", claims.Phone)
		c.Locals("paid", claims.Paid)
		return c.Next()
	}
}

// RequirePaid gates the dashboard on the entitlement snapshot baked into the
// access token at login. It never re-reads the profile; a user who pays
// mid-session signs in again.
func RequirePaid() fiber.Handler {
	return func(c *fiber.Ctx) error {
		paid, _ := c.Locals("paid").(bool)
		if !paid {
			return fiber.NewError(http.StatusPaymentRequired, "course access requires payment")
		}
		return c.Next()
	}
}
