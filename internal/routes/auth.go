package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/auth"
)

// RegisterAuthRoutes wires the login and refresh endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, h.Login)
	} else {
		group.Post("/login", h.Login)
	}
	group.Post("/refresh", h.Refresh)
}
