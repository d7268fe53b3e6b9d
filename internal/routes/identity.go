package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/identity"
)

// RegisterIdentityRoutes wires the public registration endpoint.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler) {
	r.Post("/identity/register", h.Register)
}
