package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/payment"
)

// RegisterPaymentRoutes wires the payment confirmation endpoints. The
// confirm endpoint gets replay protection when a cache is available.
func RegisterPaymentRoutes(r fiber.Router, h *payment.Handler, idem fiber.Handler) {
	group := r.Group("/payment")
	group.Get("/methods", h.ListMethods)
	group.Get("/claims", h.History)
	if idem != nil {
		group.Post("/confirm", idem, h.Confirm)
	} else {
		group.Post("/confirm", h.Confirm)
	}
}
