package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/submission"
)

// RegisterSubmissionRoutes wires the dashboard exercise endpoints.
func RegisterSubmissionRoutes(r fiber.Router, h *submission.Handler, idem fiber.Handler) {
	group := r.Group("/submissions")
	group.Get("", h.History)
	if idem != nil {
		group.Post("", idem, h.Create)
	} else {
		group.Post("", h.Create)
	}
}
