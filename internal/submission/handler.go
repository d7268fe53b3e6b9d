package submission

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the dashboard submission endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a submission handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	DocumentName string `json:"document_name"`
	Instructions string `json:"instructions"`
}

type submissionResponse struct {
	ID           string `json:"id"`
	DocumentName string `json:"document_name"`
	Instructions string `json:"instructions,omitempty"`
	Status       string `json:"status"`
	SubmittedAt  string `json:"submitted_at"`
}

// Create records an exercise hand-in for the authenticated caller.
func (h *Handler) Create(c *fiber.Ctx) error {
	phone, _ := c.Locals("phone").(string)
	if phone == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing identity")
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.service.Create(c.UserContext(), CreateInput{
		Phone:        phone,
		DocumentName: req.DocumentName,
		Instructions: req.Instructions,
	})
	if err != nil {
		if errors.Is(err, ErrDocumentRequired) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(toResponse(sub))
}

// History returns the caller's submissions, newest first.
func (h *Handler) History(c *fiber.Ctx) error {
	phone, _ := c.Locals("phone").(string)
	if phone == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing identity")
	}

	subs, err := h.service.History(c.UserContext(), phone)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	out := make([]submissionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toResponse(sub))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"submissions": out})
}

func toResponse(sub Submission) submissionResponse {
	return submissionResponse{
		ID:           sub.ID,
		DocumentName: sub.DocumentName,
		Instructions: sub.Instructions,
		Status:       sub.Status,
		SubmittedAt:  sub.SubmittedAt.Format(time.RFC3339),
	}
}
