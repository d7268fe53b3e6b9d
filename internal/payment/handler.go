package payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/identity"
)

// Handler exposes the payment confirmation endpoints.
type Handler struct {
	verifier  Verifier
	claims    Repository
	amountXAF int64
}

// NewHandler constructs a payment handler.
func NewHandler(verifier Verifier, claims Repository, amountXAF int64) *Handler {
	return &Handler{verifier: verifier, claims: claims, amountXAF: amountXAF}
}

type methodResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Number       string   `json:"number"`
	Owner        string   `json:"owner"`
	Instructions []string `json:"instructions"`
}

// ListMethods returns the closed payment-method catalog with per-method
// transfer instructions at the configured amount.
func (h *Handler) ListMethods(c *fiber.Ctx) error {
	methods := Methods()
	out := make([]methodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, methodResponse{
			ID:           m.ID,
			Name:         m.Name,
			Number:       m.Number,
			Owner:        m.Owner,
			Instructions: m.Instructions(h.amountXAF),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"amount_xaf": h.amountXAF,
		"methods":    out,
	})
}

type confirmRequest struct {
	MethodID  string `json:"method_id"`
	Reference string `json:"reference"`
}

// Confirm drives a confirmation flow through selection and submission for
// the authenticated caller.
func (h *Handler) Confirm(c *fiber.Ctx) error {
	phone, _ := c.Locals("phone").(string)
	if phone == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing identity")
	}

	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	flow := NewFlow(phone)
	if err := flow.Select(req.MethodID); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	flow.SetReference(req.Reference)

	destination, err := flow.Submit(c.UserContext(), h.verifier)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidReference):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateReference):
			return fiber.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, identity.ErrProfileNotFound):
			return fiber.NewError(http.StatusNotFound, err.Error())
		default:
			return fiber.NewError(http.StatusBadGateway, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"destination": destination,
		"message":     "payment recorded, sign in again to refresh your access",
	})
}

// History lists the caller's recorded claims.
func (h *Handler) History(c *fiber.Ctx) error {
	phone, _ := c.Locals("phone").(string)
	if phone == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing identity")
	}

	claims, err := h.claims.ListByPhone(c.UserContext(), phone)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	type claimResponse struct {
		Reference string `json:"reference"`
		MethodID  string `json:"method_id"`
		AmountXAF int64  `json:"amount_xaf"`
		Status    string `json:"status"`
		CreatedAt string `json:"created_at"`
	}
	out := make([]claimResponse, 0, len(claims))
	for _, claim := range claims {
		out = append(out, claimResponse{
			Reference: claim.Reference,
			MethodID:  claim.MethodID,
			AmountXAF: claim.AmountXAF,
			Status:    claim.Status,
			CreatedAt: claim.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"claims": out})
}
