package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/identity"
)

// Handler exposes the login and refresh endpoints.
type Handler struct {
	ids *identity.Service
	svc *Service
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(ids *identity.Service, svc *Service) *Handler {
	return &Handler{ids: ids, svc: svc}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Destination  string `json:"destination"`
}

// Login runs the authentication flow and returns tokens plus the routing
// decision the client should follow.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	result, err := h.ids.Authenticate(c.UserContext(), identity.Credentials{Phone: req.Phone, Password: req.Password})
	if err != nil {
		return fiber.NewError(identity.StatusFor(err), err.Error())
	}

	pair, err := h.svc.Login(result)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		FullName:     result.Account.FullName,
		Phone:        result.Account.Phone,
		Destination:  string(result.Destination),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh issues a new access token from a valid refresh token.
func (h *Handler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	token, expiresIn, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"access_token": token, "expires_in": expiresIn})
}
