package identity

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/session"
)

// Handler exposes the registration endpoint.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type registerRequest struct {
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type registerResponse struct {
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Message  string `json:"message"`
	Mode     string `json:"mode"`
}

// Register handles user onboarding. The request is applied to an auth form
// in register mode; on success the form flips to login mode, since
// registration never signs the user in, and the response carries that mode
// so the client lands on the sign-in face.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	form := session.NewForm()
	form.SwitchMode(session.ModeRegister)
	form.Set(session.FieldFullName, req.FullName)
	form.Set(session.FieldPhone, req.Phone)
	form.Set(session.FieldPassword, req.Password)
	form.Set(session.FieldConfirmPassword, req.ConfirmPassword)

	values := form.Values()
	account, err := h.service.Register(c.UserContext(), RegisterInput{
		FullName:        values.FullName,
		Phone:           values.Phone,
		Password:        values.Password,
		ConfirmPassword: values.ConfirmPassword,
	})
	if err != nil {
		form.Fail(err.Error())
		return fiber.NewError(StatusFor(err), form.Error())
	}

	form.RegistrationSucceeded("registration successful, you can now sign in")

	if h.logger != nil {
		h.logger.Info("identity.register completed",
			slog.String("address", account.Address),
			slog.String("phone", account.Phone),
			slog.Int("status", http.StatusCreated),
		)
	}

	return c.Status(http.StatusCreated).JSON(registerResponse{
		Address:  account.Address,
		Phone:    account.Phone,
		FullName: account.FullName,
		Message:  form.Success(),
		Mode:     string(form.Mode()),
	})
}

// StatusFor maps flow errors onto HTTP status codes at the handler boundary.
func StatusFor(err error) int {
	var provErr *ProviderError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPhoneTaken):
		return http.StatusConflict
	case errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.As(err, &provErr):
		return http.StatusBadGateway
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrPasswordMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
