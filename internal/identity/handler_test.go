package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterFlipsToLoginMode(t *testing.T) {
	provider := NewMemoryProvider()
	svc := NewService(provider, provider, "reussir-academy.com")
	handler := NewHandler(svc, nil)

	app := fiber.New()
	app.Post("/identity/register", handler.Register)

	body := `{"full_name":"Fabrice Seke","phone":"654046210","password":"secret1","confirm_password":"secret1"}`
	req := httptest.NewRequest(fiber.MethodPost, "/identity/register", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	var decoded struct {
		Address string `json:"address"`
		Message string `json:"message"`
		Mode    string `json:"mode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if decoded.Mode != "login" {
		t.Errorf("mode = %q, want login: registration must not sign the user in", decoded.Mode)
	}
	if decoded.Address != "654046210@reussir-academy.com" {
		t.Errorf("address = %q", decoded.Address)
	}
	if decoded.Message == "" {
		t.Error("success message missing")
	}
}
