package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/reussir-academy/reussir_api/internal/auth"
	"github.com/reussir-academy/reussir_api/internal/config"
	"github.com/reussir-academy/reussir_api/internal/identity"
)

func tokenFor(t *testing.T, cfg config.Config, paid bool) string {
	t.Helper()
	profile := identity.Profile{Phone: "658508638", HasPaid: paid}
	pair, err := auth.NewService(cfg).Login(identity.AuthResult{
		Account:     identity.Account{Address: "658508638@reussir-academy.com", Phone: "658508638"},
		Profile:     profile,
		Destination: identity.DecideDestination(profile),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return pair.AccessToken
}

func protectedApp(cfg config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/dashboard", JWTAuth(cfg), RequirePaid(), func(c *fiber.Ctx) error {
		phone, _ := c.Locals("phone").(string)
		return c.JSON(fiber.Map{"phone": phone})
	})
	return app
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	cfg := config.Config{JWTSecret: "s1", RefreshSecret: "s2", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}
	app := protectedApp(cfg)

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("no token: status %d", resp.StatusCode)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", resp.StatusCode)
	}
}

func TestRequirePaidGatesOnTokenSnapshot(t *testing.T) {
	cfg := config.Config{JWTSecret: "s1", RefreshSecret: "s2", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}
	app := protectedApp(cfg)

	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, cfg, false))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusPaymentRequired {
		t.Fatalf("unpaid token: status %d, want %d", resp.StatusCode, fiber.StatusPaymentRequired)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenFor(t, cfg, true))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("paid token: status %d", resp.StatusCode)
	}
}
