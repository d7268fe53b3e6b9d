package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/reussir-academy/reussir_api/internal/logging"
)

func setupIdempotentApp(t *testing.T) (*fiber.App, *atomic.Int32, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	app.Use(Idempotency(cache, time.Minute, logging.Discard()))

	var handled atomic.Int32
	app.Post("/payment/confirm", func(c *fiber.Ctx) error {
		handled.Add(1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"destination": "dashboard"})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}
	return app, &handled, cleanup
}

func postConfirm(t *testing.T, app *fiber.App, key string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/payment/confirm", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(idempotencyKeyHeader, key)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	app, _, cleanup := setupIdempotentApp(t)
	defer cleanup()

	status, _ := postConfirm(t, app, "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected %d, got %d", fiber.StatusBadRequest, status)
	}
}

func TestIdempotencyReplaysWithoutRerunningHandler(t *testing.T) {
	app, handled, cleanup := setupIdempotentApp(t)
	defer cleanup()

	status1, body1 := postConfirm(t, app, "tap-1")
	if status1 != fiber.StatusCreated {
		t.Fatalf("first request status = %d", status1)
	}

	status2, body2 := postConfirm(t, app, "tap-1")
	if status2 != fiber.StatusCreated {
		t.Fatalf("replayed status = %d", status2)
	}
	if body1 != body2 {
		t.Fatalf("replayed body %q differs from original %q", body2, body1)
	}
	if handled.Load() != 1 {
		t.Fatalf("handler ran %d times, want 1", handled.Load())
	}
}

func TestIdempotencyDistinctKeysRunIndependently(t *testing.T) {
	app, handled, cleanup := setupIdempotentApp(t)
	defer cleanup()

	postConfirm(t, app, "tap-1")
	postConfirm(t, app, "tap-2")
	if handled.Load() != 2 {
		t.Fatalf("handler ran %d times, want 2", handled.Load())
	}
}
