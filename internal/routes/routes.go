package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/reussir-academy/reussir_api/internal/auth"
	"github.com/reussir-academy/reussir_api/internal/config"
	"github.com/reussir-academy/reussir_api/internal/identity"
	"github.com/reussir-academy/reussir_api/internal/middleware"
	"github.com/reussir-academy/reussir_api/internal/notification"
	"github.com/reussir-academy/reussir_api/internal/payment"
	"github.com/reussir-academy/reussir_api/internal/submission"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Without a
// database the identity, claim and submission stores fall back to their
// in-memory implementations, which only dev mode allows.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	// Stores: Postgres in production, in-memory in dev.
	var (
		provider identity.Provider
		profiles identity.ProfileStore
		claims   payment.Repository
		subs     submission.Repository
	)
	if d.DB != nil {
		pg := identity.NewPostgresProvider(d.DB)
		provider, profiles = pg, pg
		claims = payment.NewPostgresRepository(d.DB)
		subs = submission.NewPostgresRepository(d.DB)
	} else {
		mem := identity.NewMemoryProvider()
		provider, profiles = mem, mem
		claims = payment.NewMemoryRepository()
		subs = submission.NewMemoryRepository()
	}

	notifier := notification.NewLoggerNotifier(d.Logger)

	identitySvc := identity.NewService(provider, profiles, d.Cfg.CredentialDomain)
	authSvc := auth.NewService(d.Cfg)
	verifier := payment.NewProfileVerifier(claims, profiles, notifier, d.Cfg.CoursePriceXAF)
	submissionSvc := submission.NewService(subs, notifier)

	identityHandler := identity.NewHandler(identitySvc, d.Logger)
	authHandler := auth.NewHandler(identitySvc, authSvc)
	paymentHandler := payment.NewHandler(verifier, claims, d.Cfg.CoursePriceXAF)
	submissionHandler := submission.NewHandler(submissionSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFrom(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes.
	RegisterIdentityRoutes(api, identityHandler)
	RegisterAuthRoutes(api, authHandler, middleware.LoginRateLimit(d.Cache, d.Cfg.LoginPerMinute))

	// Replay protection for the money-touching writes.
	var idem fiber.Handler
	if d.Cache != nil {
		idem = middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger)
	}

	// Authenticated routes.
	protected := api.Group("", middleware.JWTAuth(d.Cfg))
	protected.Get("/me", func(c *fiber.Ctx) error {
		phone, _ := c.Locals("phone").(string)
		address, _ := c.Locals("address").(string)
		profile, err := identitySvc.Profile(c.UserContext(), phone)
		if err != nil {
			return fiber.NewError(identity.StatusFor(err), err.Error())
		}
		return c.JSON(fiber.Map{
			"address":  address,
			"phone":    phone,
			"has_paid": profile.HasPaid,
		})
	})
	RegisterPaymentRoutes(protected, paymentHandler, idem)

	// Dashboard routes additionally require the paid entitlement.
	dashboard := protected.Group("", middleware.RequirePaid())
	RegisterSubmissionRoutes(dashboard, submissionHandler, idem)

	return nil
}
