package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/rugbyanthemzone/anthem-backend/internal/handlers"
	"github.com/rugbyanthemzone/anthem-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	contentHandler *handlers.ContentHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Rugby Anthem Zone backend is running")
	})

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimiter, authHandler.Register)
	api.Post("/login", authLimiter, authHandler.Login)

	// Paddle webhook: HMAC-signed, no JWT
	api.Post("/webhooks/paddle", webhookHandler.HandlePaddle)

	// Protected routes (JWT required)
	jwtProtected := middleware.JWTProtected(cfg)
	userCtx := middleware.UserContext()
	api.Get("/subscription/status", jwtProtected, userCtx, subscriptionHandler.Status)
	api.Post("/payments/create-checkout", jwtProtected, userCtx, subscriptionHandler.CreateCheckout)
	api.Post("/videos/sync", jwtProtected, userCtx, contentHandler.SyncVideos)

	// Public content
	api.Get("/videos", contentHandler.ListVideos)
	api.Get("/matches", contentHandler.Matches)
}
