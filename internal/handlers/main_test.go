package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/rugbyanthemzone/anthem-backend/internal/database"
	"github.com/rugbyanthemzone/anthem-backend/internal/handlers"
	"github.com/rugbyanthemzone/anthem-backend/internal/routes"
	"github.com/rugbyanthemzone/anthem-backend/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTExpiry:           168 * time.Hour,
		PaddleWebhookSecret: "whsec-test",
		PremiumPriceID:      "pri_premium",
		SuperPriceID:        "pri_super",
		FrontendURL:         "http://localhost:3000",
	}
}

// newTestApp wires the full route table against an in-memory SQLite database
// and returns both so tests can drive requests and inspect state.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := testConfig()
	require.NoError(t, database.SeedTiers(db, cfg))

	notifier := services.NewNotifier(cfg)
	authService := services.NewAuthService(db, cfg, notifier)
	subscriptionService := services.NewSubscriptionService(db, notifier)
	webhookService := services.NewWebhookService(db, subscriptionService)
	paddleClient := services.NewPaddleClient(cfg)
	sportsClient := services.NewSportsClient(cfg)
	videoService := services.NewVideoService(db, services.NewYouTubeClient(cfg))

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(db),
		handlers.NewWebhookHandler(webhookService, cfg),
		handlers.NewSubscriptionHandler(subscriptionService, paddleClient, cfg),
		handlers.NewContentHandler(videoService, sportsClient),
	)
	return app, db, cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, app *fiber.App, path string, headers map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	parsed := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return parsed
}
