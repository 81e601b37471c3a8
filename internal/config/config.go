package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Paddle
	PaddleAPIKey        string
	PaddleAPIURL        string
	PaddleWebhookSecret string
	PremiumPriceID      string
	SuperPriceID        string

	// Frontend (checkout redirect targets)
	FrontendURL string

	// Content providers
	APISportsKey     string
	APISportsURL     string
	YouTubeKey       string
	YouTubeChannelID string

	// Email
	SendGridAPIKey string
	FromEmail      string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "anthemzone"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "168h")),

		PaddleAPIKey:        getEnv("PADDLE_API_KEY", ""),
		PaddleAPIURL:        getEnv("PADDLE_API_URL", "https://api.paddle.com"),
		PaddleWebhookSecret: getEnv("PADDLE_WEBHOOK_SECRET", ""),
		PremiumPriceID:      getEnv("PADDLE_PRICE_PREMIUM", ""),
		SuperPriceID:        getEnv("PADDLE_PRICE_SUPER", ""),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		APISportsKey:     getEnv("API_SPORTS_KEY", ""),
		APISportsURL:     getEnv("API_SPORTS_URL", "https://v1.rugby.api-sports.io"),
		YouTubeKey:       getEnv("YOUTUBE_API_KEY", ""),
		YouTubeChannelID: getEnv("YOUTUBE_CHANNEL_ID", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:      getEnv("FROM_EMAIL", "noreply@rugbyanthemzone.com"),

		Port:        getEnv("PORT", "4000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

// DSN prefers DATABASE_URL (managed deployments) and falls back to the
// discrete DB_* variables for local development.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 168 * time.Hour
	}
	return d
}
