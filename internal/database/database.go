package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Subscription{},
		&models.WebhookEvent{},
		&models.PaymentEvent{},
		&models.Tier{},
		&models.UserAccessCache{},
		&models.Video{},
		&models.SystemLog{},
	)
}

// SeedTiers upserts the price-id → tier-code catalog from config. Price ids
// change between Paddle sandbox and production, so the catalog row is keyed
// on the tier code's current price id rather than replaced wholesale.
func SeedTiers(db *gorm.DB, cfg *config.Config) error {
	entries := []models.Tier{}
	if cfg.PremiumPriceID != "" {
		entries = append(entries, models.Tier{PaddlePriceID: cfg.PremiumPriceID, TierCode: models.TierPremium})
	}
	if cfg.SuperPriceID != "" {
		entries = append(entries, models.Tier{PaddlePriceID: cfg.SuperPriceID, TierCode: models.TierSuper})
	}
	for _, entry := range entries {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "paddle_price_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"tier_code"}),
		}).Create(&entry).Error
		if err != nil {
			return fmt.Errorf("failed to seed tier %s: %w", entry.TierCode, err)
		}
	}
	return nil
}
