package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionService reconciles Paddle subscription/transaction events into
// the subscriptions table and the per-user access cache.
type SubscriptionService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewSubscriptionService(db *gorm.DB, notifier *Notifier) *SubscriptionService {
	return &SubscriptionService{db: db, notifier: notifier}
}

// normalizeStatus maps Paddle's active-equivalent statuses to "active" and
// passes everything else through verbatim.
func normalizeStatus(status string) string {
	switch status {
	case "active", "trialing":
		return "active"
	}
	return status
}

func (s *SubscriptionService) HandleSubscriptionCreated(tx *gorm.DB, event *dto.PaddleEvent) error {
	data := &event.Data

	if len(data.Items) == 0 || data.Items[0].Price.ID == "" {
		return errors.New("subscription.created event carries no price id")
	}
	priceID := data.Items[0].Price.ID

	var tier models.Tier
	if err := tx.Where("paddle_price_id = ?", priceID).First(&tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("unknown price id %q, skipping subscription %s", priceID, data.ID)
		}
		return fmt.Errorf("tier lookup failed: %w", err)
	}

	user, err := s.resolveUser(tx, data)
	if err != nil {
		return fmt.Errorf("could not resolve user for subscription %s: %w", data.ID, err)
	}

	sub := models.Subscription{
		ID:                   uuid.New(),
		UserID:               user.ID,
		PaddleSubscriptionID: data.ID,
		PaddleCustomerID:     data.CustomerID,
		PriceID:              priceID,
		TierCode:             tier.TierCode,
		Status:               normalizeStatus(data.Status),
	}

	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "paddle_subscription_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "paddle_customer_id", "price_id", "tier_code", "status", "updated_at",
		}),
	}).Create(&sub).Error
	if err != nil {
		return fmt.Errorf("subscription upsert failed: %w", err)
	}

	if err := s.refreshAccessCache(tx, user.ID, tier.TierCode); err != nil {
		return err
	}

	go s.notifier.SendSubscriptionActivated(user.Email, tier.TierCode)

	slog.Info("subscription created",
		"subscription_id", data.ID, "user_id", user.ID.String(), "tier", tier.TierCode)
	return nil
}

// resolveUser finds the subscription owner by Paddle customer id, falling
// back to the user_id we embedded in checkout custom_data and backfilling
// the customer id onto that user. The fallback trusts checkout-supplied
// metadata; see DESIGN.md.
func (s *SubscriptionService) resolveUser(tx *gorm.DB, data *dto.PaddleEventData) (*models.User, error) {
	var user models.User

	if data.CustomerID != "" {
		err := tx.Where("paddle_customer_id = ?", data.CustomerID).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if data.CustomData.UserID == "" {
		return nil, errors.New("no customer id match and no custom_data user id")
	}

	userID, err := uuid.Parse(data.CustomData.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid custom_data user id: %w", err)
	}

	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	slog.Warn("resolved webhook user via custom_data fallback",
		"user_id", userID.String(), "customer_id", data.CustomerID)

	if data.CustomerID != "" {
		if err := tx.Model(&user).Update("paddle_customer_id", data.CustomerID).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

func (s *SubscriptionService) HandleSubscriptionUpdated(tx *gorm.DB, event *dto.PaddleEvent) error {
	data := &event.Data

	// Unlike created, updated writes the provider status through verbatim.
	result := tx.Model(&models.Subscription{}).
		Where("paddle_subscription_id = ?", data.ID).
		Update("status", data.Status)
	if result.Error != nil {
		return fmt.Errorf("subscription update failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		slog.Info("subscription.updated for unknown subscription, ignoring", "subscription_id", data.ID)
	}
	return nil
}

func (s *SubscriptionService) HandleSubscriptionCancelled(tx *gorm.DB, event *dto.PaddleEvent) error {
	data := &event.Data
	now := time.Now()

	var sub models.Subscription
	if err := tx.Where("paddle_subscription_id = ?", data.ID).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Info("cancellation for unknown subscription, ignoring", "subscription_id", data.ID)
			return nil
		}
		return err
	}

	err := tx.Model(&sub).Updates(map[string]interface{}{
		"status":       "cancelled",
		"cancelled_at": &now,
	}).Error
	if err != nil {
		return fmt.Errorf("subscription cancel failed: %w", err)
	}

	if err := s.refreshAccessCache(tx, sub.UserID, models.TierFree); err != nil {
		return err
	}

	slog.Info("subscription cancelled", "subscription_id", data.ID, "user_id", sub.UserID.String())
	return nil
}

func (s *SubscriptionService) HandleTransactionPaid(tx *gorm.DB, event *dto.PaddleEvent) error {
	data := &event.Data

	occurredAt := time.Now()
	if event.OccurredAt != "" {
		if ts, err := time.Parse(time.RFC3339, event.OccurredAt); err == nil {
			occurredAt = ts
		}
	}

	payment := models.PaymentEvent{
		ID:                  uuid.New(),
		PaddleTransactionID: data.ID,
		PaddleCustomerID:    data.CustomerID,
		SubscriptionID:      data.SubscriptionID,
		AmountTotal:         data.Details.Totals.Total,
		Currency:            data.Details.Totals.CurrencyCode,
		OccurredAt:          occurredAt,
	}

	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "paddle_transaction_id"}},
		DoNothing: true,
	}).Create(&payment)
	if result.Error != nil {
		return fmt.Errorf("payment record insert failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		slog.Info("duplicate transaction ignored", "transaction_id", data.ID)
	}
	return nil
}

func (s *SubscriptionService) HandleTransactionRefunded(tx *gorm.DB, event *dto.PaddleEvent) error {
	// Refund handling is not wired to any state change yet.
	slog.Info("transaction refunded", "transaction_id", event.Data.ID)
	return nil
}

// refreshAccessCache writes the denormalized entitlement row and the
// users.tier column together, in the same reconciliation step.
func (s *SubscriptionService) refreshAccessCache(tx *gorm.DB, userID uuid.UUID, tierCode string) error {
	cache := models.UserAccessCache{
		UserID:     userID,
		TierCode:   tierCode,
		HasPremium: models.HasPremium(tierCode),
		HasSuper:   models.HasSuper(tierCode),
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tier_code", "has_premium", "has_super", "updated_at",
		}),
	}).Create(&cache).Error
	if err != nil {
		return fmt.Errorf("access cache refresh failed: %w", err)
	}

	err = tx.Model(&models.User{}).Where("id = ?", userID).Update("tier", tierCode).Error
	if err != nil {
		return fmt.Errorf("user tier update failed: %w", err)
	}
	return nil
}

// Status serves the tier lookup for the status endpoint: access cache first,
// then the users.tier column with flags recomputed, defaulting to free.
func (s *SubscriptionService) Status(userID uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	var cache models.UserAccessCache
	err := s.db.Where("user_id = ?", userID).First(&cache).Error
	if err == nil {
		return &dto.SubscriptionStatusResponse{
			Tier:       cache.TierCode,
			HasPremium: cache.HasPremium,
			HasSuper:   cache.HasSuper,
			Source:     "cache",
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	tier := models.TierFree
	if user.Tier != nil && *user.Tier != "" {
		tier = *user.Tier
	}

	return &dto.SubscriptionStatusResponse{
		Tier:       tier,
		HasPremium: models.HasPremium(tier),
		HasSuper:   models.HasSuper(tier),
		Source:     "users",
	}, nil
}
