package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventHandler reconciles one event type inside the webhook transaction.
type eventHandler func(tx *gorm.DB, event *dto.PaddleEvent) error

type WebhookService struct {
	db       *gorm.DB
	handlers map[string]eventHandler
}

func NewWebhookService(db *gorm.DB, subs *SubscriptionService) *WebhookService {
	s := &WebhookService{db: db}
	s.handlers = map[string]eventHandler{
		"subscription.created":  subs.HandleSubscriptionCreated,
		"subscription.updated":  subs.HandleSubscriptionUpdated,
		"subscription.canceled": subs.HandleSubscriptionCancelled,
		// Paddle classic used the British spelling
		"subscription.cancelled": subs.HandleSubscriptionCancelled,
		"transaction.paid":       subs.HandleTransactionPaid,
		"transaction.completed":  subs.HandleTransactionPaid,
		"transaction.refunded":   subs.HandleTransactionRefunded,
	}
	return s
}

// normalizeEventType folds the underscored spelling (subscription_created)
// into the dotted one Paddle Billing documents.
func normalizeEventType(eventType string) string {
	return strings.ReplaceAll(eventType, "_", ".")
}

// ProcessEvent runs the full webhook side-effect sequence in one
// transaction: dedupe insert, reconciliation, processed mark. A duplicate
// event id is a no-op success. Reconciliation failures are logged and
// swallowed so the provider still gets its ack; only store failures on the
// dedupe/bookkeeping steps surface as errors.
func (s *WebhookService) ProcessEvent(event *dto.PaddleEvent, rawPayload []byte) error {
	eventID := event.EffectiveID()
	eventType := event.EffectiveType()

	return s.db.Transaction(func(tx *gorm.DB) error {
		record := models.WebhookEvent{
			ID:            uuid.New(),
			PaddleEventID: eventID,
			EventType:     eventType,
			Processed:     false,
			Payload:       datatypes.JSON(rawPayload),
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "paddle_event_id"}},
			DoNothing: true,
		}).Create(&record)
		if result.Error != nil {
			return fmt.Errorf("failed to record webhook event: %w", result.Error)
		}

		// Lost the insert race or a true provider retry: already handled.
		if result.RowsAffected == 0 {
			slog.Info("duplicate webhook event ignored", "event_id", eventID, "event_type", eventType)
			return nil
		}

		handler, ok := s.handlers[normalizeEventType(eventType)]
		if !ok {
			slog.Info("unhandled webhook event type", "event_id", eventID, "event_type", eventType)
		} else {
			// Nested transaction = savepoint: a failed handler rolls back its
			// own partial writes but the dedupe row and processed mark still
			// commit, so provider retries do not replay side effects.
			err := tx.Transaction(func(htx *gorm.DB) error {
				return handler(htx, event)
			})
			if err != nil {
				slog.Error("webhook handler failed", "event_id", eventID, "event_type", eventType, "error", err)
			}
		}

		now := time.Now()
		err := tx.Model(&models.WebhookEvent{}).
			Where("paddle_event_id = ?", eventID).
			Updates(map[string]interface{}{"processed": true, "processed_at": &now}).Error
		if err != nil {
			return fmt.Errorf("failed to mark webhook event processed: %w", err)
		}

		return nil
	})
}
