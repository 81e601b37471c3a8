package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentEvent struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PaddleTransactionID string    `gorm:"size:255;not null;uniqueIndex" json:"paddle_transaction_id"`
	PaddleCustomerID    string    `gorm:"size:255;index" json:"-"`
	SubscriptionID      string    `gorm:"size:255;index" json:"subscription_id"`
	AmountTotal         string    `gorm:"size:50" json:"amount_total"`
	Currency            string    `gorm:"size:10" json:"currency"`
	OccurredAt          time.Time `json:"occurred_at"`
	CreatedAt           time.Time `json:"created_at"`
}
