package models

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	PaddleSubscriptionID string     `gorm:"size:255;not null;uniqueIndex" json:"paddle_subscription_id"`
	PaddleCustomerID     string     `gorm:"size:255;index" json:"-"`
	PriceID              string     `gorm:"size:255" json:"price_id"`
	TierCode             string     `gorm:"size:20;not null" json:"tier_code"`
	Status               string     `gorm:"size:50;not null;default:'inactive'" json:"status"`
	CancelledAt          *time.Time `json:"cancelled_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	User                 User       `gorm:"foreignKey:UserID" json:"-"`
}
