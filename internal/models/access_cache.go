package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAccessCache is a denormalized per-user entitlement row for fast tier
// lookups. It is refreshed in the same reconciliation step that writes the
// subscription, so it is eventually consistent with the subscriptions table.
type UserAccessCache struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TierCode   string    `gorm:"size:20;not null;default:'free'" json:"tier_code"`
	HasPremium bool      `gorm:"not null;default:false" json:"has_premium"`
	HasSuper   bool      `gorm:"not null;default:false" json:"has_super"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (UserAccessCache) TableName() string {
	return "user_access_cache"
}
