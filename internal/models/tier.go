package models

import "time"

// Tier levels. Everything outside the catalog resolves to TierFree.
const (
	TierFree    = "free"
	TierPremium = "premium"
	TierSuper   = "super"
)

// Tier maps a Paddle price id to an internal tier code.
type Tier struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PaddlePriceID string    `gorm:"size:255;not null;uniqueIndex" json:"paddle_price_id"`
	TierCode      string    `gorm:"size:20;not null" json:"tier_code"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasPremium reports whether a tier code grants premium access.
func HasPremium(tierCode string) bool {
	return tierCode == TierPremium || tierCode == TierSuper
}

// HasSuper reports whether a tier code grants super access.
func HasSuper(tierCode string) bool {
	return tierCode == TierSuper
}
