package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookEvent is the dedupe log for Paddle deliveries. The unique index on
// PaddleEventID is the mutual-exclusion point: whichever delivery inserts the
// row first owns processing, later deliveries see a conflict and no-op.
type WebhookEvent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PaddleEventID string         `gorm:"size:255;not null;uniqueIndex" json:"paddle_event_id"`
	EventType     string         `gorm:"size:100;not null" json:"event_type"`
	Processed     bool           `gorm:"not null;default:false" json:"processed"`
	ProcessedAt   *time.Time     `json:"processed_at"`
	Payload       datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
}
