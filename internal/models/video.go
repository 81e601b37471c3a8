package models

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	YouTubeID    string    `gorm:"column:youtube_id;size:50;uniqueIndex" json:"youtube_id"`
	Title        string    `gorm:"size:500;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ThumbnailURL string    `gorm:"size:500" json:"thumbnail_url"`
	PublishedAt  time.Time `gorm:"index" json:"published_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
