package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoService struct {
	db      *gorm.DB
	youtube *YouTubeClient
}

func NewVideoService(db *gorm.DB, youtube *YouTubeClient) *VideoService {
	return &VideoService{db: db, youtube: youtube}
}

func (s *VideoService) List() ([]models.Video, error) {
	var videos []models.Video
	err := s.db.Order("published_at DESC").Find(&videos).Error
	return videos, err
}

// SyncFromYouTube pulls the latest channel uploads and upserts them keyed on
// the YouTube video id. Returns the number of rows written.
func (s *VideoService) SyncFromYouTube(ctx context.Context) (int, error) {
	uploads, err := s.youtube.LatestUploads(ctx, 25)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, upload := range uploads {
		video := models.Video{
			ID:           uuid.New(),
			YouTubeID:    upload.YouTubeID,
			Title:        upload.Title,
			Description:  upload.Description,
			ThumbnailURL: upload.ThumbnailURL,
			PublishedAt:  upload.PublishedAt,
		}

		err := s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "youtube_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "thumbnail_url", "published_at", "updated_at",
			}),
		}).Create(&video).Error
		if err != nil {
			return written, fmt.Errorf("video upsert failed for %s: %w", upload.YouTubeID, err)
		}
		written++
	}
	return written, nil
}
