package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewVideoService(db, NewYouTubeClient(cfg))

	now := time.Now()
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, db.Create(&models.Video{
			ID:          uuid.New(),
			YouTubeID:   uuid.NewString()[:11],
			Title:       title,
			PublishedAt: now.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	videos, err := svc.List()
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "newest", videos[0].Title)
	assert.Equal(t, "oldest", videos[2].Title)
}
