package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rugbyanthemzone/anthem-backend/internal/config"
)

// YouTubeClient fetches recent channel uploads from the YouTube Data API.
type YouTubeClient struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
}

func NewYouTubeClient(cfg *config.Config) *YouTubeClient {
	return &YouTubeClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://www.googleapis.com/youtube/v3",
	}
}

type youtubeSearchResponse struct {
	Items []youtubeSearchItem `json:"items"`
}

type youtubeSearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
		Thumbnails  struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

// VideoResult is one upload from the channel feed.
type VideoResult struct {
	YouTubeID    string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
}

// LatestUploads returns the channel's most recent videos, newest first.
func (y *YouTubeClient) LatestUploads(ctx context.Context, maxResults int) ([]VideoResult, error) {
	if y.cfg.YouTubeKey == "" || y.cfg.YouTubeChannelID == "" {
		return nil, errors.New("YOUTUBE_API_KEY and YOUTUBE_CHANNEL_ID must be configured")
	}

	q := url.Values{}
	q.Set("key", y.cfg.YouTubeKey)
	q.Set("channelId", y.cfg.YouTubeChannelID)
	q.Set("part", "snippet")
	q.Set("order", "date")
	q.Set("type", "video")
	q.Set("maxResults", fmt.Sprint(maxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube returned status %d", resp.StatusCode)
	}

	var parsed youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode youtube response: %w", err)
	}

	results := make([]VideoResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		results = append(results, VideoResult{
			YouTubeID:    item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  publishedAt,
		})
	}
	return results, nil
}
