package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rugbyanthemzone/anthem-backend/internal/config"
)

// SportsClient proxies rugby fixture data from api-sports.io.
type SportsClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewSportsClient(cfg *config.Config) *SportsClient {
	return &SportsClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sportsResponse struct {
	Results  int             `json:"results"`
	Response json.RawMessage `json:"response"`
}

// MatchesOn fetches the fixtures for a given day. The upstream response
// array is passed through untouched.
func (s *SportsClient) MatchesOn(ctx context.Context, day time.Time) (json.RawMessage, error) {
	if s.cfg.APISportsKey == "" {
		return nil, errors.New("API_SPORTS_KEY is not configured")
	}

	url := fmt.Sprintf("%s/games?date=%s", s.cfg.APISportsURL, day.Format("2006-01-02"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-apisports-key", s.cfg.APISportsKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api-sports request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api-sports returned status %d", resp.StatusCode)
	}

	var parsed sportsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode api-sports response: %w", err)
	}

	return parsed.Response, nil
}
