package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/config"
)

// PaddleClient creates hosted-checkout transactions through the Paddle
// Billing API.
type PaddleClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewPaddleClient(cfg *config.Config) *PaddleClient {
	return &PaddleClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type paddleCheckoutItem struct {
	PriceID  string `json:"price_id"`
	Quantity int    `json:"quantity"`
}

type paddleCheckoutPayload struct {
	Items          []paddleCheckoutItem `json:"items"`
	CollectionMode string               `json:"collection_mode"`
	Customer       struct {
		Email string `json:"email"`
	} `json:"customer"`
	CustomData struct {
		Tier   string `json:"tier"`
		UserID string `json:"user_id"`
	} `json:"custom_data"`
	Checkout struct {
		SuccessURL string `json:"success_url"`
		CancelURL  string `json:"cancel_url"`
	} `json:"checkout"`
}

type paddleTransactionResponse struct {
	Data struct {
		ID       string `json:"id"`
		Checkout struct {
			URL string `json:"url"`
		} `json:"checkout"`
	} `json:"data"`
	Error struct {
		Detail string `json:"detail"`
	} `json:"error"`
}

// CreateCheckout builds a subscription transaction for the given price and
// returns the hosted checkout URL. The user id rides along in custom_data so
// the webhook reconciler can resolve the buyer even before the Paddle
// customer id is linked.
func (p *PaddleClient) CreateCheckout(ctx context.Context, priceID, email string, userID uuid.UUID, tier string) (string, error) {
	if p.cfg.PaddleAPIKey == "" {
		return "", errors.New("PADDLE_API_KEY is not configured")
	}

	payload := paddleCheckoutPayload{
		Items:          []paddleCheckoutItem{{PriceID: priceID, Quantity: 1}},
		CollectionMode: "automatic",
	}
	payload.Customer.Email = email
	payload.CustomData.Tier = tier
	payload.CustomData.UserID = userID.String()
	payload.Checkout.SuccessURL = p.cfg.FrontendURL + "/access-granted"
	payload.Checkout.CancelURL = p.cfg.FrontendURL + "/pricing"

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal checkout payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.PaddleAPIURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.PaddleAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("paddle request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read paddle response: %w", err)
	}

	var parsed paddleTransactionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode paddle response: %w", err)
	}

	if resp.StatusCode >= 400 {
		detail := parsed.Error.Detail
		if detail == "" {
			detail = resp.Status
		}
		return "", fmt.Errorf("paddle API error (%d): %s", resp.StatusCode, detail)
	}

	if parsed.Data.Checkout.URL == "" {
		return "", errors.New("paddle response missing checkout URL")
	}

	return parsed.Data.Checkout.URL, nil
}
