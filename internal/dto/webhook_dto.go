package dto

// PaddleEvent is the webhook envelope. Paddle's Billing API sends
// event_id/event_type but older payloads (and simulator traffic) use id/type,
// so both spellings are accepted.
type PaddleEvent struct {
	EventID    string          `json:"event_id"`
	ID         string          `json:"id"`
	EventType  string          `json:"event_type"`
	Type       string          `json:"type"`
	OccurredAt string          `json:"occurred_at"`
	Data       PaddleEventData `json:"data"`
}

// EffectiveID returns event_id, falling back to id.
func (e *PaddleEvent) EffectiveID() string {
	if e.EventID != "" {
		return e.EventID
	}
	return e.ID
}

// EffectiveType returns event_type, falling back to type.
func (e *PaddleEvent) EffectiveType() string {
	if e.EventType != "" {
		return e.EventType
	}
	return e.Type
}

// PaddleEventData is a superset of the subscription and transaction event
// payloads; unused fields are left zero-valued per event type.
type PaddleEventData struct {
	ID             string           `json:"id"`
	Status         string           `json:"status"`
	CustomerID     string           `json:"customer_id"`
	SubscriptionID string           `json:"subscription_id"`
	CurrencyCode   string           `json:"currency_code"`
	Items          []PaddleItem     `json:"items"`
	CustomData     PaddleCustomData `json:"custom_data"`
	Details        PaddleDetails    `json:"details"`
}

type PaddleItem struct {
	Price    PaddlePrice `json:"price"`
	Quantity int         `json:"quantity"`
}

type PaddlePrice struct {
	ID string `json:"id"`
}

// PaddleCustomData round-trips the metadata we attach at checkout creation.
type PaddleCustomData struct {
	Tier   string `json:"tier"`
	UserID string `json:"user_id"`
}

type PaddleDetails struct {
	Totals PaddleTotals `json:"totals"`
}

type PaddleTotals struct {
	Total        string `json:"total"`
	CurrencyCode string `json:"currency_code"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}
