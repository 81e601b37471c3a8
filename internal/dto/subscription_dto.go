package dto

type SubscriptionStatusResponse struct {
	Tier       string `json:"tier"`
	HasPremium bool   `json:"hasPremium"`
	HasSuper   bool   `json:"hasSuper"`
	Source     string `json:"source"`
}

type CheckoutRequest struct {
	Tier string `json:"tier"`
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}
