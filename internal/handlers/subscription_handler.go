package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rugbyanthemzone/anthem-backend/internal/auth"
	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"github.com/rugbyanthemzone/anthem-backend/internal/services"
)

type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
	paddle              *services.PaddleClient
	cfg                 *config.Config
}

func NewSubscriptionHandler(subscriptionService *services.SubscriptionService, paddle *services.PaddleClient, cfg *config.Config) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		paddle:              paddle,
		cfg:                 cfg,
	}
}

func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.subscriptionService.Status(userID)
	if err != nil {
		slog.Error("subscription status lookup failed", "user_id", userID.String(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch subscription status",
		})
	}

	return c.JSON(resp)
}

func (h *SubscriptionHandler) CreateCheckout(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	email := auth.UserEmail(c)
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "User email missing in token",
		})
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil || req.Tier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Tier required",
		})
	}

	var priceID string
	switch req.Tier {
	case models.TierPremium:
		priceID = h.cfg.PremiumPriceID
	case models.TierSuper:
		priceID = h.cfg.SuperPriceID
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid tier",
		})
	}

	checkoutURL, err := h.paddle.CreateCheckout(c.Context(), priceID, email, userID, req.Tier)
	if err != nil {
		slog.Error("checkout creation failed", "user_id", userID.String(), "tier", req.Tier, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Checkout creation failed",
		})
	}

	return c.JSON(dto.CheckoutResponse{CheckoutURL: checkoutURL})
}
