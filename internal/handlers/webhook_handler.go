package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/rugbyanthemzone/anthem-backend/internal/services"
)

type WebhookHandler struct {
	webhookService *services.WebhookService
	cfg            *config.Config
}

func NewWebhookHandler(webhookService *services.WebhookService, cfg *config.Config) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService, cfg: cfg}
}

// HandlePaddle receives Paddle webhook deliveries. Signature and shape
// checks gate any store write; once they pass, the provider always gets
// {received:true} so application-level failures never cause a retry storm.
func (h *WebhookHandler) HandlePaddle(c *fiber.Ctx) error {
	body := c.Body()

	if !services.VerifyPaddleSignature(c.Get("paddle-signature"), body, h.cfg.PaddleWebhookSecret) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook signature",
		})
	}

	var event dto.PaddleEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid Paddle payload",
		})
	}

	if event.EffectiveID() == "" || event.EffectiveType() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid Paddle payload",
		})
	}

	if err := h.webhookService.ProcessEvent(&event, body); err != nil {
		slog.Error("webhook processing failed",
			"event_id", event.EffectiveID(), "event_type", event.EffectiveType(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhook failed",
		})
	}

	return c.JSON(dto.WebhookAck{Received: true})
}
