package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rugbyanthemzone/anthem-backend/internal/dto"
	"github.com/rugbyanthemzone/anthem-backend/internal/services"
)

type ContentHandler struct {
	videoService *services.VideoService
	sports       *services.SportsClient
}

func NewContentHandler(videoService *services.VideoService, sports *services.SportsClient) *ContentHandler {
	return &ContentHandler{videoService: videoService, sports: sports}
}

func (h *ContentHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.videoService.List()
	if err != nil {
		slog.Error("video listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch videos",
		})
	}
	return c.JSON(videos)
}

func (h *ContentHandler) SyncVideos(c *fiber.Ctx) error {
	count, err := h.videoService.SyncFromYouTube(c.Context())
	if err != nil {
		slog.Error("video sync failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Video sync failed",
		})
	}
	return c.JSON(fiber.Map{"synced": count})
}

func (h *ContentHandler) Matches(c *fiber.Ctx) error {
	fixtures, err := h.sports.MatchesOn(c.Context(), time.Now().UTC())
	if err != nil {
		slog.Error("fixture fetch failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch rugby data",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": fixtures})
}
