package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/internal/ws"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

// SettingsHandler serves the singular wedding-settings record. POST is
// create-or-update: a user who already has settings gets their record
// rewritten rather than a second row. The read-then-write is safe here
// because each user only ever edits their own record and last write wins.
type SettingsHandler struct {
	store     storage.Storage
	validator *utils.Validator
	hub       Broadcaster
	logger    *zap.Logger
}

func NewSettingsHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:     store,
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	settings, err := h.store.GetWeddingSettings(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// No settings yet is not an error; the form starts blank
			return c.JSON(fiber.Map{})
		}
		h.logger.Error("failed to fetch wedding settings", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error fetching wedding settings"))
	}

	return c.JSON(settings)
}

func (h *SettingsHandler) SaveSettings(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.WeddingSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding settings data"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding settings data"))
	}

	existing, err := h.store.GetWeddingSettings(userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.logger.Error("failed to fetch wedding settings", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error saving wedding settings"))
	}

	if existing != nil {
		updated, err := h.store.UpdateWeddingSettings(existing.ID, req)
		if err != nil {
			h.logger.Error("failed to update wedding settings", zap.Uint("userID", userID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error saving wedding settings"))
		}

		h.hub.Broadcast(ws.Event{Type: "SETTINGS_" + ws.EventUpdated, Payload: updated})

		return c.JSON(updated)
	}

	settings := models.NewWeddingSettings(userID, req)
	if err := h.store.CreateWeddingSettings(settings); err != nil {
		h.logger.Error("failed to create wedding settings", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error saving wedding settings"))
	}

	h.hub.Broadcast(ws.Event{Type: "SETTINGS_" + ws.EventCreated, Payload: settings})

	return c.Status(fiber.StatusCreated).JSON(settings)
}
