package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/pkg/email"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

type HelpHandler struct {
	store        storage.Storage
	emailService *email.EmailService
	validator    *utils.Validator
	logger       *zap.Logger
}

func NewHelpHandler(store storage.Storage, emailService *email.EmailService, v *utils.Validator, logger *zap.Logger) *HelpHandler {
	return &HelpHandler{
		store:        store,
		emailService: emailService,
		validator:    v,
		logger:       logger,
	}
}

// SubmitMessage stores the help-center message and forwards it to the
// support inbox. A failed email does not fail the request: the message is
// already on record, and the email service logs its own errors.
func (h *HelpHandler) SubmitMessage(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.HelpMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid help message data"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid help message data"))
	}

	message := models.NewHelpMessage(userID, req)
	if err := h.store.CreateHelpMessage(message); err != nil {
		h.logger.Error("failed to store help message", zap.Uint("userID", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error sending help message"))
	}

	if h.emailService != nil {
		go h.emailService.SendHelpMessage(message)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
