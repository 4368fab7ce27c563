package handler

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	objstorage "github.com/alexdelx20/WeddingDream/pkg/storage"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	storage objstorage.ObjectStorage
	logger  *zap.Logger
}

func NewUploadHandler(storage objstorage.ObjectStorage, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// UploadImage accepts a single profile image, stores it in object storage
// and returns the public URL. The client saves the URL onto the wedding
// settings record itself.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	if _, ok := currentUserID(c); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	if file.Size > maxImageSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image must be smaller than 5MB"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Only image files are allowed"))
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid file upload"))
	}
	defer src.Close()

	key := "profile-" + utils.GenerateRandomString(16) + ext
	if err := h.storage.Upload(key, src); err != nil {
		h.logger.Error("failed to upload image", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error uploading file"))
	}

	return c.JSON(fiber.Map{"imageUrl": h.storage.PublicURL(key)})
}
