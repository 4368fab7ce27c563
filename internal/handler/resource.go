package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/internal/ws"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

// Broadcaster is the slice of the websocket hub the handlers need. Tests
// substitute a recording fake.
type Broadcaster interface {
	Broadcast(ev ws.Event)
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}

// ResourceHandler serves one owned entity kind. The five CRUD surfaces
// (tasks, budget, vendors, guests, timeline) are instances of this one
// type; only the storage accessors, request types and validation schemas
// differ per entity.
//
// Ownership is enforced here, not in storage: single-record operations
// fetch the record first and answer 404 both when it does not exist and
// when it belongs to another user, so callers cannot probe which ids exist.
// Create stamps the authenticated user's id server-side; whatever userId
// the client puts in the body is ignored.
type ResourceHandler[E any, C any, P any] struct {
	name        string // for client-facing messages, e.g. "task"
	eventPrefix string // for broadcast types, e.g. "TASK"

	list    func(userID uint) ([]E, error)
	get     func(id uint) (*E, error)
	create  func(userID uint, req C) (*E, error)
	update  func(id uint, req P) (*E, error)
	remove  func(id uint) (bool, error)
	ownerOf func(*E) uint

	validator *utils.Validator
	hub       Broadcaster
	logger    *zap.Logger
}

// RegisterRoutes mounts the handler under the given path on an
// authenticated router group.
func (h *ResourceHandler[E, C, P]) RegisterRoutes(r fiber.Router, path string) {
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Get(path+"/:id", h.GetOne)
	r.Patch(path+"/:id", h.Update)
	r.Delete(path+"/:id", h.Delete)
}

func (h *ResourceHandler[E, C, P]) List(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	items, err := h.list(userID)
	if err != nil {
		h.logger.Error("failed to list records", zap.String("resource", h.name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error fetching " + h.name + " records"))
	}

	// Empty list, not null, when the user has nothing yet
	if items == nil {
		items = []E{}
	}

	return c.JSON(items)
}

func (h *ResourceHandler[E, C, P]) GetOne(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " ID"))
	}

	record, err := h.fetchOwned(c, id, userID)
	if record == nil {
		return err
	}

	return c.JSON(record)
}

func (h *ResourceHandler[E, C, P]) Create(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req C
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " data"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " data"))
	}

	record, err := h.create(userID, req)
	if err != nil {
		h.logger.Error("failed to create record", zap.String("resource", h.name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error creating " + h.name))
	}

	h.hub.Broadcast(ws.Event{Type: h.eventPrefix + "_" + ws.EventCreated, Payload: record})

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (h *ResourceHandler[E, C, P]) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " ID"))
	}

	record, errResp := h.fetchOwned(c, id, userID)
	if record == nil {
		return errResp
	}

	var req P
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " data"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " data"))
	}

	updated, err := h.update(id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(h.notFoundMessage()))
		}
		h.logger.Error("failed to update record", zap.String("resource", h.name), zap.Uint("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error updating " + h.name))
	}

	h.hub.Broadcast(ws.Event{Type: h.eventPrefix + "_" + ws.EventUpdated, Payload: updated})

	return c.JSON(updated)
}

func (h *ResourceHandler[E, C, P]) Delete(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid " + h.name + " ID"))
	}

	record, errResp := h.fetchOwned(c, id, userID)
	if record == nil {
		return errResp
	}

	removed, err := h.remove(id)
	if err != nil {
		h.logger.Error("failed to delete record", zap.String("resource", h.name), zap.Uint("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error deleting " + h.name))
	}
	if !removed {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(h.notFoundMessage()))
	}

	h.hub.Broadcast(ws.Event{Type: h.eventPrefix + "_" + ws.EventDeleted, Payload: fiber.Map{"id": id}})

	return c.SendStatus(fiber.StatusNoContent)
}

// fetchOwned loads the record and verifies ownership. On failure it writes
// the response and returns nil; absence and foreign ownership are
// indistinguishable to the caller.
func (h *ResourceHandler[E, C, P]) fetchOwned(c *fiber.Ctx, id, userID uint) (*E, error) {
	record, err := h.get(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(h.notFoundMessage()))
		}
		h.logger.Error("failed to fetch record", zap.String("resource", h.name), zap.Uint("id", id), zap.Error(err))
		return nil, c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error fetching " + h.name))
	}

	if h.ownerOf(record) != userID {
		return nil, c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(h.notFoundMessage()))
	}

	return record, nil
}

func (h *ResourceHandler[E, C, P]) notFoundMessage() string {
	return strings.ToUpper(h.name[:1]) + h.name[1:] + " not found"
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
