package handler

import (
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

// One ResourceHandler instance per owned entity kind. The constructors
// below bind the generic handler to an entity's storage accessors and
// request types; everything else (auth, ownership, broadcast, status
// codes) is shared.

func NewTaskHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *ResourceHandler[models.Task, models.TaskRequest, models.UpdateTaskRequest] {
	return &ResourceHandler[models.Task, models.TaskRequest, models.UpdateTaskRequest]{
		name:        "task",
		eventPrefix: "TASK",
		list:        store.GetTasks,
		get:         store.GetTask,
		create: func(userID uint, req models.TaskRequest) (*models.Task, error) {
			task := models.NewTask(userID, req)
			if err := store.CreateTask(task); err != nil {
				return nil, err
			}
			return task, nil
		},
		update:    store.UpdateTask,
		remove:    store.DeleteTask,
		ownerOf:   func(t *models.Task) uint { return t.UserID },
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}

func NewBudgetHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *ResourceHandler[models.BudgetCategory, models.BudgetCategoryRequest, models.UpdateBudgetCategoryRequest] {
	return &ResourceHandler[models.BudgetCategory, models.BudgetCategoryRequest, models.UpdateBudgetCategoryRequest]{
		name:        "budget category",
		eventPrefix: "BUDGET",
		list:        store.GetBudgetCategories,
		get:         store.GetBudgetCategory,
		create: func(userID uint, req models.BudgetCategoryRequest) (*models.BudgetCategory, error) {
			category := models.NewBudgetCategory(userID, req)
			if err := store.CreateBudgetCategory(category); err != nil {
				return nil, err
			}
			return category, nil
		},
		update:    store.UpdateBudgetCategory,
		remove:    store.DeleteBudgetCategory,
		ownerOf:   func(c *models.BudgetCategory) uint { return c.UserID },
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}

func NewVendorHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *ResourceHandler[models.Vendor, models.VendorRequest, models.UpdateVendorRequest] {
	return &ResourceHandler[models.Vendor, models.VendorRequest, models.UpdateVendorRequest]{
		name:        "vendor",
		eventPrefix: "VENDOR",
		list:        store.GetVendors,
		get:         store.GetVendor,
		create: func(userID uint, req models.VendorRequest) (*models.Vendor, error) {
			vendor := models.NewVendor(userID, req)
			if err := store.CreateVendor(vendor); err != nil {
				return nil, err
			}
			return vendor, nil
		},
		update:    store.UpdateVendor,
		remove:    store.DeleteVendor,
		ownerOf:   func(v *models.Vendor) uint { return v.UserID },
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}

func NewGuestHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *ResourceHandler[models.Guest, models.GuestRequest, models.UpdateGuestRequest] {
	return &ResourceHandler[models.Guest, models.GuestRequest, models.UpdateGuestRequest]{
		name:        "guest",
		eventPrefix: "GUEST",
		list:        store.GetGuests,
		get:         store.GetGuest,
		create: func(userID uint, req models.GuestRequest) (*models.Guest, error) {
			guest := models.NewGuest(userID, req)
			if err := store.CreateGuest(guest); err != nil {
				return nil, err
			}
			return guest, nil
		},
		update:    store.UpdateGuest,
		remove:    store.DeleteGuest,
		ownerOf:   func(g *models.Guest) uint { return g.UserID },
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}

func NewTimelineHandler(store storage.Storage, v *utils.Validator, hub Broadcaster, logger *zap.Logger) *ResourceHandler[models.TimelineEvent, models.TimelineEventRequest, models.UpdateTimelineEventRequest] {
	return &ResourceHandler[models.TimelineEvent, models.TimelineEventRequest, models.UpdateTimelineEventRequest]{
		name:        "timeline event",
		eventPrefix: "TIMELINE",
		list:        store.GetTimelineEvents,
		get:         store.GetTimelineEvent,
		create: func(userID uint, req models.TimelineEventRequest) (*models.TimelineEvent, error) {
			event := models.NewTimelineEvent(userID, req)
			if err := store.CreateTimelineEvent(event); err != nil {
				return nil, err
			}
			return event, nil
		},
		update:    store.UpdateTimelineEvent,
		remove:    store.DeleteTimelineEvent,
		ownerOf:   func(e *models.TimelineEvent) uint { return e.UserID },
		validator: v,
		hub:       hub,
		logger:    logger,
	}
}
