package storage

import (
	"errors"

	"github.com/alexdelx20/WeddingDream/internal/models"
)

// ErrNotFound is returned when a record does not exist. Handlers depend on
// being able to tell absence apart from a real storage fault, so both
// backends must return exactly this sentinel for missing rows.
var ErrNotFound = errors.New("record not found")

// Storage is the single persistence boundary of the application. Two
// interchangeable implementations exist: a map-backed in-memory store and a
// Postgres-backed store; the backend is picked at startup via configuration.
//
// The storage layer does not check ownership and does not validate field
// contents. Get* by id returns the record regardless of owner; the caller is
// responsible for comparing UserID against the authenticated user.
type Storage interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error

	// Wedding settings: at most one record per user.
	GetWeddingSettings(userID uint) (*models.WeddingSettings, error)
	CreateWeddingSettings(settings *models.WeddingSettings) error
	UpdateWeddingSettings(id uint, req models.WeddingSettingsRequest) (*models.WeddingSettings, error)

	// Tasks
	GetTasks(userID uint) ([]models.Task, error)
	GetTask(id uint) (*models.Task, error)
	CreateTask(task *models.Task) error
	UpdateTask(id uint, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(id uint) (bool, error)

	// Budget categories
	GetBudgetCategories(userID uint) ([]models.BudgetCategory, error)
	GetBudgetCategory(id uint) (*models.BudgetCategory, error)
	CreateBudgetCategory(category *models.BudgetCategory) error
	UpdateBudgetCategory(id uint, req models.UpdateBudgetCategoryRequest) (*models.BudgetCategory, error)
	DeleteBudgetCategory(id uint) (bool, error)

	// Vendors
	GetVendors(userID uint) ([]models.Vendor, error)
	GetVendor(id uint) (*models.Vendor, error)
	CreateVendor(vendor *models.Vendor) error
	UpdateVendor(id uint, req models.UpdateVendorRequest) (*models.Vendor, error)
	DeleteVendor(id uint) (bool, error)

	// Guests
	GetGuests(userID uint) ([]models.Guest, error)
	GetGuest(id uint) (*models.Guest, error)
	CreateGuest(guest *models.Guest) error
	UpdateGuest(id uint, req models.UpdateGuestRequest) (*models.Guest, error)
	DeleteGuest(id uint) (bool, error)

	// Timeline events
	GetTimelineEvents(userID uint) ([]models.TimelineEvent, error)
	GetTimelineEvent(id uint) (*models.TimelineEvent, error)
	CreateTimelineEvent(event *models.TimelineEvent) error
	UpdateTimelineEvent(id uint, req models.UpdateTimelineEventRequest) (*models.TimelineEvent, error)
	DeleteTimelineEvent(id uint) (bool, error)

	// Help messages are write-only.
	CreateHelpMessage(message *models.HelpMessage) error
}
