// Package postgres provides the GORM-backed Storage implementation.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// translate maps the driver's missing-row error onto the storage sentinel so
// callers never see a gorm error type.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}

// Users

func (s *Storage) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Storage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// Wedding settings

func (s *Storage) GetWeddingSettings(userID uint) (*models.WeddingSettings, error) {
	var settings models.WeddingSettings
	if err := s.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (s *Storage) CreateWeddingSettings(settings *models.WeddingSettings) error {
	return s.db.Create(settings).Error
}

func (s *Storage) UpdateWeddingSettings(id uint, req models.WeddingSettingsRequest) (*models.WeddingSettings, error) {
	var settings models.WeddingSettings
	if err := s.db.First(&settings, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&settings)
	if err := s.db.Save(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Tasks

func (s *Storage) GetTasks(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Where("user_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (s *Storage) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *Storage) CreateTask(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s *Storage) UpdateTask(id uint, req models.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&task)
	if err := s.db.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Storage) DeleteTask(id uint) (bool, error) {
	result := s.db.Delete(&models.Task{}, id)
	return result.RowsAffected > 0, result.Error
}

// Budget categories

func (s *Storage) GetBudgetCategories(userID uint) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	err := s.db.Where("user_id = ?", userID).Find(&categories).Error
	return categories, err
}

func (s *Storage) GetBudgetCategory(id uint) (*models.BudgetCategory, error) {
	var category models.BudgetCategory
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Storage) CreateBudgetCategory(category *models.BudgetCategory) error {
	return s.db.Create(category).Error
}

func (s *Storage) UpdateBudgetCategory(id uint, req models.UpdateBudgetCategoryRequest) (*models.BudgetCategory, error) {
	var category models.BudgetCategory
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&category)
	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Storage) DeleteBudgetCategory(id uint) (bool, error) {
	result := s.db.Delete(&models.BudgetCategory{}, id)
	return result.RowsAffected > 0, result.Error
}

// Vendors

func (s *Storage) GetVendors(userID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := s.db.Where("user_id = ?", userID).Find(&vendors).Error
	return vendors, err
}

func (s *Storage) GetVendor(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, id).Error; err != nil {
		return nil, translate(err)
	}
	return &vendor, nil
}

func (s *Storage) CreateVendor(vendor *models.Vendor) error {
	return s.db.Create(vendor).Error
}

func (s *Storage) UpdateVendor(id uint, req models.UpdateVendorRequest) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&vendor)
	if err := s.db.Save(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *Storage) DeleteVendor(id uint) (bool, error) {
	result := s.db.Delete(&models.Vendor{}, id)
	return result.RowsAffected > 0, result.Error
}

// Guests

func (s *Storage) GetGuests(userID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.db.Where("user_id = ?", userID).Find(&guests).Error
	return guests, err
}

func (s *Storage) GetGuest(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &guest, nil
}

func (s *Storage) CreateGuest(guest *models.Guest) error {
	return s.db.Create(guest).Error
}

func (s *Storage) UpdateGuest(id uint, req models.UpdateGuestRequest) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&guest)
	if err := s.db.Save(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (s *Storage) DeleteGuest(id uint) (bool, error) {
	result := s.db.Delete(&models.Guest{}, id)
	return result.RowsAffected > 0, result.Error
}

// Timeline events

func (s *Storage) GetTimelineEvents(userID uint) ([]models.TimelineEvent, error) {
	var events []models.TimelineEvent
	err := s.db.Where("user_id = ?", userID).Find(&events).Error
	return events, err
}

func (s *Storage) GetTimelineEvent(id uint) (*models.TimelineEvent, error) {
	var event models.TimelineEvent
	if err := s.db.First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (s *Storage) CreateTimelineEvent(event *models.TimelineEvent) error {
	return s.db.Create(event).Error
}

func (s *Storage) UpdateTimelineEvent(id uint, req models.UpdateTimelineEventRequest) (*models.TimelineEvent, error) {
	var event models.TimelineEvent
	if err := s.db.First(&event, id).Error; err != nil {
		return nil, translate(err)
	}
	req.Apply(&event)
	if err := s.db.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *Storage) DeleteTimelineEvent(id uint) (bool, error) {
	result := s.db.Delete(&models.TimelineEvent{}, id)
	return result.RowsAffected > 0, result.Error
}

// Help messages

func (s *Storage) CreateHelpMessage(message *models.HelpMessage) error {
	return s.db.Create(message).Error
}
