// Package memory provides a map-backed Storage implementation. It is the
// default backend for development and tests and behaves identically to the
// Postgres backend. Ids come from per-entity counters that only ever move
// forward, so an id is never reissued after a delete.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
)

type Storage struct {
	mu sync.Mutex

	users           map[uint]models.User
	weddingSettings map[uint]models.WeddingSettings
	tasks           map[uint]models.Task
	budgetCategories map[uint]models.BudgetCategory
	vendors         map[uint]models.Vendor
	guests          map[uint]models.Guest
	timelineEvents  map[uint]models.TimelineEvent
	helpMessages    map[uint]models.HelpMessage

	userID           uint
	weddingSettingsID uint
	taskID           uint
	budgetCategoryID uint
	vendorID         uint
	guestID          uint
	timelineEventID  uint
	helpMessageID    uint
}

func New() *Storage {
	return &Storage{
		users:            map[uint]models.User{},
		weddingSettings:  map[uint]models.WeddingSettings{},
		tasks:            map[uint]models.Task{},
		budgetCategories: map[uint]models.BudgetCategory{},
		vendors:          map[uint]models.Vendor{},
		guests:           map[uint]models.Guest{},
		timelineEvents:   map[uint]models.TimelineEvent{},
		helpMessages:     map[uint]models.HelpMessage{},
	}
}

// Users

func (s *Storage) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Storage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID++
	user.ID = s.userID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

// Wedding settings

func (s *Storage) GetWeddingSettings(userID uint) (*models.WeddingSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, settings := range s.weddingSettings {
		if settings.UserID == userID {
			return &settings, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Storage) CreateWeddingSettings(settings *models.WeddingSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weddingSettingsID++
	settings.ID = s.weddingSettingsID
	s.weddingSettings[settings.ID] = *settings
	return nil
}

func (s *Storage) UpdateWeddingSettings(id uint, req models.WeddingSettingsRequest) (*models.WeddingSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, ok := s.weddingSettings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&settings)
	s.weddingSettings[id] = settings
	return &settings, nil
}

// Tasks

func (s *Storage) GetTasks(userID uint) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *Storage) GetTask(id uint) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func (s *Storage) CreateTask(task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.taskID++
	task.ID = s.taskID
	task.CreatedAt = time.Now()
	s.tasks[task.ID] = *task
	return nil
}

func (s *Storage) UpdateTask(id uint, req models.UpdateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&t)
	s.tasks[id] = t
	return &t, nil
}

func (s *Storage) DeleteTask(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

// Budget categories

func (s *Storage) GetBudgetCategories(userID uint) ([]models.BudgetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []models.BudgetCategory
	for _, c := range s.budgetCategories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Storage) GetBudgetCategory(id uint) (*models.BudgetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.budgetCategories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *Storage) CreateBudgetCategory(category *models.BudgetCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgetCategoryID++
	category.ID = s.budgetCategoryID
	s.budgetCategories[category.ID] = *category
	return nil
}

func (s *Storage) UpdateBudgetCategory(id uint, req models.UpdateBudgetCategoryRequest) (*models.BudgetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.budgetCategories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&c)
	s.budgetCategories[id] = c
	return &c, nil
}

func (s *Storage) DeleteBudgetCategory(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.budgetCategories[id]; !ok {
		return false, nil
	}
	delete(s.budgetCategories, id)
	return true, nil
}

// Vendors

func (s *Storage) GetVendors(userID uint) ([]models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vendors []models.Vendor
	for _, v := range s.vendors {
		if v.UserID == userID {
			vendors = append(vendors, v)
		}
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

func (s *Storage) GetVendor(id uint) (*models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (s *Storage) CreateVendor(vendor *models.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vendorID++
	vendor.ID = s.vendorID
	s.vendors[vendor.ID] = *vendor
	return nil
}

func (s *Storage) UpdateVendor(id uint, req models.UpdateVendorRequest) (*models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&v)
	s.vendors[id] = v
	return &v, nil
}

func (s *Storage) DeleteVendor(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[id]; !ok {
		return false, nil
	}
	delete(s.vendors, id)
	return true, nil
}

// Guests

func (s *Storage) GetGuests(userID uint) ([]models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var guests []models.Guest
	for _, g := range s.guests {
		if g.UserID == userID {
			guests = append(guests, g)
		}
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].ID < guests[j].ID })
	return guests, nil
}

func (s *Storage) GetGuest(id uint) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guests[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &g, nil
}

func (s *Storage) CreateGuest(guest *models.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guestID++
	guest.ID = s.guestID
	s.guests[guest.ID] = *guest
	return nil
}

func (s *Storage) UpdateGuest(id uint, req models.UpdateGuestRequest) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guests[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&g)
	s.guests[id] = g
	return &g, nil
}

func (s *Storage) DeleteGuest(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.guests[id]; !ok {
		return false, nil
	}
	delete(s.guests, id)
	return true, nil
}

// Timeline events

func (s *Storage) GetTimelineEvents(userID uint) ([]models.TimelineEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []models.TimelineEvent
	for _, e := range s.timelineEvents {
		if e.UserID == userID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (s *Storage) GetTimelineEvent(id uint) (*models.TimelineEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timelineEvents[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (s *Storage) CreateTimelineEvent(event *models.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timelineEventID++
	event.ID = s.timelineEventID
	s.timelineEvents[event.ID] = *event
	return nil
}

func (s *Storage) UpdateTimelineEvent(id uint, req models.UpdateTimelineEventRequest) (*models.TimelineEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timelineEvents[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	req.Apply(&e)
	s.timelineEvents[id] = e
	return &e, nil
}

func (s *Storage) DeleteTimelineEvent(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timelineEvents[id]; !ok {
		return false, nil
	}
	delete(s.timelineEvents, id)
	return true, nil
}

// Help messages

func (s *Storage) CreateHelpMessage(message *models.HelpMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.helpMessageID++
	message.ID = s.helpMessageID
	message.CreatedAt = time.Now()
	s.helpMessages[message.ID] = *message
	return nil
}
