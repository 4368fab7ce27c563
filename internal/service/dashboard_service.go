package service

import (
	"errors"
	"time"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage"
)

type DashboardService struct {
	store storage.Storage
}

func NewDashboardService(store storage.Storage) *DashboardService {
	return &DashboardService{store: store}
}

// Summary recomputes the dashboard numbers from the user's current lists.
// Missing wedding settings are fine: the countdown just reads 0.
func (s *DashboardService) Summary(userID uint, now time.Time) (*models.DashboardSummary, error) {
	settings, err := s.store.GetWeddingSettings(userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	tasks, err := s.store.GetTasks(userID)
	if err != nil {
		return nil, err
	}

	guests, err := s.store.GetGuests(userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.store.GetBudgetCategories(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalTasks:      len(tasks),
		CompletedTasks:  CountCompletedTasks(tasks),
		TotalGuests:     len(guests),
		ConfirmedGuests: CountGuestsByStatus(guests, models.RsvpConfirmed),
		DeclinedGuests:  CountGuestsByStatus(guests, models.RsvpDeclined),
		PendingGuests:   CountGuestsByStatus(guests, models.RsvpPending),
	}

	if settings != nil {
		summary.DaysRemaining = DaysRemaining(settings.WeddingDate, now)
	}

	summary.TaskPercent = Percent(summary.CompletedTasks, summary.TotalTasks)
	summary.RsvpPercent = Percent(summary.ConfirmedGuests, summary.TotalGuests)

	estimated, actual, remaining := BudgetTotals(categories)
	summary.EstimatedBudget = estimated
	summary.ActualBudget = actual
	summary.RemainingBudget = remaining
	summary.BudgetPercent = Percent(actual, estimated)

	return summary, nil
}
