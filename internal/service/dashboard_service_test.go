package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/storage/memory"
)

func TestDashboardSummary(t *testing.T) {
	store := memory.New()

	weddingDate := models.NewDate(2026, 9, 20)
	require.NoError(t, store.CreateWeddingSettings(&models.WeddingSettings{
		UserID:      1,
		WeddingDate: &weddingDate,
	}))

	require.NoError(t, store.CreateTask(&models.Task{UserID: 1, Title: "done", Completed: true}))
	require.NoError(t, store.CreateTask(&models.Task{UserID: 1, Title: "open"}))

	require.NoError(t, store.CreateGuest(&models.Guest{UserID: 1, Name: "a", RsvpStatus: models.RsvpConfirmed}))
	require.NoError(t, store.CreateGuest(&models.Guest{UserID: 1, Name: "b", RsvpStatus: models.RsvpPending}))

	require.NoError(t, store.CreateBudgetCategory(&models.BudgetCategory{UserID: 1, Name: "Venue", EstimatedCost: 1000, ActualCost: 800}))
	require.NoError(t, store.CreateBudgetCategory(&models.BudgetCategory{UserID: 1, Name: "Music", EstimatedCost: 200, ActualCost: 250}))

	// Another user's data must not leak into the summary
	require.NoError(t, store.CreateTask(&models.Task{UserID: 2, Title: "other", Completed: true}))

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	summary, err := NewDashboardService(store).Summary(1, now)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.DaysRemaining)
	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.Equal(t, 50, summary.TaskPercent)
	assert.Equal(t, 2, summary.TotalGuests)
	assert.Equal(t, 1, summary.ConfirmedGuests)
	assert.Equal(t, 50, summary.RsvpPercent)
	assert.Equal(t, 1200, summary.EstimatedBudget)
	assert.Equal(t, 1050, summary.ActualBudget)
	assert.Equal(t, 150, summary.RemainingBudget)
	assert.Equal(t, 88, summary.BudgetPercent)
}

func TestDashboardSummaryWithoutSettings(t *testing.T) {
	store := memory.New()

	summary, err := NewDashboardService(store).Summary(1, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.DaysRemaining)
	assert.Equal(t, 0, summary.TaskPercent)
	assert.Equal(t, 0, summary.RsvpPercent)
	assert.Equal(t, 0, summary.BudgetPercent)
}
