package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexdelx20/WeddingDream/internal/models"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)

	future := models.NewDate(2026, 6, 20)
	assert.Equal(t, 10, DaysRemaining(&future, now))

	today := models.NewDate(2026, 6, 10)
	assert.Equal(t, 0, DaysRemaining(&today, now))

	// A date in the past floors at zero rather than going negative
	past := models.NewDate(2026, 6, 9)
	assert.Equal(t, 0, DaysRemaining(&past, now))

	assert.Equal(t, 0, DaysRemaining(nil, now))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(3, 3))
}

func TestBudgetTotals(t *testing.T) {
	categories := []models.BudgetCategory{
		{Name: "Venue", EstimatedCost: 1000, ActualCost: 800},
		{Name: "Flowers", EstimatedCost: 500, ActualCost: 0},
		{Name: "Music", EstimatedCost: 200, ActualCost: 250},
	}

	estimated, actual, remaining := BudgetTotals(categories)
	assert.Equal(t, 1700, estimated)
	assert.Equal(t, 1050, actual)
	assert.Equal(t, 650, remaining)
	assert.Equal(t, 62, Percent(actual, estimated))
}

func TestBudgetTotalsCanGoNegative(t *testing.T) {
	categories := []models.BudgetCategory{
		{Name: "Venue", EstimatedCost: 100, ActualCost: 300},
	}

	_, _, remaining := BudgetTotals(categories)
	assert.Equal(t, -200, remaining)
}

func TestCountCompletedTasks(t *testing.T) {
	tasks := []models.Task{
		{Title: "a", Completed: true},
		{Title: "b"},
		{Title: "c", Completed: true},
	}

	assert.Equal(t, 2, CountCompletedTasks(tasks))
	assert.Equal(t, 0, CountCompletedTasks(nil))
}

func TestCountGuestsByStatus(t *testing.T) {
	guests := []models.Guest{
		{Name: "a", RsvpStatus: models.RsvpConfirmed},
		{Name: "b", RsvpStatus: models.RsvpPending},
		{Name: "c", RsvpStatus: models.RsvpConfirmed},
		{Name: "d", RsvpStatus: models.RsvpDeclined},
	}

	assert.Equal(t, 2, CountGuestsByStatus(guests, models.RsvpConfirmed))
	assert.Equal(t, 1, CountGuestsByStatus(guests, models.RsvpPending))
	assert.Equal(t, 1, CountGuestsByStatus(guests, models.RsvpDeclined))
}
