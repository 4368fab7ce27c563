package service

import (
	"math"
	"time"

	"github.com/alexdelx20/WeddingDream/internal/models"
)

// Pure view computations over already-fetched lists. Nothing here touches
// storage or the clock directly; callers pass "now" in.

// DaysRemaining returns whole days from now until the wedding date,
// floored at zero. An unset date and a past date both yield 0; callers
// cannot tell the two apart from the return value alone.
func DaysRemaining(weddingDate *models.Date, now time.Time) int {
	if weddingDate == nil {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(weddingDate.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Percent returns round(100 * part / total), or 0 when total is zero.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// BudgetTotals sums the estimated and actual costs across categories.
// Remaining may be negative when the budget is overspent; it is reported
// as-is, never clamped.
func BudgetTotals(categories []models.BudgetCategory) (estimated, actual, remaining int) {
	for _, c := range categories {
		estimated += c.EstimatedCost
		actual += c.ActualCost
	}
	return estimated, actual, estimated - actual
}

func CountCompletedTasks(tasks []models.Task) int {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return completed
}

func CountGuestsByStatus(guests []models.Guest, status string) int {
	count := 0
	for _, g := range guests {
		if g.RsvpStatus == status {
			count++
		}
	}
	return count
}
