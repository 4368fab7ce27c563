package models

// DashboardSummary carries the derived numbers the dashboard cards show.
// Nothing in here is persisted; it is recomputed from the lists on demand.
type DashboardSummary struct {
	DaysRemaining   int `json:"daysRemaining"`
	TotalTasks      int `json:"totalTasks"`
	CompletedTasks  int `json:"completedTasks"`
	TaskPercent     int `json:"taskPercent"`
	TotalGuests     int `json:"totalGuests"`
	ConfirmedGuests int `json:"confirmedGuests"`
	DeclinedGuests  int `json:"declinedGuests"`
	PendingGuests   int `json:"pendingGuests"`
	RsvpPercent     int `json:"rsvpPercent"`
	EstimatedBudget int `json:"estimatedBudget"`
	ActualBudget    int `json:"actualBudget"`
	RemainingBudget int `json:"remainingBudget"`
	BudgetPercent   int `json:"budgetPercent"`
}
