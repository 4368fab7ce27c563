package models

type BudgetCategory struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        uint   `json:"userId" gorm:"not null;index"`
	Name          string `json:"name" gorm:"not null"`
	EstimatedCost int    `json:"estimatedCost" gorm:"default:0"`
	ActualCost    int    `json:"actualCost" gorm:"default:0"`
	Notes         string `json:"notes"`
}

type BudgetCategoryRequest struct {
	Name          string `json:"name" validate:"required"`
	EstimatedCost int    `json:"estimatedCost" validate:"min=0"`
	ActualCost    int    `json:"actualCost" validate:"min=0"`
	Notes         string `json:"notes"`
}

type UpdateBudgetCategoryRequest struct {
	Name          *string `json:"name"`
	EstimatedCost *int    `json:"estimatedCost" validate:"omitempty,min=0"`
	ActualCost    *int    `json:"actualCost" validate:"omitempty,min=0"`
	Notes         *string `json:"notes"`
}

func NewBudgetCategory(userID uint, req BudgetCategoryRequest) *BudgetCategory {
	return &BudgetCategory{
		UserID:        userID,
		Name:          req.Name,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
		Notes:         req.Notes,
	}
}

func (r UpdateBudgetCategoryRequest) Apply(c *BudgetCategory) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.EstimatedCost != nil {
		c.EstimatedCost = *r.EstimatedCost
	}
	if r.ActualCost != nil {
		c.ActualCost = *r.ActualCost
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}
