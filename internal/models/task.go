package models

import (
	"time"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	DueDate     *Date     `json:"dueDate" gorm:"type:date"`
	Priority    string    `json:"priority" gorm:"default:medium"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	DueDate     *Date  `json:"dueDate"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *Date   `json:"dueDate"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func NewTask(userID uint, req TaskRequest) *Task {
	priority := req.Priority
	if priority == "" {
		priority = TaskPriorityMedium
	}

	return &Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
		Priority:    priority,
	}
}

func (r UpdateTaskRequest) Apply(t *Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.Completed != nil {
		t.Completed = *r.Completed
	}
	if r.DueDate != nil {
		t.DueDate = r.DueDate
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
}
