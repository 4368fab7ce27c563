package models

import (
	"time"
)

// HelpMessage is write-only from the application's point of view: it is
// stored for the record and forwarded to the support inbox by email.
type HelpMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type HelpMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func NewHelpMessage(userID uint, req HelpMessageRequest) *HelpMessage {
	return &HelpMessage{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
}
