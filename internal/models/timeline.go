package models

// TimelineEvent is a milestone on the planning timeline. It is anchored
// either to a concrete date or to a number of months before the wedding;
// both may be absent, in which case the event has no calendar position.
type TimelineEvent struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"userId" gorm:"not null;index"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description"`
	Date         *Date  `json:"date" gorm:"type:date"`
	MonthsBefore *int   `json:"monthsBefore"`
	Completed    bool   `json:"completed" gorm:"default:false"`
}

type TimelineEventRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Date         *Date  `json:"date"`
	MonthsBefore *int   `json:"monthsBefore" validate:"omitempty,min=0"`
	Completed    bool   `json:"completed"`
}

type UpdateTimelineEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Date         *Date   `json:"date"`
	MonthsBefore *int    `json:"monthsBefore" validate:"omitempty,min=0"`
	Completed    *bool   `json:"completed"`
}

func NewTimelineEvent(userID uint, req TimelineEventRequest) *TimelineEvent {
	return &TimelineEvent{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		MonthsBefore: req.MonthsBefore,
		Completed:    req.Completed,
	}
}

func (r UpdateTimelineEventRequest) Apply(e *TimelineEvent) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Date != nil {
		e.Date = r.Date
	}
	if r.MonthsBefore != nil {
		e.MonthsBefore = r.MonthsBefore
	}
	if r.Completed != nil {
		e.Completed = *r.Completed
	}
}
