package models

const (
	RsvpPending   = "pending"
	RsvpConfirmed = "confirmed"
	RsvpDeclined  = "declined"
)

type Guest struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	UserID         uint   `json:"userId" gorm:"not null;index"`
	Name           string `json:"name" gorm:"not null"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RsvpStatus     string `json:"rsvpStatus" gorm:"default:pending"`
	MealPreference string `json:"mealPreference"`
	PlusOne        bool   `json:"plusOne" gorm:"default:false"`
	PlusOneName    string `json:"plusOneName"`
	Notes          string `json:"notes"`
}

type GuestRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	RsvpStatus     string `json:"rsvpStatus" validate:"omitempty,oneof=pending confirmed declined"`
	MealPreference string `json:"mealPreference"`
	PlusOne        bool   `json:"plusOne"`
	PlusOneName    string `json:"plusOneName"`
	Notes          string `json:"notes"`
}

type UpdateGuestRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	RsvpStatus     *string `json:"rsvpStatus" validate:"omitempty,oneof=pending confirmed declined"`
	MealPreference *string `json:"mealPreference"`
	PlusOne        *bool   `json:"plusOne"`
	PlusOneName    *string `json:"plusOneName"`
	Notes          *string `json:"notes"`
}

func NewGuest(userID uint, req GuestRequest) *Guest {
	status := req.RsvpStatus
	if status == "" {
		status = RsvpPending
	}

	return &Guest{
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		RsvpStatus:     status,
		MealPreference: req.MealPreference,
		PlusOne:        req.PlusOne,
		PlusOneName:    req.PlusOneName,
		Notes:          req.Notes,
	}
}

func (r UpdateGuestRequest) Apply(g *Guest) {
	if r.Name != nil {
		g.Name = *r.Name
	}
	if r.Email != nil {
		g.Email = *r.Email
	}
	if r.Phone != nil {
		g.Phone = *r.Phone
	}
	if r.RsvpStatus != nil {
		g.RsvpStatus = *r.RsvpStatus
	}
	if r.MealPreference != nil {
		g.MealPreference = *r.MealPreference
	}
	if r.PlusOne != nil {
		g.PlusOne = *r.PlusOne
	}
	if r.PlusOneName != nil {
		g.PlusOneName = *r.PlusOneName
	}
	if r.Notes != nil {
		g.Notes = *r.Notes
	}
}
