package models

type Vendor struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"userId" gorm:"not null;index"`
	Name         string `json:"name" gorm:"not null"`
	Category     string `json:"category" gorm:"not null"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	ContractLink string `json:"contractLink"`
	Notes        string `json:"notes"`
}

type VendorRequest struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Website      string `json:"website"`
	ContractLink string `json:"contractLink"`
	Notes        string `json:"notes"`
}

type UpdateVendorRequest struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	ContactName  *string `json:"contactName"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      *string `json:"website"`
	ContractLink *string `json:"contractLink"`
	Notes        *string `json:"notes"`
}

func NewVendor(userID uint, req VendorRequest) *Vendor {
	return &Vendor{
		UserID:       userID,
		Name:         req.Name,
		Category:     req.Category,
		ContactName:  req.ContactName,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		ContractLink: req.ContractLink,
		Notes:        req.Notes,
	}
}

func (r UpdateVendorRequest) Apply(v *Vendor) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.Category != nil {
		v.Category = *r.Category
	}
	if r.ContactName != nil {
		v.ContactName = *r.ContactName
	}
	if r.Phone != nil {
		v.Phone = *r.Phone
	}
	if r.Email != nil {
		v.Email = *r.Email
	}
	if r.Website != nil {
		v.Website = *r.Website
	}
	if r.ContractLink != nil {
		v.ContractLink = *r.ContractLink
	}
	if r.Notes != nil {
		v.Notes = *r.Notes
	}
}
