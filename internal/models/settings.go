package models

type WeddingSettings struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	UserID          uint   `json:"userId" gorm:"not null;uniqueIndex"`
	Partner1Name    string `json:"partner1Name"`
	Partner2Name    string `json:"partner2Name"`
	WeddingDate     *Date  `json:"weddingDate" gorm:"type:date"`
	VenueName       string `json:"venueName"`
	VenueAddress    string `json:"venueAddress"`
	Theme           string `json:"theme"`
	Notes           string `json:"notes"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// WeddingSettingsRequest is the full settings document. The POST endpoint
// has create-or-update semantics, so there is no separate patch type: the
// form always submits every field.
type WeddingSettingsRequest struct {
	Partner1Name    string `json:"partner1Name"`
	Partner2Name    string `json:"partner2Name"`
	WeddingDate     *Date  `json:"weddingDate"`
	VenueName       string `json:"venueName"`
	VenueAddress    string `json:"venueAddress"`
	Theme           string `json:"theme"`
	Notes           string `json:"notes"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func NewWeddingSettings(userID uint, req WeddingSettingsRequest) *WeddingSettings {
	s := &WeddingSettings{UserID: userID}
	req.Apply(s)
	return s
}

func (r WeddingSettingsRequest) Apply(s *WeddingSettings) {
	s.Partner1Name = r.Partner1Name
	s.Partner2Name = r.Partner2Name
	s.WeddingDate = r.WeddingDate
	s.VenueName = r.VenueName
	s.VenueAddress = r.VenueAddress
	s.Theme = r.Theme
	s.Notes = r.Notes
	s.ProfileImageURL = r.ProfileImageURL
}
