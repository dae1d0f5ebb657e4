package model

// Facility is a bookable venue, optionally tied to a sport.
type Facility struct {
	ID          uint    `json:"facility_id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Address     *string `json:"address" gorm:"size:255"`
	ContactInfo *string `json:"contact_info" gorm:"size:100"`
	SportID     *uint   `json:"sport_id" gorm:"index"`

	// Relations
	Sport *Sport `json:"-" gorm:"foreignKey:SportID"`
}
