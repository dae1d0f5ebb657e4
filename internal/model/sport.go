package model

// Sport is a kind of sport activities and facilities refer to.
type Sport struct {
	ID   uint   `json:"sport_id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}
