package model

import "time"

// Activity is a user-created sports event.
type Activity struct {
	ID           uint      `json:"activity_id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	SportID      uint      `json:"sport_id" gorm:"not null;index"`
	Description  string    `json:"description" gorm:"type:text"`
	ActivityDate time.Time `json:"activity_date"`
	Location     string    `json:"location" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	User  User  `json:"-" gorm:"foreignKey:UserID"`
	Sport Sport `json:"-" gorm:"foreignKey:SportID"`
}
