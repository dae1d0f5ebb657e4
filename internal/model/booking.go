package model

import "time"

// BookingStatus represents the status of a facility booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation of a facility by a user.
type Booking struct {
	ID          uint          `json:"booking_id" gorm:"primaryKey"`
	UserID      uint          `json:"user_id" gorm:"not null;index"`
	FacilityID  uint          `json:"facility_id" gorm:"not null;index"`
	BookingDate time.Time     `json:"booking_date"`
	Duration    int           `json:"duration"` // minutes
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Facility Facility `json:"-" gorm:"foreignKey:FacilityID"`
}
