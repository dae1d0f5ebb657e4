package model

import (
	"time"

	"gorm.io/datatypes"
)

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Gender is an optional self-reported attribute.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User represents a registered participant.
type User struct {
	ID           uint            `json:"user_id" gorm:"primaryKey"`
	Username     string          `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string          `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     *string         `json:"full_name" gorm:"size:100"`
	Gender       *Gender         `json:"gender" gorm:"type:varchar(10)"`
	BirthDate    *datatypes.Date `json:"birth_date"`
	Role         Role            `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
