package model

import "time"

// MatchStatus represents the state of a participant's invitation.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusRejected MatchStatus = "rejected"
)

// Valid reports whether s is a known match status.
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusRejected:
		return true
	}
	return false
}

// Match links a participant to an activity. At most one match exists per
// (activity, user) pair, enforced by a composite unique index.
type Match struct {
	ID         uint        `json:"match_id" gorm:"primaryKey"`
	ActivityID uint        `json:"activity_id" gorm:"not null;uniqueIndex:idx_matches_activity_user"`
	UserID     uint        `json:"user_id" gorm:"not null;uniqueIndex:idx_matches_activity_user;index"`
	Status     MatchStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time   `json:"created_at"`

	// Relations
	Activity Activity `json:"-" gorm:"foreignKey:ActivityID"`
	User     User     `json:"-" gorm:"foreignKey:UserID"`
}
