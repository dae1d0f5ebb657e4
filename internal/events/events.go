package events

import (
	"context"
	"time"
)

// Routing keys published on the events exchange.
const (
	KeyActivityCreated      = "activity.created"
	KeyMatchRequested       = "match.requested"
	KeyBookingStatusChanged = "booking.status_changed"
)

// ActivityCreated is emitted once the activity and its invitations are committed.
type ActivityCreated struct {
	ActivityID     uint      `json:"activity_id"`
	CreatorID      uint      `json:"creator_id"`
	SportID        uint      `json:"sport_id"`
	ActivityDate   time.Time `json:"activity_date"`
	InvitedUserIDs []uint    `json:"invited_user_ids"`
}

// MatchRequested is emitted when a user asks to join an activity.
type MatchRequested struct {
	MatchID     uint   `json:"match_id"`
	ActivityID  uint   `json:"activity_id"`
	RequesterID uint   `json:"requester_id"`
	Status      string `json:"status"`
}

// BookingStatusChanged is emitted when an admin changes a booking status.
type BookingStatusChanged struct {
	BookingID uint   `json:"booking_id"`
	UserID    uint   `json:"user_id"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// Publisher delivers domain events to interested consumers.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishJSON(context.Context, string, any) error { return nil }

func (Nop) Close() error { return nil }
