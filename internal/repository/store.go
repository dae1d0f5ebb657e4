package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories and owns the transaction boundary.
type Store interface {
	Users() UserRepository
	Sports() SportRepository
	Facilities() FacilityRepository
	Activities() ActivityRepository
	Matches() MatchRepository
	Bookings() BookingRepository

	// WithTransaction runs fn against a Store bound to a single transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type store struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Users() UserRepository { return NewUserRepository(s.db) }
func (s *store) Sports() SportRepository { return NewSportRepository(s.db) }
func (s *store) Facilities() FacilityRepository { return NewFacilityRepository(s.db) }
func (s *store) Activities() ActivityRepository { return NewActivityRepository(s.db) }
func (s *store) Matches() MatchRepository { return NewMatchRepository(s.db) }
func (s *store) Bookings() BookingRepository { return NewBookingRepository(s.db) }

func (s *store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &store{db: tx})
	})
}
