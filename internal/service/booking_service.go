package service

import (
	"context"
	"fmt"
	"time"

	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/events"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// BookingInput carries the fields of a new booking.
type BookingInput struct {
	FacilityID  uint
	BookingDate time.Time
	Duration    int
	Status      model.BookingStatus
}

// BookingService manages facility bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, userID uint, in BookingInput) (*model.Booking, error)
	ListBookings(ctx context.Context, page repository.Page) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	store     repository.Store
	publisher events.Publisher
	log       *logger.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(store repository.Store, publisher events.Publisher, log *logger.Logger) BookingService {
	return &bookingService{
		store:     store,
		publisher: publisher,
		log:       log.Named("booking"),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uint, in BookingInput) (*model.Booking, error) {
	if in.Status == "" {
		in.Status = model.BookingStatusPending
	}
	if !in.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.store.Users().FindByID(ctx, userID); err != nil {
		return nil, notFoundAs(err, apperrors.ErrUserNotFound)
	}
	if _, err := s.store.Facilities().FindByID(ctx, in.FacilityID); err != nil {
		return nil, notFoundAs(err, apperrors.ErrFacilityNotFound)
	}

	booking := &model.Booking{
		UserID:      userID,
		FacilityID:  in.FacilityID,
		BookingDate: in.BookingDate,
		Duration:    in.Duration,
		Status:      in.Status,
	}
	if err := s.store.Bookings().Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, page repository.Page) ([]model.Booking, error) {
	return s.store.Bookings().List(ctx, page)
}

// UpdateStatus sets the status of an existing booking.
func (s *bookingService) UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) (*model.Booking, error) {
	booking, err := s.store.Bookings().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrBookingNotFound)
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	previous := booking.Status
	if err := s.store.Bookings().UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	if err := s.publisher.PublishJSON(ctx, events.KeyBookingStatusChanged, events.BookingStatusChanged{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		From:      string(previous),
		To:        string(status),
	}); err != nil {
		s.log.Warnw("publish booking.status_changed failed", "booking_id", booking.ID, "error", err)
	}
	return booking, nil
}
