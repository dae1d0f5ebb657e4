package repository

import (
	"context"

	"gorm.io/gorm"

	"sportmatch/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uint) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) error
	List(ctx context.Context, page Page) ([]model.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Omit("User", "Facility").Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus writes the status of a booking the caller has already loaded.
// RowsAffected is not checked: MySQL reports 0 when the value is unchanged.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepository) List(ctx context.Context, page Page) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := page.scope(r.db.WithContext(ctx)).Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
