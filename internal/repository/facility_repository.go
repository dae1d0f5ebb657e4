package repository

import (
	"context"

	"gorm.io/gorm"

	"sportmatch/internal/model"
)

// FacilityRepository defines facility persistence operations.
type FacilityRepository interface {
	Create(ctx context.Context, facility *model.Facility) error
	Update(ctx context.Context, facility *model.Facility) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Facility, error)
	List(ctx context.Context, page Page) ([]model.Facility, error)
}

type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository creates a new facility repository.
func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

func (r *facilityRepository) Create(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

// Update writes every column of the facility, including cleared optional fields.
func (r *facilityRepository) Update(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Omit("Sport").Save(facility).Error
}

// Delete removes the facility. Returns gorm.ErrRecordNotFound when no row matched.
func (r *facilityRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Facility{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id uint) (*model.Facility, error) {
	var facility model.Facility
	if err := r.db.WithContext(ctx).First(&facility, id).Error; err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) List(ctx context.Context, page Page) ([]model.Facility, error) {
	var facilities []model.Facility
	if err := page.scope(r.db.WithContext(ctx)).Order("id").Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}
