package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// FacilityInput carries the fields of a new facility.
type FacilityInput struct {
	Name        string
	Address     *string
	ContactInfo *string
	SportID     *uint
}

// FacilityPatch holds the fields to change; nil fields are left untouched.
type FacilityPatch struct {
	Name        *string
	Address     *string
	ContactInfo *string
	SportID     *uint
}

// FacilityService manages facilities.
type FacilityService interface {
	CreateFacility(ctx context.Context, in FacilityInput) (*model.Facility, error)
	ListFacilities(ctx context.Context, page repository.Page) ([]model.Facility, error)
	UpdateFacility(ctx context.Context, id uint, patch FacilityPatch) (*model.Facility, error)
	DeleteFacility(ctx context.Context, id uint) error
}

type facilityService struct {
	store repository.Store
}

// NewFacilityService creates a new facility service.
func NewFacilityService(store repository.Store) FacilityService {
	return &facilityService{store: store}
}

func (s *facilityService) CreateFacility(ctx context.Context, in FacilityInput) (*model.Facility, error) {
	if err := s.checkSport(ctx, in.SportID); err != nil {
		return nil, err
	}

	facility := &model.Facility{
		Name:        in.Name,
		Address:     in.Address,
		ContactInfo: in.ContactInfo,
		SportID:     in.SportID,
	}
	if err := s.store.Facilities().Create(ctx, facility); err != nil {
		return nil, fmt.Errorf("create facility: %w", err)
	}
	return facility, nil
}

func (s *facilityService) ListFacilities(ctx context.Context, page repository.Page) ([]model.Facility, error) {
	return s.store.Facilities().List(ctx, page)
}

func (s *facilityService) UpdateFacility(ctx context.Context, id uint, patch FacilityPatch) (*model.Facility, error) {
	facility, err := s.store.Facilities().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrFacilityNotFound)
	}
	if err := s.checkSport(ctx, patch.SportID); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		facility.Name = *patch.Name
	}
	if patch.Address != nil {
		facility.Address = patch.Address
	}
	if patch.ContactInfo != nil {
		facility.ContactInfo = patch.ContactInfo
	}
	if patch.SportID != nil {
		facility.SportID = patch.SportID
	}

	if err := s.store.Facilities().Update(ctx, facility); err != nil {
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return facility, nil
}

// DeleteFacility removes a facility. Facilities with bookings are kept.
func (s *facilityService) DeleteFacility(ctx context.Context, id uint) error {
	err := s.store.Facilities().Delete(ctx, id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrFacilityInUse
	}
	if err != nil {
		return notFoundAs(err, apperrors.ErrFacilityNotFound)
	}
	return nil
}

func (s *facilityService) checkSport(ctx context.Context, sportID *uint) error {
	if sportID == nil {
		return nil
	}
	if _, err := s.store.Sports().FindByID(ctx, *sportID); err != nil {
		return notFoundAs(err, apperrors.ErrSportNotFound)
	}
	return nil
}
