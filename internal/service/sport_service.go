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

// SportService manages the sport catalogue.
type SportService interface {
	CreateSport(ctx context.Context, name string) (*model.Sport, error)
	ListSports(ctx context.Context, page repository.Page) ([]model.Sport, error)
}

type sportService struct {
	store repository.Store
}

// NewSportService creates a new sport service.
func NewSportService(store repository.Store) SportService {
	return &sportService{store: store}
}

func (s *sportService) CreateSport(ctx context.Context, name string) (*model.Sport, error) {
	sports := s.store.Sports()
	if err := ensureAbsent(sports.FindByName(ctx, name)); err != nil {
		if errors.Is(err, errPresent) {
			return nil, apperrors.ErrSportExists
		}
		return nil, fmt.Errorf("check sport: %w", err)
	}

	sport := &model.Sport{Name: name}
	if err := sports.Create(ctx, sport); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSportExists
		}
		return nil, fmt.Errorf("create sport: %w", err)
	}
	return sport, nil
}

func (s *sportService) ListSports(ctx context.Context, page repository.Page) ([]model.Sport, error) {
	return s.store.Sports().List(ctx, page)
}
