package repository

import (
	"context"

	"gorm.io/gorm"

	"sportmatch/internal/model"
)

// SportRepository defines sport persistence operations.
type SportRepository interface {
	Create(ctx context.Context, sport *model.Sport) error
	FindByID(ctx context.Context, id uint) (*model.Sport, error)
	FindByName(ctx context.Context, name string) (*model.Sport, error)
	List(ctx context.Context, page Page) ([]model.Sport, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new sport repository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) Create(ctx context.Context, sport *model.Sport) error {
	return r.db.WithContext(ctx).Create(sport).Error
}

func (r *sportRepository) FindByID(ctx context.Context, id uint) (*model.Sport, error) {
	var sport model.Sport
	if err := r.db.WithContext(ctx).First(&sport, id).Error; err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) FindByName(ctx context.Context, name string) (*model.Sport, error) {
	var sport model.Sport
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&sport).Error; err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) List(ctx context.Context, page Page) ([]model.Sport, error) {
	var sports []model.Sport
	if err := page.scope(r.db.WithContext(ctx)).Order("id").Find(&sports).Error; err != nil {
		return nil, err
	}
	return sports, nil
}
