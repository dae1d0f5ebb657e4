package repository

import (
	"context"

	"gorm.io/gorm"

	"sportmatch/internal/model"
)

// ActivityRepository defines activity persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindByID(ctx context.Context, id uint) (*model.Activity, error)
	List(ctx context.Context, page Page) ([]model.Activity, error)
	ListByCreator(ctx context.Context, userID uint) ([]model.Activity, error)
	ListByParticipant(ctx context.Context, userID uint) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts the activity. ID and CreatedAt are populated on return, and
// inside a transaction the new row is visible to later statements of it.
func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Omit("User", "Sport").Create(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context, page Page) ([]model.Activity, error) {
	var activities []model.Activity
	if err := page.scope(r.db.WithContext(ctx)).Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListByCreator(ctx context.Context, userID uint) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// ListByParticipant returns activities the user holds a match for.
func (r *activityRepository) ListByParticipant(ctx context.Context, userID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Joins("JOIN matches ON matches.activity_id = activities.id").
		Where("matches.user_id = ?", userID).
		Order("activities.id").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
