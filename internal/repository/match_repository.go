package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportmatch/internal/model"
)

// MatchRepository defines match persistence operations.
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	// CreateIfAbsent inserts the match unless one already exists for the same
	// (activity, user) pair, and reports whether a row was written.
	CreateIfAbsent(ctx context.Context, match *model.Match) (bool, error)
	Exists(ctx context.Context, activityID, userID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint, page Page) ([]model.Match, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// Create inserts the match. A duplicate pair yields gorm.ErrDuplicatedKey.
func (r *matchRepository) Create(ctx context.Context, match *model.Match) error {
	return r.db.WithContext(ctx).Omit("Activity", "User").Create(match).Error
}

func (r *matchRepository) CreateIfAbsent(ctx context.Context, match *model.Match) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Activity", "User").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(match)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *matchRepository) Exists(ctx context.Context, activityID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Match{}).
		Where("activity_id = ? AND user_id = ?", activityID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *matchRepository) ListByUser(ctx context.Context, userID uint, page Page) ([]model.Match, error) {
	var matches []model.Match
	err := page.scope(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("id").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}
