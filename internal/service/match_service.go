package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/events"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// MatchService handles direct join requests.
type MatchService interface {
	CreateMatch(ctx context.Context, activityID, requesterID uint, status model.MatchStatus) (*model.Match, error)
	ListUserMatches(ctx context.Context, userID uint, page repository.Page) ([]model.Match, error)
}

type matchService struct {
	store     repository.Store
	publisher events.Publisher
	log       *logger.Logger
}

// NewMatchService creates a new match service.
func NewMatchService(store repository.Store, publisher events.Publisher, log *logger.Logger) MatchService {
	return &matchService{
		store:     store,
		publisher: publisher,
		log:       log.Named("match"),
	}
}

// CreateMatch records the requester's wish to join an activity. An empty
// status means pending. Joining one's own activity or joining twice fails.
func (s *matchService) CreateMatch(ctx context.Context, activityID, requesterID uint, status model.MatchStatus) (*model.Match, error) {
	if status == "" {
		status = model.MatchStatusPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	activity, err := s.store.Activities().FindByID(ctx, activityID)
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrActivityNotFound)
	}
	if activity.UserID == requesterID {
		return nil, apperrors.ErrSelfMatch
	}

	exists, err := s.store.Matches().Exists(ctx, activityID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("check match: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMatchExists
	}

	match := &model.Match{
		ActivityID: activityID,
		UserID:     requesterID,
		Status:     status,
	}
	if err := s.store.Matches().Create(ctx, match); err != nil {
		// lost the race against a concurrent join
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMatchExists
		}
		return nil, fmt.Errorf("create match: %w", err)
	}

	if err := s.publisher.PublishJSON(ctx, events.KeyMatchRequested, events.MatchRequested{
		MatchID:     match.ID,
		ActivityID:  activityID,
		RequesterID: requesterID,
		Status:      string(match.Status),
	}); err != nil {
		s.log.Warnw("publish match.requested failed", "match_id", match.ID, "error", err)
	}
	return match, nil
}

func (s *matchService) ListUserMatches(ctx context.Context, userID uint, page repository.Page) ([]model.Match, error) {
	return s.store.Matches().ListByUser(ctx, userID, page)
}
