package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/events"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// CreateActivityInput carries the fields of a new activity and the usernames
// to invite.
type CreateActivityInput struct {
	SportID              uint
	Description          string
	ActivityDate         time.Time
	Location             string
	ParticipantUsernames []string
}

// ActivityService creates and lists activities.
type ActivityService interface {
	CreateActivity(ctx context.Context, creatorID uint, in CreateActivityInput) (*model.Activity, error)
	CreateActivityWithInvites(ctx context.Context, creatorID uint, in CreateActivityInput) (*model.Activity, error)
	ListActivities(ctx context.Context, page repository.Page) ([]model.Activity, error)
	ListMyActivities(ctx context.Context, userID uint) ([]model.Activity, error)
}

type activityService struct {
	store     repository.Store
	publisher events.Publisher
	log       *logger.Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(store repository.Store, publisher events.Publisher, log *logger.Logger) ActivityService {
	return &activityService{
		store:     store,
		publisher: publisher,
		log:       log.Named("activity"),
	}
}

// CreateActivity records an activity without inviting anyone.
func (s *activityService) CreateActivity(ctx context.Context, creatorID uint, in CreateActivityInput) (*model.Activity, error) {
	in.ParticipantUsernames = nil
	return s.CreateActivityWithInvites(ctx, creatorID, in)
}

// CreateActivityWithInvites records the activity and a pending match for every
// participant username that resolves to a user, all in one transaction.
// Unknown usernames are skipped; an unknown sport fails before any write.
func (s *activityService) CreateActivityWithInvites(ctx context.Context, creatorID uint, in CreateActivityInput) (*model.Activity, error) {
	var (
		activity *model.Activity
		invited  []uint
	)

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		invited = invited[:0]

		if _, err := tx.Sports().FindByID(ctx, in.SportID); err != nil {
			return notFoundAs(err, apperrors.ErrSportNotFound)
		}

		activity = &model.Activity{
			UserID:       creatorID,
			SportID:      in.SportID,
			Description:  in.Description,
			ActivityDate: in.ActivityDate,
			Location:     in.Location,
		}
		if err := tx.Activities().Create(ctx, activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		for _, username := range in.ParticipantUsernames {
			user, err := tx.Users().FindByUsername(ctx, username)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Debugw("skipping unknown participant", "activity_id", activity.ID, "username", username)
				continue
			}
			if err != nil {
				return fmt.Errorf("find participant %q: %w", username, err)
			}

			created, err := tx.Matches().CreateIfAbsent(ctx, &model.Match{
				ActivityID: activity.ID,
				UserID:     user.ID,
				Status:     model.MatchStatusPending,
			})
			if err != nil {
				return fmt.Errorf("invite %q: %w", username, err)
			}
			if created {
				invited = append(invited, user.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("activity created", "activity_id", activity.ID, "creator_id", creatorID, "invited", len(invited))
	if err := s.publisher.PublishJSON(ctx, events.KeyActivityCreated, events.ActivityCreated{
		ActivityID:     activity.ID,
		CreatorID:      creatorID,
		SportID:        activity.SportID,
		ActivityDate:   activity.ActivityDate,
		InvitedUserIDs: invited,
	}); err != nil {
		s.log.Warnw("publish activity.created failed", "activity_id", activity.ID, "error", err)
	}
	return activity, nil
}

func (s *activityService) ListActivities(ctx context.Context, page repository.Page) ([]model.Activity, error) {
	return s.store.Activities().List(ctx, page)
}

// ListMyActivities returns the activities the user created or was matched to,
// each at most once, ordered by id.
func (s *activityService) ListMyActivities(ctx context.Context, userID uint) ([]model.Activity, error) {
	created, err := s.store.Activities().ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list created activities: %w", err)
	}
	joined, err := s.store.Activities().ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list joined activities: %w", err)
	}

	seen := make(map[uint]struct{}, len(created)+len(joined))
	result := make([]model.Activity, 0, len(created)+len(joined))
	for _, list := range [][]model.Activity{created, joined} {
		for _, a := range list {
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
