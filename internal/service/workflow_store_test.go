package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportmatch/internal/db"
	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/events"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

func newSQLiteStore(t *testing.T) (repository.Store, *gorm.DB) {
	t.Helper()
	gormDB, err := db.Open(db.MemoryDSN, false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, false))
	return repository.NewStore(gormDB), gormDB
}

func seedUsers(t *testing.T, store repository.Store, usernames ...string) map[string]*model.User {
	t.Helper()
	users := make(map[string]*model.User, len(usernames))
	for _, name := range usernames {
		u := &model.User{Username: name, Email: name + "@example.com", PasswordHash: "x", Role: model.RoleUser}
		require.NoError(t, store.Users().Create(context.Background(), u))
		users[name] = u
	}
	return users
}

func countRows(t *testing.T, gormDB *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gormDB.Model(m).Count(&n).Error)
	return n
}

func TestActivityWorkflow_SQLite(t *testing.T) {
	store, gormDB := newSQLiteStore(t)
	ctx := context.Background()
	users := seedUsers(t, store, "carol", "alice", "dave")
	tennis := &model.Sport{Name: "Tennis"}
	require.NoError(t, store.Sports().Create(ctx, tennis))

	activities := NewActivityService(store, events.Nop{}, logger.Nop())
	matches := NewMatchService(store, events.Nop{}, logger.Nop())
	input := CreateActivityInput{
		SportID:      tennis.ID,
		Description:  "evening doubles",
		ActivityDate: time.Date(2026, 11, 2, 18, 0, 0, 0, time.UTC),
		Location:     "Court 1",
	}

	t.Run("unknown sport writes nothing", func(t *testing.T) {
		in := input
		in.SportID = 999
		in.ParticipantUsernames = []string{"alice"}

		_, err := activities.CreateActivityWithInvites(ctx, users["carol"].ID, in)

		assert.Equal(t, apperrors.ErrSportNotFound, err)
		assert.Zero(t, countRows(t, gormDB, &model.Activity{}))
		assert.Zero(t, countRows(t, gormDB, &model.Match{}))
	})

	var carols *model.Activity
	t.Run("unknown and repeated usernames", func(t *testing.T) {
		in := input
		in.ParticipantUsernames = []string{"alice", "ghost", "alice"}

		activity, err := activities.CreateActivityWithInvites(ctx, users["carol"].ID, in)
		require.NoError(t, err)
		carols = activity

		invites, err := store.Matches().ListByUser(ctx, users["alice"].ID, repository.NewPage(0, 0))
		require.NoError(t, err)
		require.Len(t, invites, 1)
		assert.Equal(t, activity.ID, invites[0].ActivityID)
		assert.Equal(t, model.MatchStatusPending, invites[0].Status)
		assert.Equal(t, int64(1), countRows(t, gormDB, &model.Match{}))
	})

	t.Run("created and invited without duplicates", func(t *testing.T) {
		require.NotNil(t, carols)
		own, err := activities.CreateActivityWithInvites(ctx, users["alice"].ID, input)
		require.NoError(t, err)
		// alice is also matched to her own activity through a direct insert
		require.NoError(t, store.Matches().Create(ctx, &model.Match{ActivityID: own.ID, UserID: users["alice"].ID, Status: model.MatchStatusAccepted}))

		mine, err := activities.ListMyActivities(ctx, users["alice"].ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, carols.ID, mine[0].ID)
		assert.Equal(t, own.ID, mine[1].ID)
	})

	t.Run("join rules", func(t *testing.T) {
		require.NotNil(t, carols)

		_, err := matches.CreateMatch(ctx, carols.ID, users["carol"].ID, "")
		assert.Equal(t, apperrors.ErrSelfMatch, err)

		match, err := matches.CreateMatch(ctx, carols.ID, users["dave"].ID, "")
		require.NoError(t, err)
		assert.Equal(t, model.MatchStatusPending, match.Status)

		_, err = matches.CreateMatch(ctx, carols.ID, users["dave"].ID, "")
		assert.Equal(t, apperrors.ErrMatchExists, err)

		_, err = matches.CreateMatch(ctx, carols.ID, users["alice"].ID, "")
		assert.Equal(t, apperrors.ErrMatchExists, err)
	})
}
