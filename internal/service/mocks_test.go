package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 100
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page repository.Page) ([]model.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockSportRepository is a mock implementation of SportRepository.
type MockSportRepository struct {
	mock.Mock
}

func (m *MockSportRepository) Create(ctx context.Context, sport *model.Sport) error {
	args := m.Called(ctx, sport)
	return args.Error(0)
}

func (m *MockSportRepository) FindByID(ctx context.Context, id uint) (*model.Sport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockSportRepository) FindByName(ctx context.Context, name string) (*model.Sport, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sport), args.Error(1)
}

func (m *MockSportRepository) List(ctx context.Context, page repository.Page) ([]model.Sport, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sport), args.Error(1)
}

// MockFacilityRepository is a mock implementation of FacilityRepository.
type MockFacilityRepository struct {
	mock.Mock
}

func (m *MockFacilityRepository) Create(ctx context.Context, facility *model.Facility) error {
	args := m.Called(ctx, facility)
	return args.Error(0)
}

func (m *MockFacilityRepository) Update(ctx context.Context, facility *model.Facility) error {
	args := m.Called(ctx, facility)
	return args.Error(0)
}

func (m *MockFacilityRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFacilityRepository) FindByID(ctx context.Context, id uint) (*model.Facility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Facility), args.Error(1)
}

func (m *MockFacilityRepository) List(ctx context.Context, page repository.Page) ([]model.Facility, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Facility), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
	nextID uint
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	if args.Error(0) == nil {
		m.nextID++
		activity.ID = m.nextID
	}
	return args.Error(0)
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, page repository.Page) ([]model.Activity, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByCreator(ctx context.Context, userID uint) ([]model.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByParticipant(ctx context.Context, userID uint) ([]model.Activity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

// MockMatchRepository is a mock implementation of MatchRepository.
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *model.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) CreateIfAbsent(ctx context.Context, match *model.Match) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRepository) Exists(ctx context.Context, activityID, userID uint) (bool, error) {
	args := m.Called(ctx, activityID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRepository) ListByUser(ctx context.Context, userID uint, page repository.Page) ([]model.Match, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Match), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uint, status model.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, page repository.Page) ([]model.Booking, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

// MockStore hands out the mock repositories. WithTransaction runs fn against
// the same store and records whether the unit committed or rolled back.
type MockStore struct {
	users      *MockUserRepository
	sports     *MockSportRepository
	facilities *MockFacilityRepository
	activities *MockActivityRepository
	matches    *MockMatchRepository
	bookings   *MockBookingRepository

	commits   int
	rollbacks int
}

func newMockStore() *MockStore {
	return &MockStore{
		users:      new(MockUserRepository),
		sports:     new(MockSportRepository),
		facilities: new(MockFacilityRepository),
		activities: new(MockActivityRepository),
		matches:    new(MockMatchRepository),
		bookings:   new(MockBookingRepository),
	}
}

func (s *MockStore) Users() repository.UserRepository { return s.users }
func (s *MockStore) Sports() repository.SportRepository { return s.sports }
func (s *MockStore) Facilities() repository.FacilityRepository { return s.facilities }
func (s *MockStore) Activities() repository.ActivityRepository { return s.activities }
func (s *MockStore) Matches() repository.MatchRepository { return s.matches }
func (s *MockStore) Bookings() repository.BookingRepository { return s.bookings }

func (s *MockStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	if err := fn(ctx, s); err != nil {
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *MockStore) assertExpectations(t mock.TestingT) {
	s.users.AssertExpectations(t)
	s.sports.AssertExpectations(t)
	s.facilities.AssertExpectations(t)
	s.activities.AssertExpectations(t)
	s.matches.AssertExpectations(t)
	s.bookings.AssertExpectations(t)
}

// MockPublisher is a mock implementation of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return nil
}
