package testhelpers

import (
	"context"
	"time"

	"casino/domain/entities"
	"casino/domain/events"
	"casino/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of interfaces.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, userID string, initialBalance int64) (*entities.User, error) {
	args := m.Called(ctx, userID, initialBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, userID string, newBalance int64) error {
	args := m.Called(ctx, userID, newBalance)
	return args.Error(0)
}

func (m *MockUserRepository) AddToTotalEarned(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SetStatus(ctx context.Context, userID string, status entities.UserStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of interfaces.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetOrCreate(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockDailyLimitRepository is a mock implementation of interfaces.DailyLimitRepository
type MockDailyLimitRepository struct {
	mock.Mock
}

func (m *MockDailyLimitRepository) GetOrCreate(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DailyLimit), args.Error(1)
}

func (m *MockDailyLimitRepository) GetByUserAndDay(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DailyLimit), args.Error(1)
}

func (m *MockDailyLimitRepository) Update(ctx context.Context, limit *entities.DailyLimit) error {
	args := m.Called(ctx, limit)
	return args.Error(0)
}

// MockGameRecordRepository is a mock implementation of interfaces.GameRecordRepository
type MockGameRecordRepository struct {
	mock.Mock
}

func (m *MockGameRecordRepository) Create(ctx context.Context, record *entities.GameRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockGameRecordRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*entities.GameRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameRecord), args.Error(1)
}

func (m *MockGameRecordRepository) GetByUserSince(ctx context.Context, userID string, since time.Time) ([]*entities.GameRecord, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GameRecord), args.Error(1)
}

// MockEventPublisher is a mock implementation of interfaces.EventPublisher
type MockEventPublisher struct {
	mock.Mock

	// Published collects every event passed to Publish, in order.
	Published []events.Event
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	m.Published = append(m.Published, event)
	args := m.Called(event)
	return args.Error(0)
}

// MockUnitOfWork is a mock unit of work that hands out the configured
// repository mocks and records Begin/Commit/Rollback calls.
type MockUnitOfWork struct {
	mock.Mock

	Users        *MockUserRepository
	Profiles     *MockProfileRepository
	DailyLimits  *MockDailyLimitRepository
	GameRecords  *MockGameRecordRepository
	Events       *MockEventPublisher
	CommitCalled bool
}

// NewMockUnitOfWork creates a unit of work whose repositories are all mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Users:       &MockUserRepository{},
		Profiles:    &MockProfileRepository{},
		DailyLimits: &MockDailyLimitRepository{},
		GameRecords: &MockGameRecordRepository{},
		Events:      &MockEventPublisher{},
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	m.CommitCalled = true
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() interfaces.UserRepository {
	return m.Users
}

func (m *MockUnitOfWork) ProfileRepository() interfaces.ProfileRepository {
	return m.Profiles
}

func (m *MockUnitOfWork) DailyLimitRepository() interfaces.DailyLimitRepository {
	return m.DailyLimits
}

func (m *MockUnitOfWork) GameRecordRepository() interfaces.GameRecordRepository {
	return m.GameRecords
}

func (m *MockUnitOfWork) EventBus() interfaces.EventPublisher {
	return m.Events
}

// MockUnitOfWorkFactory returns the same mock unit of work on every Create
type MockUnitOfWorkFactory struct {
	UOW *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) Create() interfaces.UnitOfWork {
	return f.UOW
}
