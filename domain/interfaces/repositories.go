package interfaces

import (
	"context"
	"time"

	"casino/domain/entities"
	"casino/domain/events"
)

// UserRepository defines the interface for user data access. It is the only
// component permitted to write balance-affecting user state.
type UserRepository interface {
	// GetByID retrieves a user by ID, or (nil, nil) if absent
	GetByID(ctx context.Context, userID string) (*entities.User, error)

	// GetForUpdate retrieves a user and locks their row for the remainder
	// of the transaction. Concurrent plays for the same user serialize here.
	GetForUpdate(ctx context.Context, userID string) (*entities.User, error)

	// Create creates a new active user with the initial balance
	Create(ctx context.Context, userID string, initialBalance int64) (*entities.User, error)

	// UpdateBalance sets a user's balance
	UpdateBalance(ctx context.Context, userID string, newBalance int64) error

	// AddToTotalEarned increases the lifetime earned counter
	AddToTotalEarned(ctx context.Context, userID string, amount int64) error

	// SetStatus changes the account status
	SetStatus(ctx context.Context, userID string, status entities.UserStatus) error
}

// ProfileRepository defines the interface for player profile data access
type ProfileRepository interface {
	// GetByUserID retrieves a profile, or (nil, nil) if absent
	GetByUserID(ctx context.Context, userID string) (*entities.Profile, error)

	// GetOrCreate retrieves the profile, creating a zeroed one if absent
	GetOrCreate(ctx context.Context, userID string) (*entities.Profile, error)

	// Update persists the mutated profile counters
	Update(ctx context.Context, profile *entities.Profile) error
}

// DailyLimitRepository defines the interface for per-day limit records
type DailyLimitRepository interface {
	// GetOrCreate retrieves the record for (user, UTC day), creating a
	// zeroed one on first access. Idempotent.
	GetOrCreate(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error)

	// GetByUserAndDay retrieves a record, or (nil, nil) if absent
	GetByUserAndDay(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error)

	// Update persists the mutated day counters
	Update(ctx context.Context, limit *entities.DailyLimit) error
}

// GameRecordRepository defines the interface for the append-only audit log
type GameRecordRepository interface {
	// Create appends a record for a resolved game
	Create(ctx context.Context, record *entities.GameRecord) error

	// GetByUser returns the most recent records for a user
	GetByUser(ctx context.Context, userID string, limit int) ([]*entities.GameRecord, error)

	// GetByUserSince returns all records for a user since a specific time
	GetByUserSince(ctx context.Context, userID string, since time.Time) ([]*entities.GameRecord, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// UnitOfWork represents one atomic transaction over the casino state. All
// repositories obtained from it share the same underlying transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() UserRepository
	ProfileRepository() ProfileRepository
	DailyLimitRepository() DailyLimitRepository
	GameRecordRepository() GameRecordRepository

	// EventBus returns the transaction-scoped publisher: events published
	// through it are flushed on Commit and discarded on Rollback.
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
