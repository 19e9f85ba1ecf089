package interfaces

import (
	"context"

	"casino/domain/entities"
)

// CasinoService defines the interface for the game play orchestration
type CasinoService interface {
	// PlayGame validates, resolves and settles one game play as a single
	// atomic unit. A rejected play leaves no trace: no audit record, no
	// balance, profile or limit change.
	PlayGame(ctx context.Context, userID string, gameType entities.GameType, betAmount int64, params entities.PlayParams) (*entities.PlayResult, error)
}

// UserService defines the interface for account operations
type UserService interface {
	// GetOrCreateUser retrieves an existing user or creates a new one with
	// the configured starting balance
	GetOrCreateUser(ctx context.Context, userID string) (*entities.User, error)

	// GetUser retrieves a user, or ErrUserNotFound
	GetUser(ctx context.Context, userID string) (*entities.User, error)

	// GetProfile retrieves a user's play statistics; a user who has never
	// played gets a zeroed profile view
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)

	// GetDailyLimit returns the user's current-UTC-day limit record view
	GetDailyLimit(ctx context.Context, userID string) (*entities.DailyLimit, error)

	// GetHistory returns the user's most recent game records
	GetHistory(ctx context.Context, userID string, limit int) ([]*entities.GameRecord, error)
}
