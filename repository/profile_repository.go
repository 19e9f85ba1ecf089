package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository implements the ProfileRepository interface
type ProfileRepository struct {
	q Queryable
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{q: db.Pool}
}

// newProfileRepository creates a transaction-scoped profile repository
func newProfileRepository(tx Queryable) *ProfileRepository {
	return &ProfileRepository{q: tx}
}

const profileColumns = `user_id, total_wins, total_losses, win_streak, best_win_streak, favorite_game, xp, created_at, updated_at`

func scanProfile(row pgx.Row) (*entities.Profile, error) {
	var profile entities.Profile
	err := row.Scan(
		&profile.UserID,
		&profile.TotalWins,
		&profile.TotalLosses,
		&profile.WinStreak,
		&profile.BestWinStreak,
		&profile.FavoriteGame,
		&profile.XP,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &profile, nil
}

// GetByUserID retrieves a profile by user ID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
	`
	return scanProfile(r.q.QueryRow(ctx, query, userID))
}

// GetOrCreate retrieves the profile, inserting a zeroed row on first play
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID string) (*entities.Profile, error) {
	query := `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + profileColumns + `
	`
	profile, err := scanProfile(r.q.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", err)
	}
	return profile, nil
}

// Update persists the mutated profile counters
func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	query := `
		UPDATE profiles
		SET total_wins = $2,
			total_losses = $3,
			win_streak = $4,
			best_win_streak = $5,
			favorite_game = $6,
			xp = $7,
			updated_at = NOW()
		WHERE user_id = $1
	`
	tag, err := r.q.Exec(ctx, query,
		profile.UserID,
		profile.TotalWins,
		profile.TotalLosses,
		profile.WinStreak,
		profile.BestWinStreak,
		profile.FavoriteGame,
		profile.XP,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", profile.UserID)
	}
	return nil
}
