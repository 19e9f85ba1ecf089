package repository

import (
	"context"
	"fmt"
	"time"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// DailyLimitRepository implements the DailyLimitRepository interface
type DailyLimitRepository struct {
	q Queryable
}

// NewDailyLimitRepository creates a new daily limit repository
func NewDailyLimitRepository(db *database.DB) *DailyLimitRepository {
	return &DailyLimitRepository{q: db.Pool}
}

// newDailyLimitRepository creates a transaction-scoped daily limit repository
func newDailyLimitRepository(tx Queryable) *DailyLimitRepository {
	return &DailyLimitRepository{q: tx}
}

const dailyLimitColumns = `id, user_id, date, total_won, total_lost, games_played, created_at, updated_at`

func scanDailyLimit(row pgx.Row) (*entities.DailyLimit, error) {
	var limit entities.DailyLimit
	err := row.Scan(
		&limit.ID,
		&limit.UserID,
		&limit.Date,
		&limit.TotalWon,
		&limit.TotalLost,
		&limit.GamesPlayed,
		&limit.CreatedAt,
		&limit.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily limit: %w", err)
	}
	// The date column is DATE; force the UTC-midnight convention back on.
	limit.Date = entities.UTCDay(limit.Date)
	return &limit, nil
}

// GetOrCreate retrieves the record for (user, day), inserting a zeroed row on
// the first play of the day. The upsert makes concurrent first plays safe.
func (r *DailyLimitRepository) GetOrCreate(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error) {
	query := `
		INSERT INTO daily_limits (user_id, date)
		VALUES ($1, $2)
		ON CONFLICT (user_id, date) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + dailyLimitColumns + `
	`
	limit, err := scanDailyLimit(r.q.QueryRow(ctx, query, userID, day))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create daily limit: %w", err)
	}
	return limit, nil
}

// GetByUserAndDay retrieves a record without creating one
func (r *DailyLimitRepository) GetByUserAndDay(ctx context.Context, userID string, day time.Time) (*entities.DailyLimit, error) {
	query := `
		SELECT ` + dailyLimitColumns + `
		FROM daily_limits
		WHERE user_id = $1 AND date = $2
	`
	return scanDailyLimit(r.q.QueryRow(ctx, query, userID, day))
}

// Update persists the mutated day counters
func (r *DailyLimitRepository) Update(ctx context.Context, limit *entities.DailyLimit) error {
	query := `
		UPDATE daily_limits
		SET total_won = $2,
			total_lost = $3,
			games_played = $4,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, query, limit.ID, limit.TotalWon, limit.TotalLost, limit.GamesPlayed)
	if err != nil {
		return fmt.Errorf("failed to update daily limit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily limit %d not found", limit.ID)
	}
	return nil
}
