package repository

import (
	"context"
	"fmt"
	"time"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GameRecordRepository implements the GameRecordRepository interface
type GameRecordRepository struct {
	q Queryable
}

// NewGameRecordRepository creates a new game record repository
func NewGameRecordRepository(db *database.DB) *GameRecordRepository {
	return &GameRecordRepository{q: db.Pool}
}

// newGameRecordRepository creates a transaction-scoped game record repository
func newGameRecordRepository(tx Queryable) *GameRecordRepository {
	return &GameRecordRepository{q: tx}
}

const gameRecordColumns = `id, user_id, game_type, bet_amount, win_amount, result, played_at`

// Create appends a record for a resolved game
func (r *GameRecordRepository) Create(ctx context.Context, record *entities.GameRecord) error {
	query := `
		INSERT INTO game_records (user_id, game_type, bet_amount, win_amount, result)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, played_at
	`
	err := r.q.QueryRow(ctx, query,
		record.UserID,
		record.GameType,
		record.BetAmount,
		record.WinAmount,
		record.Result,
	).Scan(&record.ID, &record.PlayedAt)
	if err != nil {
		return fmt.Errorf("failed to create game record: %w", err)
	}
	return nil
}

// GetByUser returns the most recent records for a user, newest first
func (r *GameRecordRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*entities.GameRecord, error) {
	query := `
		SELECT ` + gameRecordColumns + `
		FROM game_records
		WHERE user_id = $1
		ORDER BY played_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %w", err)
	}
	defer rows.Close()

	return scanGameRecords(rows)
}

// GetByUserSince returns all records for a user played at or after a time
func (r *GameRecordRepository) GetByUserSince(ctx context.Context, userID string, since time.Time) ([]*entities.GameRecord, error) {
	query := `
		SELECT ` + gameRecordColumns + `
		FROM game_records
		WHERE user_id = $1 AND played_at >= $2
		ORDER BY played_at DESC, id DESC
	`
	rows, err := r.q.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query game records: %w", err)
	}
	defer rows.Close()

	return scanGameRecords(rows)
}

func scanGameRecords(rows pgx.Rows) ([]*entities.GameRecord, error) {
	var records []*entities.GameRecord
	for rows.Next() {
		var record entities.GameRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.GameType,
			&record.BetAmount,
			&record.WinAmount,
			&record.Result,
			&record.PlayedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game record: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game records: %w", err)
	}
	return records, nil
}
