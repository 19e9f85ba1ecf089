package repository

import (
	"context"
	"fmt"

	"casino/database"
	"casino/domain/entities"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q Queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepository creates a transaction-scoped user repository
func newUserRepository(tx Queryable) *UserRepository {
	return &UserRepository{q: tx}
}

const userColumns = `id, points_balance, total_earned, status, created_at, updated_at`

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.PointsBalance,
		&user.TotalEarned,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(r.q.QueryRow(ctx, query, userID))
}

// GetForUpdate retrieves a user and locks their row until the transaction
// ends. Every settlement path starts here, so concurrent plays for the same
// user execute one at a time.
func (r *UserRepository) GetForUpdate(ctx context.Context, userID string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	return scanUser(r.q.QueryRow(ctx, query, userID))
}

// Create creates a new active user with the given initial balance
func (r *UserRepository) Create(ctx context.Context, userID string, initialBalance int64) (*entities.User, error) {
	query := `
		INSERT INTO users (id, points_balance, total_earned, status)
		VALUES ($1, $2, 0, $3)
		RETURNING ` + userColumns + `
	`
	user, err := scanUser(r.q.QueryRow(ctx, query, userID, initialBalance, entities.UserStatusActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// UpdateBalance sets a user's points balance
func (r *UserRepository) UpdateBalance(ctx context.Context, userID string, newBalance int64) error {
	query := `
		UPDATE users
		SET points_balance = $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, query, userID, newBalance)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

// AddToTotalEarned increases the lifetime earned counter
func (r *UserRepository) AddToTotalEarned(ctx context.Context, userID string, amount int64) error {
	query := `
		UPDATE users
		SET total_earned = total_earned + $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to update total earned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

// SetStatus changes the account moderation status
func (r *UserRepository) SetStatus(ctx context.Context, userID string, status entities.UserStatus) error {
	query := `
		UPDATE users
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, query, userID, status)
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}
