package entities

import (
	"errors"
	"time"
)

// UserStatus represents the moderation state of a user account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusBanned    UserStatus = "banned"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a platform user with their points balance.
// PointsBalance never goes negative; TotalEarned is a lifetime counter that
// only ever increases (by the gross win amount of winning resolutions).
type User struct {
	ID            string     `db:"id"`
	PointsBalance int64      `db:"points_balance"`
	TotalEarned   int64      `db:"total_earned"`
	Status        UserStatus `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// IsActive checks if the account may place bets
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasSufficientBalance checks if the user can cover an amount
func (u *User) HasSufficientBalance(amount int64) bool {
	return u.PointsBalance >= amount
}

// ValidateAmount checks if an amount is a valid stake for this user
func (u *User) ValidateAmount(amount int64) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !u.HasSufficientBalance(amount) {
		return errors.New("insufficient points balance")
	}
	return nil
}

// CalculateNewBalance calculates what the balance would be after a change
func (u *User) CalculateNewBalance(changeAmount int64) int64 {
	return u.PointsBalance + changeAmount
}
