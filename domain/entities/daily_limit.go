package entities

import "time"

// DailyLimit tracks a user's cumulative win/loss for one UTC calendar day.
// One row exists per (user, date); a new day gets a fresh row and the old one
// is never touched again.
type DailyLimit struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Date        time.Time `db:"date"` // UTC midnight of the day this row covers
	TotalWon    int64     `db:"total_won"`
	TotalLost   int64     `db:"total_lost"`
	GamesPlayed int       `db:"games_played"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// NetResult returns the day's net win/loss from the user's perspective
func (d *DailyLimit) NetResult() int64 {
	return d.TotalWon - d.TotalLost
}

// Reached checks whether the day's net magnitude has hit the ceiling
func (d *DailyLimit) Reached(ceiling int64) bool {
	net := d.NetResult()
	if net < 0 {
		net = -net
	}
	return net >= ceiling
}

// ApplySettlement folds a resolved game into the day's counters. Only the
// net delta counts: a payout above the bet adds to TotalWon, anything else
// adds the shortfall to TotalLost (a push adds zero).
func (d *DailyLimit) ApplySettlement(betAmount, winAmount int64) {
	d.GamesPlayed++
	if winAmount > betAmount {
		d.TotalWon += winAmount - betAmount
	} else {
		d.TotalLost += betAmount - winAmount
	}
}

// UTCDay truncates a time to the UTC calendar day it falls on.
func UTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
