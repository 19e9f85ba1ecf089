package entities

import "time"

// GameRecord is an append-only audit entry, one per resolved game.
// Records are immutable once written; downstream consumers (history,
// analytics, achievements) read them but never mutate them.
type GameRecord struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	GameType  GameType  `db:"game_type"`
	BetAmount int64     `db:"bet_amount"`
	WinAmount int64     `db:"win_amount"`
	Result    string    `db:"result"` // human-readable outcome description
	PlayedAt  time.Time `db:"played_at"`
}

// NetChange returns the balance delta this game produced
func (g *GameRecord) NetChange() int64 {
	return g.WinAmount - g.BetAmount
}

// IsWin returns true if the game paid out anything
func (g *GameRecord) IsWin() bool {
	return g.WinAmount > 0
}
