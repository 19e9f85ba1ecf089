package entities

import "time"

// Profile tracks a user's lifetime play statistics. It is created lazily on
// the first resolved game and mutated after every resolution.
type Profile struct {
	UserID        string    `db:"user_id"`
	TotalWins     int       `db:"total_wins"`
	TotalLosses   int       `db:"total_losses"`
	WinStreak     int       `db:"win_streak"`
	BestWinStreak int       `db:"best_win_streak"`
	FavoriteGame  GameType  `db:"favorite_game"`
	XP            int64     `db:"xp"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// XPPerBetDivisor converts wagered points into experience: xp += bet / 10.
const XPPerBetDivisor = 10

// ApplyResult updates the profile counters for a resolved game.
// Pushes leave the win/loss counters and streak untouched.
func (p *Profile) ApplyResult(game GameType, betAmount int64, outcome PlayOutcome) {
	switch outcome {
	case OutcomeWin:
		p.TotalWins++
		p.WinStreak++
		if p.WinStreak > p.BestWinStreak {
			p.BestWinStreak = p.WinStreak
		}
	case OutcomeLoss:
		p.TotalLosses++
		p.WinStreak = 0
	}

	p.FavoriteGame = game
	p.XP += betAmount / XPPerBetDivisor
}

// TotalGames returns the number of win/loss resolutions recorded
func (p *Profile) TotalGames() int {
	return p.TotalWins + p.TotalLosses
}

// WinPercentage computes the win rate over decided games
func (p *Profile) WinPercentage() float64 {
	if p.TotalGames() == 0 {
		return 0
	}
	return float64(p.TotalWins) / float64(p.TotalGames()) * 100
}
