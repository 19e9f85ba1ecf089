package entities

// GameType identifies a casino game variant.
type GameType string

const (
	// GameTypeNone marks a profile with no plays recorded yet.
	GameTypeNone      GameType = ""
	GameTypeDice      GameType = "dice"
	GameTypeSlots     GameType = "slots"
	GameTypeBlackjack GameType = "blackjack"
	GameTypeRoulette  GameType = "roulette"
	GameTypePoker     GameType = "poker"
	GameTypeLottery   GameType = "lottery"
)

// String returns the string representation of the game type
func (g GameType) String() string {
	return string(g)
}

// PlayOutcome classifies a resolution from the player's perspective.
// A push returns the stake with no profit and leaves streaks untouched.
type PlayOutcome string

const (
	OutcomeWin  PlayOutcome = "win"
	OutcomeLoss PlayOutcome = "loss"
	OutcomePush PlayOutcome = "push"
)

// PlayParams carries the game-specific bet parameters of a play request.
// Only the fields relevant to the requested game are consulted; dice reads
// Guess, roulette reads BetType/BetValue, lottery reads Numbers.
type PlayParams struct {
	Guess    int    // dice: guessed face 1-6
	BetType  string // roulette: number|color|even_odd|high_low|dozen|column
	BetValue string // roulette: value matching BetType
	Numbers  []int  // lottery: exactly 6 unique picks in [1,49]
}

// PlayResult is returned to the caller after a resolved game.
type PlayResult struct {
	GameType    GameType
	Outcome     PlayOutcome
	Description string
	BetAmount   int64
	WinAmount   int64
	NewBalance  int64
}

// IsWin returns true if the play paid out more than it cost
func (r *PlayResult) IsWin() bool {
	return r.Outcome == OutcomeWin
}

// NetChange returns the balance delta of the play
func (r *PlayResult) NetChange() int64 {
	return r.WinAmount - r.BetAmount
}
