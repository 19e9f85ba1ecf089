package games

import (
	"fmt"

	"casino/domain/entities"
)

// Blackjack payout multipliers. A natural 21 pays 2.5x floored to an
// integer; an ordinary win or a dealer bust pays even money on the stake.
const (
	BlackjackNaturalNumerator   = 5 // 2.5x expressed as 5/2
	BlackjackNaturalDenominator = 2
	BlackjackWinMultiplier      = 2
)

type blackjack struct{}

// NewBlackjack creates the simplified blackjack variant: two card values per
// hand drawn from [1,11], no hit/stand round.
func NewBlackjack() Variant {
	return blackjack{}
}

func (blackjack) Type() entities.GameType {
	return entities.GameTypeBlackjack
}

func (blackjack) ValidateParams(p entities.PlayParams) error {
	return nil
}

func (blackjack) Draw(r *Rand, p entities.PlayParams) Outcome {
	draw := func() [2]int {
		return [2]int{1 + r.Intn(11), 1 + r.Intn(11)}
	}
	return BlackjackOutcome{PlayerCards: draw(), DealerCards: draw()}
}

func (blackjack) Resolve(betAmount int64, o Outcome) Payout {
	b := o.(BlackjackOutcome)
	player := b.PlayerScore()
	dealer := b.DealerScore()

	switch {
	case player == 21 && dealer != 21:
		return win(betAmount * BlackjackNaturalNumerator / BlackjackNaturalDenominator)
	case player > 21:
		return loss()
	case dealer > 21:
		return win(betAmount * BlackjackWinMultiplier)
	case player > dealer:
		return win(betAmount * BlackjackWinMultiplier)
	case player < dealer:
		return loss()
	default:
		return push(betAmount)
	}
}

// BlackjackOutcome is one dealt round: two point-value cards each.
type BlackjackOutcome struct {
	PlayerCards [2]int
	DealerCards [2]int
}

// PlayerScore returns the player's hand total
func (b BlackjackOutcome) PlayerScore() int {
	return b.PlayerCards[0] + b.PlayerCards[1]
}

// DealerScore returns the dealer's hand total
func (b BlackjackOutcome) DealerScore() int {
	return b.DealerCards[0] + b.DealerCards[1]
}

func (b BlackjackOutcome) Describe() string {
	return fmt.Sprintf("Player %v (%d) vs Dealer %v (%d)",
		b.PlayerCards, b.PlayerScore(), b.DealerCards, b.DealerScore())
}
