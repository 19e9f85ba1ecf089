package games

import (
	"fmt"

	"casino/domain/entities"
)

// Symbol is one slot machine reel symbol.
type Symbol string

// The 8-symbol reel alphabet, drawn uniformly.
var slotSymbols = []Symbol{
	SymbolCherry, SymbolLemon, SymbolOrange, SymbolGrape,
	SymbolBell, SymbolStar, SymbolDiamond, SymbolSeven,
}

const (
	SymbolCherry  Symbol = "cherry"
	SymbolLemon   Symbol = "lemon"
	SymbolOrange  Symbol = "orange"
	SymbolGrape   Symbol = "grape"
	SymbolBell    Symbol = "bell"
	SymbolStar    Symbol = "star"
	SymbolDiamond Symbol = "diamond"
	SymbolSeven   Symbol = "seven"
)

// Three-of-a-kind multipliers. Any triple not listed pays the base rate,
// any two matching reels pay double.
const (
	SlotsJackpotMultiplier = 50 // diamonds
	SlotsSevensMultiplier  = 20
	SlotsStarsMultiplier   = 15
	SlotsTripleMultiplier  = 10
	SlotsPairMultiplier    = 2
)

type slots struct{}

// NewSlots creates the slot machine variant: three independent reels.
func NewSlots() Variant {
	return slots{}
}

func (slots) Type() entities.GameType {
	return entities.GameTypeSlots
}

func (slots) ValidateParams(p entities.PlayParams) error {
	return nil
}

func (slots) Draw(r *Rand, p entities.PlayParams) Outcome {
	var reels [3]Symbol
	for i := range reels {
		reels[i] = slotSymbols[r.Intn(len(slotSymbols))]
	}
	return SlotsOutcome{Reels: reels}
}

func (slots) Resolve(betAmount int64, o Outcome) Payout {
	reels := o.(SlotsOutcome).Reels

	if reels[0] == reels[1] && reels[1] == reels[2] {
		switch reels[0] {
		case SymbolDiamond:
			return win(betAmount * SlotsJackpotMultiplier)
		case SymbolSeven:
			return win(betAmount * SlotsSevensMultiplier)
		case SymbolStar:
			return win(betAmount * SlotsStarsMultiplier)
		default:
			return win(betAmount * SlotsTripleMultiplier)
		}
	}

	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return win(betAmount * SlotsPairMultiplier)
	}

	return loss()
}

// SlotsOutcome is one spin of the three reels.
type SlotsOutcome struct {
	Reels [3]Symbol
}

func (s SlotsOutcome) Describe() string {
	return fmt.Sprintf("Reels: %s %s %s", s.Reels[0], s.Reels[1], s.Reels[2])
}
