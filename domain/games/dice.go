package games

import (
	"fmt"

	"casino/domain/entities"
)

// DiceMultiplier is the payout multiple for an exact guess.
const DiceMultiplier = 5

type dice struct{}

// NewDice creates the dice variant: guess a face 1-6, an exact match pays 5x.
func NewDice() Variant {
	return dice{}
}

func (dice) Type() entities.GameType {
	return entities.GameTypeDice
}

func (dice) ValidateParams(p entities.PlayParams) error {
	if p.Guess < 1 || p.Guess > 6 {
		return fmt.Errorf("%w: guess must be between 1 and 6", entities.ErrInvalidGameParameters)
	}
	return nil
}

func (dice) Draw(r *Rand, p entities.PlayParams) Outcome {
	return DiceOutcome{Roll: 1 + r.Intn(6), Guess: p.Guess}
}

func (dice) Resolve(betAmount int64, o Outcome) Payout {
	d := o.(DiceOutcome)
	if d.Roll == d.Guess {
		return win(betAmount * DiceMultiplier)
	}
	return loss()
}

// DiceOutcome is a single die roll against the player's guess.
type DiceOutcome struct {
	Roll  int
	Guess int
}

func (d DiceOutcome) Describe() string {
	return fmt.Sprintf("Rolled %d, guessed %d", d.Roll, d.Guess)
}
