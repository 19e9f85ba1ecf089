// Package games implements the casino game variants: the per-game draw from
// a uniform randomness source and the pure payout resolution that maps a bet
// and an outcome to a win amount. Nothing in this package touches storage;
// settlement is the orchestrator's job.
package games

import (
	"casino/domain/entities"
)

// Outcome is one random draw from a variant's outcome space.
type Outcome interface {
	// Describe returns the human-readable result recorded in the audit log
	Describe() string
}

// Payout is the resolved value of an outcome for a given stake.
type Payout struct {
	WinAmount int64
	Outcome   entities.PlayOutcome
}

// Variant is a single casino game plugged into the play orchestration:
// parameter validation, one draw, and a deterministic payout. Implementations
// must be stateless; Resolve in particular is a pure function of its inputs.
type Variant interface {
	Type() entities.GameType

	// ValidateParams rejects malformed bet parameters before any randomness
	// is drawn. Errors wrap entities.ErrInvalidGameParameters.
	ValidateParams(p entities.PlayParams) error

	// Draw produces one outcome from the variant's outcome space.
	// It must only be called with params that passed ValidateParams.
	Draw(r *Rand, p entities.PlayParams) Outcome

	// Resolve computes the gross payout for an outcome. The win amount may
	// include the returned stake (e.g. a push pays exactly the bet).
	Resolve(betAmount int64, o Outcome) Payout
}

func win(amount int64) Payout {
	return Payout{WinAmount: amount, Outcome: entities.OutcomeWin}
}

func loss() Payout {
	return Payout{Outcome: entities.OutcomeLoss}
}

func push(betAmount int64) Payout {
	return Payout{WinAmount: betAmount, Outcome: entities.OutcomePush}
}
