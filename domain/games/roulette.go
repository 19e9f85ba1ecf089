package games

import (
	"fmt"
	"strconv"

	"casino/domain/entities"
)

// Roulette bet types.
const (
	RouletteBetNumber  = "number"
	RouletteBetColor   = "color"
	RouletteBetEvenOdd = "even_odd"
	RouletteBetHighLow = "high_low"
	RouletteBetDozen   = "dozen"
	RouletteBetColumn  = "column"
)

// Payout multiples on the stake. A straight number (and green, which only
// zero satisfies) returns 36x the bet, i.e. 35:1 plus the stake back.
const (
	RouletteStraightMultiplier = 36
	RouletteEvenMultiplier     = 2 // 1:1 bets: color, even/odd, high/low
	RouletteThirdMultiplier    = 3 // 2:1 bets: dozen, column
)

var rouletteReds = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type roulette struct{}

// NewRoulette creates the roulette variant: one pocket in [0,36], zero is
// green and satisfies only the straight-number and green color bets.
func NewRoulette() Variant {
	return roulette{}
}

func (roulette) Type() entities.GameType {
	return entities.GameTypeRoulette
}

func (roulette) ValidateParams(p entities.PlayParams) error {
	switch p.BetType {
	case RouletteBetNumber:
		n, err := strconv.Atoi(p.BetValue)
		if err != nil || n < 0 || n > 36 {
			return fmt.Errorf("%w: number bet must name a pocket 0-36", entities.ErrInvalidGameParameters)
		}
	case RouletteBetColor:
		if p.BetValue != "red" && p.BetValue != "black" && p.BetValue != "green" {
			return fmt.Errorf("%w: color bet must be red, black or green", entities.ErrInvalidGameParameters)
		}
	case RouletteBetEvenOdd:
		if p.BetValue != "even" && p.BetValue != "odd" {
			return fmt.Errorf("%w: even_odd bet must be even or odd", entities.ErrInvalidGameParameters)
		}
	case RouletteBetHighLow:
		if p.BetValue != "high" && p.BetValue != "low" {
			return fmt.Errorf("%w: high_low bet must be high or low", entities.ErrInvalidGameParameters)
		}
	case RouletteBetDozen:
		if p.BetValue != "first" && p.BetValue != "second" && p.BetValue != "third" {
			return fmt.Errorf("%w: dozen bet must be first, second or third", entities.ErrInvalidGameParameters)
		}
	case RouletteBetColumn:
		if p.BetValue != "1" && p.BetValue != "2" && p.BetValue != "3" {
			return fmt.Errorf("%w: column bet must be 1, 2 or 3", entities.ErrInvalidGameParameters)
		}
	default:
		return fmt.Errorf("%w: unknown roulette bet type %q", entities.ErrInvalidGameParameters, p.BetType)
	}
	return nil
}

func (roulette) Draw(r *Rand, p entities.PlayParams) Outcome {
	return RouletteOutcome{Number: r.Intn(37), BetType: p.BetType, BetValue: p.BetValue}
}

func (roulette) Resolve(betAmount int64, o Outcome) Payout {
	ro := o.(RouletteOutcome)
	n := ro.Number

	switch ro.BetType {
	case RouletteBetNumber:
		if strconv.Itoa(n) == ro.BetValue {
			return win(betAmount * RouletteStraightMultiplier)
		}
	case RouletteBetColor:
		switch ro.BetValue {
		case "red":
			if rouletteReds[n] {
				return win(betAmount * RouletteEvenMultiplier)
			}
		case "black":
			if n != 0 && !rouletteReds[n] {
				return win(betAmount * RouletteEvenMultiplier)
			}
		case "green":
			if n == 0 {
				return win(betAmount * RouletteStraightMultiplier)
			}
		}
	case RouletteBetEvenOdd:
		if n != 0 {
			if (ro.BetValue == "even" && n%2 == 0) || (ro.BetValue == "odd" && n%2 == 1) {
				return win(betAmount * RouletteEvenMultiplier)
			}
		}
	case RouletteBetHighLow:
		if (ro.BetValue == "high" && n >= 19 && n <= 36) || (ro.BetValue == "low" && n >= 1 && n <= 18) {
			return win(betAmount * RouletteEvenMultiplier)
		}
	case RouletteBetDozen:
		if dozenOf(n) == ro.BetValue {
			return win(betAmount * RouletteThirdMultiplier)
		}
	case RouletteBetColumn:
		if n != 0 && strconv.Itoa((n-1)%3+1) == ro.BetValue {
			return win(betAmount * RouletteThirdMultiplier)
		}
	}

	return loss()
}

func dozenOf(n int) string {
	switch {
	case n >= 1 && n <= 12:
		return "first"
	case n >= 13 && n <= 24:
		return "second"
	case n >= 25 && n <= 36:
		return "third"
	default:
		return ""
	}
}

// RouletteOutcome is one wheel spin evaluated against the placed bet.
type RouletteOutcome struct {
	Number   int
	BetType  string
	BetValue string
}

// Color returns red, black or green for the pocket
func (r RouletteOutcome) Color() string {
	switch {
	case r.Number == 0:
		return "green"
	case rouletteReds[r.Number]:
		return "red"
	default:
		return "black"
	}
}

func (r RouletteOutcome) Describe() string {
	return fmt.Sprintf("Bet: %s %s, winning number: %d (%s)", r.BetType, r.BetValue, r.Number, r.Color())
}
