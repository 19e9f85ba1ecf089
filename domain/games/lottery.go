package games

import (
	"fmt"
	"sort"
	"strings"

	"casino/domain/entities"
)

// Lottery draw space: 6 unique numbers out of [1,49].
const (
	LotteryPickCount = 6
	LotteryMaxNumber = 49
)

// lotteryPayouts maps the match count to a fixed point prize. These are
// absolute amounts, not multiples of the bet; two or fewer matches pay
// nothing.
var lotteryPayouts = map[int]int64{
	6: 1000000,
	5: 10000,
	4: 1000,
	3: 100,
}

type lottery struct{}

// NewLottery creates the lottery variant: the player picks 6 unique numbers
// in [1,49] and is paid by how many appear in the 6 drawn numbers.
func NewLottery() Variant {
	return lottery{}
}

func (lottery) Type() entities.GameType {
	return entities.GameTypeLottery
}

func (lottery) ValidateParams(p entities.PlayParams) error {
	if len(p.Numbers) != LotteryPickCount {
		return fmt.Errorf("%w: exactly %d numbers required, got %d",
			entities.ErrInvalidGameParameters, LotteryPickCount, len(p.Numbers))
	}
	seen := make(map[int]bool, LotteryPickCount)
	for _, n := range p.Numbers {
		if n < 1 || n > LotteryMaxNumber {
			return fmt.Errorf("%w: number %d is outside 1-%d",
				entities.ErrInvalidGameParameters, n, LotteryMaxNumber)
		}
		if seen[n] {
			return fmt.Errorf("%w: numbers must be unique, %d repeats",
				entities.ErrInvalidGameParameters, n)
		}
		seen[n] = true
	}
	return nil
}

func (lottery) Draw(r *Rand, p entities.PlayParams) Outcome {
	drawn := r.Sample(LotteryMaxNumber, LotteryPickCount)
	sort.Ints(drawn)

	var o LotteryOutcome
	copy(o.Drawn[:], drawn)
	o.Picks = append([]int(nil), p.Numbers...)
	return o
}

func (lottery) Resolve(betAmount int64, o Outcome) Payout {
	lo := o.(LotteryOutcome)
	if prize, ok := lotteryPayouts[lo.Matches()]; ok {
		return win(prize)
	}
	return loss()
}

// LotteryOutcome is one draw compared against the player's picks.
type LotteryOutcome struct {
	Drawn [LotteryPickCount]int // ascending
	Picks []int
}

// Matches counts how many picks appear in the drawn set
func (l LotteryOutcome) Matches() int {
	drawn := make(map[int]bool, LotteryPickCount)
	for _, n := range l.Drawn {
		drawn[n] = true
	}
	matches := 0
	for _, n := range l.Picks {
		if drawn[n] {
			matches++
		}
	}
	return matches
}

func (l LotteryOutcome) Describe() string {
	return fmt.Sprintf("Numbers: %s, drawn: %s, matches: %d",
		joinInts(l.Picks), joinInts(l.Drawn[:]), l.Matches())
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}
