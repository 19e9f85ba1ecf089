package games

import (
	"fmt"
	"sort"
	"strings"

	"casino/domain/entities"
)

// PokerWinMultiplier is the even-money payout for the higher-ranked hand.
const PokerWinMultiplier = 2

// HandRank orders five-card poker hands. Hands of equal rank push
// regardless of card values; kickers are not compared.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns the display name of the hand rank
func (hr HandRank) String() string {
	switch hr {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	default:
		return "High Card"
	}
}

// Card is one card of the standard 52-card deck. Rank runs 2-14 with the
// ace always high; Suit is one of the four suit runes.
type Card struct {
	Rank int
	Suit rune
}

var pokerSuits = []rune{'♠', '♥', '♦', '♣'}

// String formats the card as rank then suit, e.g. "A♠" or "10♥"
func (c Card) String() string {
	return rankName(c.Rank) + string(c.Suit)
}

func rankName(rank int) string {
	switch rank {
	case 14:
		return "A"
	case 13:
		return "K"
	case 12:
		return "Q"
	case 11:
		return "J"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

type poker struct{}

// NewPoker creates the five-card draw variant: ten cards dealt without
// replacement, five to the player and five to the dealer, higher hand rank
// wins even money and equal ranks push.
func NewPoker() Variant {
	return poker{}
}

func (poker) Type() entities.GameType {
	return entities.GameTypePoker
}

func (poker) ValidateParams(p entities.PlayParams) error {
	return nil
}

func (poker) Draw(r *Rand, p entities.PlayParams) Outcome {
	deck := newDeck()
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var o PokerOutcome
	copy(o.PlayerHand[:], deck[:5])
	copy(o.DealerHand[:], deck[5:10])
	return o
}

func (poker) Resolve(betAmount int64, o Outcome) Payout {
	po := o.(PokerOutcome)
	playerRank := EvaluateHand(po.PlayerHand)
	dealerRank := EvaluateHand(po.DealerHand)

	switch {
	case playerRank > dealerRank:
		return win(betAmount * PokerWinMultiplier)
	case playerRank < dealerRank:
		return loss()
	default:
		return push(betAmount)
	}
}

func newDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range pokerSuits {
		for rank := 2; rank <= 14; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// EvaluateHand classifies a five-card hand. The straight detection treats
// the ace as high only; A-2-3-4-5 is not a straight here.
func EvaluateHand(hand [5]Card) HandRank {
	values := make([]int, 5)
	suits := make(map[rune]int)
	counts := make(map[int]int)
	for i, c := range hand {
		values[i] = c.Rank
		suits[c.Suit]++
		counts[c.Rank]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	isFlush := len(suits) == 1

	isStraight := true
	for i := 1; i < 5; i++ {
		if values[i] != values[0]-i {
			isStraight = false
			break
		}
	}

	groups := make([]int, 0, 5)
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))

	switch {
	case isStraight && isFlush:
		return StraightFlush
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case isFlush:
		return Flush
	case isStraight:
		return Straight
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// PokerOutcome is one dealt round of five-card draw.
type PokerOutcome struct {
	PlayerHand [5]Card
	DealerHand [5]Card
}

func (p PokerOutcome) Describe() string {
	return fmt.Sprintf("Player: %s (%s), Dealer: %s (%s)",
		handString(p.PlayerHand), EvaluateHand(p.PlayerHand),
		handString(p.DealerHand), EvaluateHand(p.DealerHand))
}

func handString(hand [5]Card) string {
	parts := make([]string, 5)
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
