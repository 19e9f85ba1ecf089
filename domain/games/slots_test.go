package games

import (
	"testing"

	"casino/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSlots_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		reels     [3]Symbol
		wantWin   int64
		wantClass entities.PlayOutcome
	}{
		{
			name:      "triple diamonds jackpot",
			reels:     [3]Symbol{SymbolDiamond, SymbolDiamond, SymbolDiamond},
			wantWin:   5000,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "triple sevens",
			reels:     [3]Symbol{SymbolSeven, SymbolSeven, SymbolSeven},
			wantWin:   2000,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "triple stars",
			reels:     [3]Symbol{SymbolStar, SymbolStar, SymbolStar},
			wantWin:   1500,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "ordinary triple",
			reels:     [3]Symbol{SymbolCherry, SymbolCherry, SymbolCherry},
			wantWin:   1000,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "pair on first two reels",
			reels:     [3]Symbol{SymbolBell, SymbolBell, SymbolLemon},
			wantWin:   200,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "pair on last two reels",
			reels:     [3]Symbol{SymbolLemon, SymbolBell, SymbolBell},
			wantWin:   200,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "pair on outer reels",
			reels:     [3]Symbol{SymbolBell, SymbolLemon, SymbolBell},
			wantWin:   200,
			wantClass: entities.OutcomeWin,
		},
		{
			name:      "no match",
			reels:     [3]Symbol{SymbolCherry, SymbolLemon, SymbolOrange},
			wantWin:   0,
			wantClass: entities.OutcomeLoss,
		},
	}

	s := NewSlots()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout := s.Resolve(100, SlotsOutcome{Reels: tt.reels})
			assert.Equal(t, tt.wantWin, payout.WinAmount)
			assert.Equal(t, tt.wantClass, payout.Outcome)
		})
	}
}

func TestSlots_Draw_ReelsFromAlphabet(t *testing.T) {
	s := NewSlots()
	r := NewRand(42)

	valid := make(map[Symbol]bool)
	for _, sym := range slotSymbols {
		valid[sym] = true
	}

	for i := 0; i < 100; i++ {
		o := s.Draw(r, entities.PlayParams{}).(SlotsOutcome)
		for _, reel := range o.Reels {
			assert.True(t, valid[reel], "unknown symbol %q", reel)
		}
	}
}
