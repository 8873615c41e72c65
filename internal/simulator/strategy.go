package simulator

import (
	"github.com/lox/blackjack/internal/game"
)

// Strategy decides stakes and hit/stand for simulated play
type Strategy interface {
	// Bet returns the stake for the next round given the bank. Zero or a
	// stake the bank cannot cover ends the session.
	Bet(bank int) int
	// Hit reports whether to draw another card
	Hit(table game.Snapshot) bool
}

// FlatStrategy bets the same amount every round and hits below StandOn,
// mirroring the dealer when StandOn is 17
type FlatStrategy struct {
	BaseBet int
	StandOn int
}

func (f FlatStrategy) Bet(bank int) int {
	if bank < f.BaseBet {
		return 0
	}
	return f.BaseBet
}

func (f FlatStrategy) Hit(table game.Snapshot) bool {
	return table.PlayerScore < f.StandOn
}
