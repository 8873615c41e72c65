package game

import (
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

// Snapshot is a read-only copy of everything a renderer needs after a
// command. The dealer fields already respect the hole card.
type Snapshot struct {
	State   RoundState
	RoundID string

	PlayerHand  []deck.Card
	PlayerScore int

	DealerHand         []deck.Card
	DealerHidden       bool
	DealerScore        int
	DealerScoreVisible bool

	Bank       int
	CurrentBet int
	LastBet    int

	Outcome Outcome
	Message string

	ValidCommands []Command
}

// Snapshot captures the engine's observable state
func (e *Engine) Snapshot() Snapshot {
	dealerScore, visible := e.DealerScore()
	return Snapshot{
		State:              e.state,
		RoundID:            e.roundID,
		PlayerHand:         e.PlayerHand(),
		PlayerScore:        e.PlayerScore(),
		DealerHand:         e.DealerHand(),
		DealerHidden:       e.DealerHidden(),
		DealerScore:        dealerScore,
		DealerScoreVisible: visible,
		Bank:               e.ledger.Bank(),
		CurrentBet:         e.ledger.CurrentBet(),
		LastBet:            e.ledger.LastBet(),
		Outcome:            e.outcome,
		Message:            e.message,
		ValidCommands:      e.ValidCommands(),
	}
}

// Can reports whether cmd was valid when the snapshot was taken
func (s Snapshot) Can(cmd Command) bool {
	return slices.Contains(s.ValidCommands, cmd)
}
