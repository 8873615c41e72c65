package history

import (
	"github.com/google/uuid"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// Recorder builds a Session from engine events. Subscribe it to an engine;
// it is driven on the engine's goroutine and needs no locking.
type Recorder struct {
	session Session
	pending *Round
	onRound func(Round)
}

// NewRecorder starts recording into session. An empty session ID is
// replaced with a random UUID.
func NewRecorder(session Session) *Recorder {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	return &Recorder{session: session}
}

// OnRound registers a callback invoked after each round is recorded
func (r *Recorder) OnRound(fn func(Round)) {
	r.onRound = fn
}

// OnEvent implements game.EventSubscriber
func (r *Recorder) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		r.pending = &Round{
			ID:    e.RoundID,
			Dealt: e.Timestamp(),
			Stake: e.Stake,
		}
	case game.RoundSettledEvent:
		round := Round{ID: e.RoundID, Dealt: e.Timestamp(), Stake: e.Stake}
		if r.pending != nil && r.pending.ID == e.RoundID {
			round = *r.pending
		}
		r.pending = nil

		round.Settled = e.Timestamp()
		round.Player = deck.Codes(e.PlayerHand)
		round.Dealer = deck.Codes(e.DealerHand)
		round.PlayerScore = e.PlayerScore
		round.DealerScore = e.DealerScore
		round.Outcome = e.Outcome.String()
		round.Credit = e.Credit
		round.Bank = e.Bank

		r.session.Rounds = append(r.session.Rounds, round)
		if r.onRound != nil {
			r.onRound(round)
		}
	}
}

// Session returns a copy of everything recorded so far
func (r *Recorder) Session() *Session {
	s := r.session
	s.Rounds = append([]Round(nil), r.session.Rounds...)
	return &s
}

// Len returns the number of rounds recorded
func (r *Recorder) Len() int {
	return len(r.session.Rounds)
}
