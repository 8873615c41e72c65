// Package history records settled blackjack rounds and stores them as TOML.
package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
)

// Session is a run of rounds played from one starting bank.
type Session struct {
	ID           string    `toml:"session"`
	StartingBank int       `toml:"starting_bank"`
	Seed         int64     `toml:"seed,omitzero"`
	Started      time.Time `toml:"started"`
	Rounds       []Round   `toml:"rounds"`
}

// Round is one settled round. Cards use two character codes ("Th", "As").
type Round struct {
	ID          string    `toml:"id"`
	Dealt       time.Time `toml:"dealt"`
	Settled     time.Time `toml:"settled"`
	Stake       int       `toml:"stake"`
	Player      []string  `toml:"player"`
	Dealer      []string  `toml:"dealer"`
	PlayerScore int       `toml:"player_score"`
	DealerScore int       `toml:"dealer_score"`
	Outcome     string    `toml:"outcome"`
	Credit      int       `toml:"credit"`
	Bank        int       `toml:"bank"`
}

// Net returns the chips won or lost on the round
func (r Round) Net() int {
	return r.Credit - r.Stake
}

// PlayerCards parses the player's card codes
func (r Round) PlayerCards() ([]deck.Card, error) {
	return parseCodes(r.Player)
}

// DealerCards parses the dealer's card codes
func (r Round) DealerCards() ([]deck.Card, error) {
	return parseCodes(r.Dealer)
}

func parseCodes(codes []string) ([]deck.Card, error) {
	return deck.ParseCards(strings.Join(codes, ""))
}

// Validate checks that a decoded round is internally consistent
func (r Round) Validate() error {
	if err := gameid.Validate(r.ID); err != nil {
		return fmt.Errorf("round %q: %w", r.ID, err)
	}
	player, err := r.PlayerCards()
	if err != nil {
		return fmt.Errorf("round %s: player cards: %w", r.ID, err)
	}
	dealer, err := r.DealerCards()
	if err != nil {
		return fmt.Errorf("round %s: dealer cards: %w", r.ID, err)
	}
	if got := game.Score(player); got != r.PlayerScore {
		return fmt.Errorf("round %s: player score %d does not match cards (%d)", r.ID, r.PlayerScore, got)
	}
	if got := game.Score(dealer); got != r.DealerScore {
		return fmt.Errorf("round %s: dealer score %d does not match cards (%d)", r.ID, r.DealerScore, got)
	}
	outcome := game.ParseOutcome(r.Outcome)
	if outcome == game.OutcomeNone {
		return fmt.Errorf("round %s: unknown outcome %q", r.ID, r.Outcome)
	}
	if want := r.Stake * outcome.Payout(); r.Credit != want {
		return fmt.Errorf("round %s: credit %d does not match %s on stake %d", r.ID, r.Credit, outcome, r.Stake)
	}
	return nil
}

// Net returns the session's total chips won or lost
func (s *Session) Net() int {
	var net int
	for _, r := range s.Rounds {
		net += r.Net()
	}
	return net
}

// FinalBank returns the bank after the last round, or the starting bank
// when no round was played
func (s *Session) FinalBank() int {
	if len(s.Rounds) == 0 {
		return s.StartingBank
	}
	return s.Rounds[len(s.Rounds)-1].Bank
}
