package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/blackjack/internal/game"
)

// RoundResult is one settled round as seen by the statistics
type RoundResult struct {
	Outcome     game.Outcome
	Stake       int
	Net         int // chips won or lost, stake excluded
	PlayerCards int
	DealerBust  bool
}

// RoundFromEvent builds a result from the engine's settlement event
func RoundFromEvent(e game.RoundSettledEvent) RoundResult {
	return RoundResult{
		Outcome:     e.Outcome,
		Stake:       e.Stake,
		Net:         e.Net(),
		PlayerCards: len(e.PlayerHand),
		DealerBust:  e.Outcome != game.OutcomeBust && e.DealerScore > game.BustLimit,
	}
}

// Statistics accumulates results over many rounds. The zero value is ready
// to use.
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Every net result, for median/percentile

	Wins        int
	Losses      int
	Pushes      int
	Busts       int
	DealerBusts int

	Wagered int
	WinNet  int // chips from wins
	LossNet int // chips from dealer wins, negative
	BustNet int // chips from player busts, negative

	BiggestWin  int
	BiggestLoss int // most negative net seen
	CardsDrawn  int // player cards beyond the first two
}

// Add incorporates a round result
func (s *Statistics) Add(r RoundResult) {
	net := float64(r.Net)
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += r.Stake

	switch r.Outcome {
	case game.OutcomeWin:
		s.Wins++
		s.WinNet += r.Net
	case game.OutcomeLoss:
		s.Losses++
		s.LossNet += r.Net
	case game.OutcomePush:
		s.Pushes++
	case game.OutcomeBust:
		s.Busts++
		s.BustNet += r.Net
	}
	if r.DealerBust {
		s.DealerBusts++
	}

	s.BiggestWin = max(s.BiggestWin, r.Net)
	s.BiggestLoss = min(s.BiggestLoss, r.Net)
	if r.PlayerCards > 2 {
		s.CardsDrawn += r.PlayerCards - 2
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Busts += other.Busts
	s.DealerBusts += other.DealerBusts
	s.Wagered += other.Wagered
	s.WinNet += other.WinNet
	s.LossNet += other.LossNet
	s.BustNet += other.BustNet
	s.BiggestWin = max(s.BiggestWin, other.BiggestWin)
	s.BiggestLoss = min(s.BiggestLoss, other.BiggestLoss)
	s.CardsDrawn += other.CardsDrawn
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns the share of rounds that ended with outcome
func (s *Statistics) Rate(outcome game.Outcome) float64 {
	if s.Rounds == 0 {
		return 0
	}
	var n int
	switch outcome {
	case game.OutcomeWin:
		n = s.Wins
	case game.OutcomeLoss:
		n = s.Losses
	case game.OutcomePush:
		n = s.Pushes
	case game.OutcomeBust:
		n = s.Busts
	}
	return float64(n) / float64(s.Rounds)
}

// HouseEdge returns the player's loss per chip wagered; negative when the
// player came out ahead
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -s.SumNet / float64(s.Wagered)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks that per-outcome chip totals add up to the net
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.SumNet-float64(s.WinNet+s.LossNet+s.BustNet)) <= 1e-6
}

// Validate performs consistency checks over the accumulated data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net=%.0f, wins=%d, losses=%d, busts=%d",
			s.SumNet, s.WinNet, s.LossNet, s.BustNet)
	}

	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	if total := s.Wins + s.Losses + s.Pushes + s.Busts; total != s.Rounds {
		return fmt.Errorf("outcome counts (%d) do not match rounds count (%d)", total, s.Rounds)
	}

	if s.DealerBusts > s.Wins {
		return fmt.Errorf("dealer busts (%d) exceed wins (%d)", s.DealerBusts, s.Wins)
	}

	return nil
}
