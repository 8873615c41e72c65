package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(stake int) RoundResult {
	return RoundResult{Outcome: game.OutcomeWin, Stake: stake, Net: stake, PlayerCards: 2}
}

func loss(stake int) RoundResult {
	return RoundResult{Outcome: game.OutcomeLoss, Stake: stake, Net: -stake, PlayerCards: 2}
}

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.9))
	assert.Zero(t, stats.Rate(game.OutcomeWin))
	assert.Zero(t, stats.HouseEdge())
	assert.Error(t, stats.Validate(), "no rounds recorded")
}

func TestStatisticsSingleRound(t *testing.T) {
	stats := &Statistics{}
	stats.Add(win(10))

	assert.Equal(t, 1, stats.Rounds)
	assert.Equal(t, 10.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 10.0, stats.Median())
	assert.Equal(t, 1.0, stats.Rate(game.OutcomeWin))
	assert.Equal(t, 10, stats.BiggestWin)
	assert.NoError(t, stats.Validate())
}

func TestStatisticsMoments(t *testing.T) {
	stats := &Statistics{}
	for _, r := range []RoundResult{win(10), loss(10), win(10), loss(10), {Outcome: game.OutcomePush, Stake: 10}} {
		stats.Add(r)
	}

	assert.Equal(t, 5, stats.Rounds)
	assert.Zero(t, stats.Mean())
	assert.InDelta(t, 100.0, stats.Variance(), 1e-9)
	assert.InDelta(t, 10.0, stats.StdDev(), 1e-9)
	assert.InDelta(t, 10.0/math.Sqrt(5), stats.StdError(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.InDelta(t, -1.96*stats.StdError(), low, 1e-9)
	assert.InDelta(t, 1.96*stats.StdError(), high, 1e-9)

	assert.Zero(t, stats.Median())
	assert.Equal(t, -10.0, stats.Percentile(0))
	assert.Equal(t, 10.0, stats.Percentile(1))
	assert.Equal(t, 50, stats.Wagered)
	assert.Zero(t, stats.HouseEdge())
	require.NoError(t, stats.Validate())
}

func TestStatisticsOutcomeBuckets(t *testing.T) {
	stats := &Statistics{}
	stats.Add(win(20))
	stats.Add(RoundResult{Outcome: game.OutcomeWin, Stake: 10, Net: 10, PlayerCards: 2, DealerBust: true})
	stats.Add(RoundResult{Outcome: game.OutcomeBust, Stake: 10, Net: -10, PlayerCards: 4})
	stats.Add(loss(50))

	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Busts)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.DealerBusts)
	assert.Equal(t, 30, stats.WinNet)
	assert.Equal(t, -50, stats.LossNet)
	assert.Equal(t, -10, stats.BustNet)
	assert.Equal(t, -50, stats.BiggestLoss)
	assert.Equal(t, 20, stats.BiggestWin)
	assert.Equal(t, 2, stats.CardsDrawn)
	assert.Equal(t, 0.25, stats.Rate(game.OutcomeBust))
	assert.InDelta(t, 30.0/90.0, stats.HouseEdge(), 1e-9)
	assert.True(t, stats.IsLedgerBalanced())
	assert.NoError(t, stats.Validate())
}

func TestStatisticsMerge(t *testing.T) {
	a, b, all := &Statistics{}, &Statistics{}, &Statistics{}
	results := []RoundResult{win(10), loss(25), win(5), {Outcome: game.OutcomeBust, Stake: 5, Net: -5, PlayerCards: 3}}
	for i, r := range results {
		all.Add(r)
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}

	a.Merge(b)
	assert.Equal(t, all.Rounds, a.Rounds)
	assert.InDelta(t, all.Mean(), a.Mean(), 1e-9)
	assert.InDelta(t, all.Variance(), a.Variance(), 1e-9)
	assert.Equal(t, all.Median(), a.Median())
	assert.Equal(t, all.BiggestLoss, a.BiggestLoss)
	assert.Equal(t, all.Wagered, a.Wagered)
	assert.NoError(t, a.Validate())
}

func TestStatisticsValidateCatchesDrift(t *testing.T) {
	stats := &Statistics{}
	stats.Add(win(10))
	stats.WinNet = 0
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")

	stats = &Statistics{}
	stats.Add(win(10))
	stats.Values = nil
	assert.ErrorContains(t, stats.Validate(), "values array length")

	stats = &Statistics{}
	stats.Add(win(10))
	stats.Pushes++
	assert.ErrorContains(t, stats.Validate(), "outcome counts")
}

func TestRoundFromEvent(t *testing.T) {
	e := game.RoundSettledEvent{
		Outcome:     game.OutcomeWin,
		PlayerHand:  deck.MustParseCards("5h7cTd"),
		DealerHand:  deck.MustParseCards("Ts6dKh"),
		PlayerScore: 20,
		DealerScore: 26,
		Stake:       25,
		Credit:      50,
	}

	r := RoundFromEvent(e)
	assert.Equal(t, game.OutcomeWin, r.Outcome)
	assert.Equal(t, 25, r.Stake)
	assert.Equal(t, 25, r.Net)
	assert.Equal(t, 3, r.PlayerCards)
	assert.True(t, r.DealerBust)
}
