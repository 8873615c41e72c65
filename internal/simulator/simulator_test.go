package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestNewDefaults(t *testing.T) {
	sim := New(Config{Rounds: 10})

	assert.Equal(t, 1, sim.config.Sessions)
	assert.Equal(t, game.DefaultStartingBank, sim.config.StartingBank)
	assert.NotZero(t, sim.Seed(), "zero seed replaced")
	assert.Equal(t, FlatStrategy{BaseBet: 10, StandOn: 17}, sim.config.Strategy)

	fixed := New(Config{Seed: 12345})
	assert.Equal(t, int64(12345), fixed.Seed())
}

func TestRunPlaysEveryRound(t *testing.T) {
	result, err := New(Config{
		Rounds:   50,
		Sessions: 3,
		Seed:     12345,
		Strategy: FlatStrategy{BaseBet: 10, StandOn: 17},
		Logger:   quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Sessions, 3)
	assert.Equal(t, 150, result.Stats.Rounds)
	assert.Equal(t, 1500, result.Stats.Wagered)
	require.NoError(t, result.Stats.Validate())

	for i, s := range result.Sessions {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, 50, s.Played)
		assert.False(t, s.Broke)
		assert.Nil(t, s.History, "history not recorded by default")
		assert.Equal(t, game.DefaultStartingBank+int(s.Stats.SumNet), s.FinalBank)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() *Result {
		result, err := RunSimulation(context.Background(), 100, 4, 777, FlatStrategy{BaseBet: 25, StandOn: 15}, quietLogger())
		require.NoError(t, err)
		return result
	}

	a, b := run(), run()
	assert.Equal(t, a.Stats.Values, b.Stats.Values)
	for i := range a.Sessions {
		assert.Equal(t, a.Sessions[i].Seed, b.Sessions[i].Seed)
		assert.Equal(t, a.Sessions[i].FinalBank, b.Sessions[i].FinalBank)
	}
	assert.NotEqual(t, a.Sessions[0].Seed, a.Sessions[1].Seed, "sessions get independent seeds")
}

func TestRunStopsWhenBroke(t *testing.T) {
	result, err := New(Config{
		Rounds:       1000,
		StartingBank: 20,
		Seed:         3,
		Strategy:     FlatStrategy{BaseBet: 20, StandOn: 21},
		Logger:       quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	s := result.Sessions[0]
	if s.Broke {
		assert.Less(t, s.FinalBank, 20)
		assert.Less(t, s.Played, 1000)
	} else {
		assert.Equal(t, 1000, s.Played)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	result, err := New(Config{
		Rounds:   20,
		Sessions: 2,
		Seed:     99,
		Record:   true,
		Logger:   quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	for _, s := range result.Sessions {
		require.NotNil(t, s.History)
		assert.Equal(t, s.ID, s.History.ID)
		assert.Equal(t, s.Seed, s.History.Seed)
		assert.Len(t, s.History.Rounds, s.Played)
		assert.Equal(t, s.FinalBank, s.History.FinalBank())
		for _, r := range s.History.Rounds {
			assert.NoError(t, r.Validate())
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Rounds: 10, Seed: 1, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlatStrategy(t *testing.T) {
	s := FlatStrategy{BaseBet: 10, StandOn: 17}

	assert.Equal(t, 10, s.Bet(1000))
	assert.Equal(t, 10, s.Bet(10))
	assert.Zero(t, s.Bet(9))

	assert.True(t, s.Hit(game.Snapshot{PlayerScore: 16}))
	assert.False(t, s.Hit(game.Snapshot{PlayerScore: 17}))
}

func TestPrintSummary(t *testing.T) {
	result, err := RunSimulation(context.Background(), 30, 2, 42, nil, quietLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "Rounds played: 60")
	assert.Contains(t, out, "=== OUTCOMES ===")
	assert.Contains(t, out, "95% CI")
	assert.Contains(t, out, result.Sessions[1].ID)
}
