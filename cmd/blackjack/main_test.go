package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
ui {
  log_level = "warn"
  log_file  = "table.log"
}
`), 0o644))

	cfg, err := (&Globals{Config: path}).load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.True(t, cfg.UI.Color)

	cfg, err = (&Globals{Config: path, LogLevel: "debug", LogFile: "other.log", NoColor: true}).load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "other.log", cfg.UI.LogFile)
	assert.False(t, cfg.UI.Color)
}

func TestSimulateWritesHistory(t *testing.T) {
	dir := t.TempDir()
	globals := &Globals{
		Config:  filepath.Join(dir, "missing.hcl"),
		LogFile: filepath.Join(dir, "blackjack.log"),
		NoColor: true,
	}
	historyDir := filepath.Join(dir, "history")

	cmd := &SimulateCmd{Rounds: 15, Sessions: 2, Seed: 8, History: historyDir}
	require.NoError(t, cmd.Run(globals))

	files, err := filepath.Glob(filepath.Join(historyDir, "session-*.toml"))
	require.NoError(t, err)
	require.Len(t, files, 2)

	session, err := history.Load(files[0])
	require.NoError(t, err)
	assert.NotEmpty(t, session.Rounds)

	show := &HistoryShowCmd{File: files[0], Limit: 3}
	assert.NoError(t, show.Run(globals))
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	globals := &Globals{
		Config:  filepath.Join(dir, "missing.hcl"),
		LogFile: filepath.Join(dir, "blackjack.log"),
	}

	err := (&SimulateCmd{StandOn: 30}).Run(globals)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestPlayAcceptsSmallBank(t *testing.T) {
	dir := t.TempDir()
	globals := &Globals{
		Config:  filepath.Join(dir, "missing.hcl"),
		LogFile: filepath.Join(dir, "blackjack.log"),
	}

	cfg, err := (&PlayCmd{Bank: 5}).config(globals)
	require.NoError(t, err, "the simulation base bet does not apply at the table")
	assert.Equal(t, 5, cfg.Table.StartingBank)

	_, err = (&PlayCmd{Chips: []int{5, 5}}).config(globals)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chip")
}

func TestWriteHistoriesSkipsEmptySessions(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	round := history.Round{
		ID:          "01h5n0et5q6mt3v7ms1234abcd",
		Dealt:       start,
		Settled:     start,
		Stake:       100,
		Player:      []string{"Th", "9c"},
		Dealer:      []string{"Ts", "7d"},
		PlayerScore: 19,
		DealerScore: 17,
		Outcome:     "win",
		Credit:      200,
		Bank:        1100,
	}
	empty := &history.Session{ID: "aaaaaaaa-empty", StartingBank: 5, Started: start}
	played := &history.Session{ID: "bbbbbbbb-played", StartingBank: 1000, Started: start, Rounds: []history.Round{round}}

	sessions := []simulator.SessionResult{
		{Index: 0, ID: empty.ID, History: empty},
		{Index: 1, ID: played.ID, Played: 1, History: played},
	}

	written, err := writeHistories(dir, sessions)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	files, err := filepath.Glob(filepath.Join(dir, "session-*.toml"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "session-02-bbbbbbbb.toml", filepath.Base(files[0]))
}

func TestHistoryShowEmptySession(t *testing.T) {
	dir := t.TempDir()
	globals := &Globals{Config: filepath.Join(dir, "missing.hcl"), NoColor: true}

	path := filepath.Join(dir, "empty.toml")
	require.NoError(t, history.Save(path, &history.Session{
		ID:           "empty",
		StartingBank: 5,
		Started:      time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
	}))

	assert.NoError(t, (&HistoryShowCmd{File: path}).Run(globals))
}
