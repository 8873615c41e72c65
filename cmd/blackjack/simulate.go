package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays sessions headlessly
type SimulateCmd struct {
	Rounds   int    `short:"n" help:"Rounds per session (overrides config)"`
	Sessions int    `help:"Sessions to run in parallel (overrides config)"`
	Bank     int    `help:"Starting bank per session (overrides config)"`
	BaseBet  int    `help:"Flat stake per round (overrides config)"`
	StandOn  int    `help:"Stand on this total or higher (overrides config)"`
	Seed     int64  `help:"Base seed; 0 picks one from the clock (overrides config)"`
	History  string `type:"path" help:"Directory to write one TOML round history per session"`
}

func (cmd *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Rounds != 0 {
		cfg.Simulation.Rounds = cmd.Rounds
	}
	if cmd.Sessions != 0 {
		cfg.Simulation.Sessions = cmd.Sessions
	}
	if cmd.Bank != 0 {
		cfg.Table.StartingBank = cmd.Bank
	}
	if cmd.BaseBet != 0 {
		cfg.Simulation.BaseBet = cmd.BaseBet
	}
	if cmd.StandOn != 0 {
		cfg.Simulation.StandOn = cmd.StandOn
	}
	if cmd.Seed != 0 {
		cfg.Table.Seed = cmd.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := setupOutput(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rounds:       cfg.Simulation.Rounds,
		Sessions:     cfg.Simulation.Sessions,
		StartingBank: cfg.Table.StartingBank,
		Seed:         cfg.Table.Seed,
		Strategy: simulator.FlatStrategy{
			BaseBet: cfg.Simulation.BaseBet,
			StandOn: cfg.Simulation.StandOn,
		},
		Record: cmd.History != "",
		Clock:  quartz.NewReal(),
		Logger: logger.WithPrefix("simulator"),
	})

	fmt.Printf("Simulating %d sessions × %d rounds (seed %d, bet %d, stand on %d)\n",
		cfg.Simulation.Sessions, cfg.Simulation.Rounds, sim.Seed(),
		cfg.Simulation.BaseBet, cfg.Simulation.StandOn)

	start := time.Now()
	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	simulator.PrintSummary(os.Stdout, result)
	fmt.Printf("\nCompleted in %s (%.0f rounds/sec)\n",
		elapsed.Round(time.Millisecond), float64(result.Stats.Rounds)/elapsed.Seconds())

	if cmd.History == "" {
		return nil
	}
	if err := os.MkdirAll(cmd.History, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}
	written, err := writeHistories(cmd.History, result.Sessions)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d history files to %s\n", written, cmd.History)
	return nil
}

// writeHistories saves one file per session that played at least one round
func writeHistories(dir string, sessions []simulator.SessionResult) (int, error) {
	var written int
	for _, s := range sessions {
		if s.Played == 0 || s.History == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("session-%02d-%s.toml", s.Index+1, strings.SplitN(s.ID, "-", 2)[0]))
		if err := history.Save(path, s.History); err != nil {
			return written, fmt.Errorf("saving session %d: %w", s.Index+1, err)
		}
		written++
	}
	return written, nil
}
