package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd runs an interactive session
type PlayCmd struct {
	Bank    int    `help:"Starting bank (overrides config)"`
	Chips   []int  `sep:"," help:"Chip denominations, comma separated (overrides config)"`
	Seed    int64  `help:"Shuffle seed; 0 picks one from the clock (overrides config)"`
	History string `type:"path" help:"Save the session's round history to this TOML file on exit"`
}

// config loads the table settings with this command's overrides. The
// simulation block is not used at the table and is not checked.
func (cmd *PlayCmd) config(g *Globals) (*config.Config, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	if cmd.Bank != 0 {
		cfg.Table.StartingBank = cmd.Bank
	}
	if len(cmd.Chips) > 0 {
		cfg.Table.Chips = cmd.Chips
	}
	if cmd.Seed != 0 {
		cfg.Table.Seed = cmd.Seed
	}
	if err := cfg.ValidateTable(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (cmd *PlayCmd) Run(g *Globals) error {
	cfg, err := cmd.config(g)
	if err != nil {
		return err
	}

	logger, closer, err := setupOutput(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := randutil.Seed(cfg.Table.Seed)
	clock := quartz.NewReal()
	logger.Info("Starting blackjack", "bank", cfg.Table.StartingBank, "seed", seed, "config", g.Config)

	engine := game.NewEngine(game.Config{
		StartingBank: cfg.Table.StartingBank,
		RNG:          randutil.New(seed),
		Clock:        clock,
		Logger:       logger,
	})

	var recorder *history.Recorder
	if cmd.History != "" {
		recorder = history.NewRecorder(history.Session{
			StartingBank: cfg.Table.StartingBank,
			Seed:         seed,
			Started:      clock.Now(),
		})
		engine.Subscribe(recorder)
	}

	model := tui.NewTUIModel(engine, logger, tui.Options{
		Chips: cfg.Table.Chips,
		Title: fmt.Sprintf("Blackjack %s", version),
	})
	model.AddLogEntry(fmt.Sprintf("Welcome! Bank %d. Pick chips with 1-%d, then d to deal.",
		cfg.Table.StartingBank, min(len(cfg.Table.Chips), 9)))

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	logger.Info("Session over", "rounds", engine.Rounds(), "bank", engine.Bank())
	if recorder != nil && recorder.Len() > 0 {
		if err := history.Save(cmd.History, recorder.Session()); err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
		fmt.Printf("Saved %d rounds to %s\n", recorder.Len(), cmd.History)
	}
	fmt.Printf("Final bank: %d\n", engine.Bank()+engine.CurrentBet())
	return nil
}
