package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/history"
)

// HistoryCmd is the root command for round history utilities
type HistoryCmd struct {
	Show HistoryShowCmd `cmd:"" help:"Render a saved session as a table"`
}

// HistoryShowCmd prints a session file
type HistoryShowCmd struct {
	File  string `arg:"" name:"file" type:"existingfile" help:"Path to a session TOML file"`
	Limit int    `help:"Maximum number of rounds to show (0 = all)"`
}

func (cmd *HistoryShowCmd) Run(g *Globals) error {
	if cmd.File == "" {
		return errors.New("history show requires a file path")
	}

	cfg, err := g.load()
	if err != nil {
		return err
	}
	if err := cfg.ValidateTable(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	applyColor(cfg)

	session, err := history.Load(cmd.File)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cmd.File, err)
	}
	return history.Render(os.Stdout, session, cmd.Limit)
}
