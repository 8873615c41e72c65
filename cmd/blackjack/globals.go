package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
	"github.com/muesli/termenv"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"${config_path}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
	NoColor  bool   `help:"Disable colour output"`
}

// load reads the config file and applies the global overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.UI.LogFile = g.LogFile
	}
	if g.NoColor {
		cfg.UI.Color = false
	}
	return cfg, nil
}

// applyColor drops styling from all lipgloss output when colour is off
func applyColor(cfg *config.Config) {
	if !cfg.UI.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// setupOutput applies the colour setting and opens the log file. The
// terminal belongs to the UI, so logs always go to a file.
func setupOutput(cfg *config.Config) (*log.Logger, io.Closer, error) {
	applyColor(cfg)

	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(logFile, log.Options{
		Level:           cfg.UI.Level(),
		ReportTimestamp: true,
	})
	return logger, logFile, nil
}
