// Package config loads table, UI and simulation settings from HCL.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is where the CLI looks for a config file
const DefaultPath = "blackjack.hcl"

// Config represents the complete configuration
type Config struct {
	Table      TableSettings
	UI         UISettings
	Simulation SimulationSettings
}

// TableSettings controls the bank, chip denominations and shuffle seed
type TableSettings struct {
	StartingBank int
	Chips        []int
	// Seed fixes the shuffle sequence. Zero seeds from the clock.
	Seed int64
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string
	LogFile  string
	Color    bool
}

// SimulationSettings configures headless auto-play
type SimulationSettings struct {
	Rounds   int
	Sessions int
	StandOn  int
	BaseBet  int
}

// fileConfig mirrors the HCL layout. Pointers tell a missing block or
// attribute apart from a zero value.
type fileConfig struct {
	Table      *tableBlock      `hcl:"table,block"`
	UI         *uiBlock         `hcl:"ui,block"`
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type tableBlock struct {
	StartingBank int   `hcl:"starting_bank,optional"`
	Chips        []int `hcl:"chips,optional"`
	Seed         int64 `hcl:"seed,optional"`
}

type uiBlock struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
}

type simulationBlock struct {
	Rounds   int `hcl:"rounds,optional"`
	Sessions int `hcl:"sessions,optional"`
	StandOn  int `hcl:"stand_on,optional"`
	BaseBet  int `hcl:"base_bet,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			StartingBank: 1000,
			Chips:        []int{1, 5, 25, 100, 500},
		},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "blackjack.log",
			Color:    true,
		},
		Simulation: SimulationSettings{
			Rounds:   1000,
			Sessions: 4,
			StandOn:  17,
			BaseBet:  10,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; settings absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return raw.merge(Default()), nil
}

func (f fileConfig) merge(cfg *Config) *Config {
	if t := f.Table; t != nil {
		if t.StartingBank != 0 {
			cfg.Table.StartingBank = t.StartingBank
		}
		if t.Chips != nil {
			cfg.Table.Chips = t.Chips
		}
		cfg.Table.Seed = t.Seed
	}

	if u := f.UI; u != nil {
		if u.LogLevel != "" {
			cfg.UI.LogLevel = u.LogLevel
		}
		if u.LogFile != "" {
			cfg.UI.LogFile = u.LogFile
		}
		if u.Color != nil {
			cfg.UI.Color = *u.Color
		}
	}

	if s := f.Simulation; s != nil {
		if s.Rounds != 0 {
			cfg.Simulation.Rounds = s.Rounds
		}
		if s.Sessions != 0 {
			cfg.Simulation.Sessions = s.Sessions
		}
		if s.StandOn != 0 {
			cfg.Simulation.StandOn = s.StandOn
		}
		if s.BaseBet != 0 {
			cfg.Simulation.BaseBet = s.BaseBet
		}
	}
	return cfg
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the whole configuration
func (c *Config) Validate() error {
	if err := c.ValidateTable(); err != nil {
		return err
	}
	return c.ValidateSimulation()
}

// ValidateTable checks the settings an interactive table needs: the table
// block and the UI block
func (c *Config) ValidateTable() error {
	if c.Table.StartingBank <= 0 {
		return fmt.Errorf("starting bank must be positive")
	}

	if len(c.Table.Chips) == 0 {
		return fmt.Errorf("at least one chip denomination is required")
	}
	seen := make(map[int]bool, len(c.Table.Chips))
	for _, chip := range c.Table.Chips {
		if chip <= 0 {
			return fmt.Errorf("chip denomination must be positive: %d", chip)
		}
		if seen[chip] {
			return fmt.Errorf("duplicate chip denomination: %d", chip)
		}
		seen[chip] = true
	}

	if !slices.Contains(validLogLevels, c.UI.LogLevel) {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	return nil
}

// ValidateSimulation checks the simulation block against the table it
// plays at
func (c *Config) ValidateSimulation() error {
	if c.Simulation.Rounds <= 0 {
		return fmt.Errorf("simulation rounds must be positive")
	}
	if c.Simulation.Sessions <= 0 {
		return fmt.Errorf("simulation sessions must be positive")
	}
	if c.Simulation.StandOn < 12 || c.Simulation.StandOn > 21 {
		return fmt.Errorf("stand_on must be between 12 and 21, got %d", c.Simulation.StandOn)
	}
	if c.Simulation.BaseBet <= 0 {
		return fmt.Errorf("base bet must be positive")
	}
	if c.Simulation.BaseBet > c.Table.StartingBank {
		return fmt.Errorf("base bet %d exceeds starting bank %d", c.Simulation.BaseBet, c.Table.StartingBank)
	}

	return nil
}

// Level maps the configured log level onto a log.Level
func (u UISettings) Level() log.Level {
	switch u.LogLevel {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
