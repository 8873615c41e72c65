package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

const (
	sidebarWidth = 42
	minLogHeight = 3
)

// TUIModel is the Bubble Tea model for a blackjack table. It owns the engine
// exclusively; every key press runs one engine command to completion.
type TUIModel struct {
	engine *game.Engine
	logger *log.Logger
	chips  []int

	// UI components
	keys        keyMap
	help        help.Model
	logViewport viewport.Model

	// State
	title    string
	gameLog  []string
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// Options configure a TUIModel
type Options struct {
	// Chips are the denominations offered, one number key each
	Chips []int
	// Title is shown in the header
	Title string
	// TestMode captures log lines instead of rendering them
	TestMode bool
}

// NewTUIModel creates a model driving engine. The model subscribes to the
// engine's events to build its log.
func NewTUIModel(engine *game.Engine, logger *log.Logger, opts Options) *TUIModel {
	if len(opts.Chips) == 0 {
		opts.Chips = []int{1, 5, 25, 100, 500}
	}
	if len(opts.Chips) > maxChipKeys {
		opts.Chips = opts.Chips[:maxChipKeys]
	}
	if opts.Title == "" {
		opts.Title = "Blackjack"
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &TUIModel{
		engine:      engine,
		logger:      logger.WithPrefix("tui"),
		chips:       opts.Chips,
		keys:        newKeyMap(opts.Chips),
		help:        help.New(),
		logViewport: vp,
		title:       opts.Title,
		testMode:    opts.TestMode,
	}
	m.keys.sync(engine, m.chips)
	engine.Subscribe(game.EventSubscriberFunc(m.onEvent))
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.keys.sync(m.engine, m.chips)
		return m, nil
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// handleKey maps a key press onto at most one engine command. Keys for
// commands the engine would refuse are disabled and never match.
func (m *TUIModel) handleKey(msg tea.KeyMsg) {
	for i, binding := range m.keys.Chips {
		if key.Matches(msg, binding) {
			m.engine.PlaceChip(m.chips[i])
			return
		}
	}
	for i, binding := range m.keys.Rebet {
		if key.Matches(msg, binding) {
			m.engine.Rebet(i + 1)
			return
		}
	}

	switch {
	case key.Matches(msg, m.keys.Clear):
		m.engine.ClearBet()
	case key.Matches(msg, m.keys.Deal):
		m.engine.Deal()
	case key.Matches(msg, m.keys.Hit):
		m.engine.Hit()
	case key.Matches(msg, m.keys.Stand):
		m.engine.Stand()
	case key.Matches(msg, m.keys.LogUp):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.LogDn):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.engine.Snapshot()
	header := HeaderStyle.Width(m.width).Render(m.title)
	footer := m.help.View(m.keys)

	table := TableStyle.Render(renderTable(snap, m.chips))
	tableWidth := lipgloss.Width(table)

	logWidth := max(m.width-tableWidth-2, 10)
	logHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-2, minLogHeight)
	m.logViewport.Width = min(logWidth, sidebarWidth)
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
	logPane := LogPaneStyle.Render(m.logViewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, table, logPane)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// onEvent turns engine events into log lines
func (m *TUIModel) onEvent(event game.GameEvent) {
	if line := describeEvent(event); line != "" {
		m.AddLogEntry(line)
	}
}

// AddLogEntry appends a line to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Snapshot returns the engine state the model renders
func (m *TUIModel) Snapshot() game.Snapshot {
	return m.engine.Snapshot()
}

// Quitting reports whether the user asked to leave
func (m *TUIModel) Quitting() bool {
	return m.quitting
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

func describeEvent(event game.GameEvent) string {
	switch e := event.(type) {
	case game.StakeChangeEvent:
		switch e.Command {
		case game.CommandPlaceChip:
			return fmt.Sprintf("Bet %d (stake %d, bank %d)", e.Amount, e.CurrentBet, e.Bank)
		case game.CommandClearBet:
			return fmt.Sprintf("Cleared %d (bank %d)", e.Amount, e.Bank)
		case game.CommandRebet:
			return fmt.Sprintf("Rebet %d (bank %d)", e.Amount, e.Bank)
		}
	case game.RoundStartEvent:
		return fmt.Sprintf("── Round %s: stake %d ──", shortID(e.RoundID), e.Stake)
	case game.CardDealtEvent:
		if e.Hidden {
			return "Dealer gets a face-down card"
		}
		return fmt.Sprintf("%s gets %s (%d)", titleCase(e.Role.String()), e.Card, e.Score)
	case game.HoleCardRevealEvent:
		return fmt.Sprintf("Dealer reveals %s (%d)", e.Card, e.DealerScore)
	case game.RoundSettledEvent:
		return fmt.Sprintf("%s %+d, bank %d", e.Message, e.Net(), e.Bank)
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
