package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/lox/blackjack/internal/game"
)

// maxChipKeys is how many denominations get a number key
const maxChipKeys = 9

type keyMap struct {
	Chips []key.Binding
	Clear key.Binding
	Rebet [game.MaxRebetMultiplier]key.Binding
	Deal  key.Binding
	Hit   key.Binding
	Stand key.Binding
	LogUp key.Binding
	LogDn key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap(chips []int) keyMap {
	km := keyMap{
		Clear: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear bet")),
		Rebet: [game.MaxRebetMultiplier]key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rebet")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "rebet ×2")),
			key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "rebet ×3")),
		},
		Deal:  key.NewBinding(key.WithKeys("d", "enter"), key.WithHelp("d", "deal")),
		Hit:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		LogUp: key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/pgup", "scroll log")),
		LogDn: key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/pgdn", "scroll log")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}

	for i, chip := range chips {
		if i == maxChipKeys {
			break
		}
		k := fmt.Sprint(i + 1)
		km.Chips = append(km.Chips, key.NewBinding(key.WithKeys(k), key.WithHelp(k, fmt.Sprintf("bet %d", chip))))
	}
	return km
}

// sync enables exactly the bindings the engine would currently accept
func (k *keyMap) sync(e *game.Engine, chips []int) {
	for i := range k.Chips {
		k.Chips[i].SetEnabled(e.CanPlaceChip(chips[i]))
	}
	k.Clear.SetEnabled(e.IsValid(game.CommandClearBet))
	for i := range k.Rebet {
		k.Rebet[i].SetEnabled(e.CanRebet(i + 1))
	}
	k.Deal.SetEnabled(e.IsValid(game.CommandDeal))
	k.Hit.SetEnabled(e.IsValid(game.CommandHit))
	k.Stand.SetEnabled(e.IsValid(game.CommandStand))
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Deal, k.Hit, k.Stand, k.Clear, k.Rebet[0]}
	return append(bindings, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Chips,
		{k.Clear, k.Rebet[0], k.Rebet[1], k.Rebet[2]},
		{k.Deal, k.Hit, k.Stand},
		{k.LogUp, k.LogDn, k.Help, k.Quit},
	}
}
