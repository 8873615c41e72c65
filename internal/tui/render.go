package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

// renderTable draws both hands, the betting area and the result line
func renderTable(snap game.Snapshot, chips []int) string {
	var b strings.Builder

	dealerScore := "?"
	if snap.DealerScoreVisible {
		dealerScore = fmt.Sprint(snap.DealerScore)
	}
	b.WriteString(renderHand("Dealer", snap.DealerHand, snap.DealerHidden, dealerScore))
	b.WriteString("\n\n")

	playerScore := ""
	if len(snap.PlayerHand) > 0 {
		playerScore = fmt.Sprint(snap.PlayerScore)
	}
	b.WriteString(renderHand("Player", snap.PlayerHand, false, playerScore))
	b.WriteString("\n\n")

	b.WriteString(renderResult(snap))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Bank %s   Bet %s   Last %s\n",
		WarningStyle.Render(fmt.Sprint(snap.Bank)),
		WarningStyle.Render(fmt.Sprint(snap.CurrentBet)),
		InfoStyle.Render(fmt.Sprint(snap.LastBet))))
	b.WriteString(renderChips(snap, chips))

	return b.String()
}

func renderHand(label string, cards []deck.Card, hidden bool, score string) string {
	parts := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		parts = append(parts, formatCard(c))
	}
	if hidden {
		parts = append(parts, CardBackStyle.Render("??"))
	}
	if len(parts) == 0 {
		parts = append(parts, InfoStyle.Render("-"))
	}

	line := HandLabelStyle.Render(label) + strings.Join(parts, " ")
	if score != "" {
		line += "  " + ScoreStyle.Render(score)
	}
	return line
}

func formatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func renderResult(snap game.Snapshot) string {
	switch {
	case snap.State == game.PlayerTurn:
		return InfoStyle.Render("Hit or stand?")
	case snap.Message == "":
		return InfoStyle.Render("Place your bet")
	case snap.Outcome == game.OutcomeWin:
		return SuccessStyle.Render(snap.Message)
	case snap.Outcome == game.OutcomePush:
		return WarningStyle.Render(snap.Message)
	default:
		return ErrorStyle.Render(snap.Message)
	}
}

// renderChips shows each denomination with its key, dimmed when the bank
// cannot cover it or betting is closed
func renderChips(snap game.Snapshot, chips []int) string {
	rendered := make([]string, len(chips))
	for i, chip := range chips {
		style := ChipStyle
		if !snap.Can(game.CommandPlaceChip) || chip > snap.Bank {
			style = DisabledChipStyle
		}
		rendered[i] = style.Render(fmt.Sprintf("%d·%d", i+1, chip))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
