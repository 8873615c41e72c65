package history

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/blackjack/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	winStyle    = cellStyle.Foreground(lipgloss.Color("10"))
	lossStyle   = cellStyle.Foreground(lipgloss.Color("9"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Render writes a table of the session's rounds to w. limit caps the number
// of rounds shown; zero or less shows all of them.
func Render(w io.Writer, session *Session, limit int) error {
	rounds := session.Rounds
	if limit > 0 && limit < len(rounds) {
		rounds = rounds[:limit]
	}

	rows := make([][]string, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.Join(r.Player, " "),
			strconv.Itoa(r.PlayerScore),
			strings.Join(r.Dealer, " "),
			strconv.Itoa(r.DealerScore),
			strconv.Itoa(r.Stake),
			r.Outcome,
			fmt.Sprintf("%+d", r.Net()),
			strconv.Itoa(r.Bank),
		})
	}

	const outcomeCol = 6
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Player", "", "Dealer", "", "Stake", "Result", "Net", "Bank").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == outcomeCol && row >= 0 && row < len(rounds) {
				switch game.ParseOutcome(rounds[row].Outcome) {
				case game.OutcomeWin:
					return winStyle
				case game.OutcomeLoss, game.OutcomeBust:
					return lossStyle
				}
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Session %s", session.ID)),
		t.Render(),
		fmt.Sprintf("%d rounds, bank %d -> %d (net %+d)",
			len(session.Rounds), session.StartingBank, session.FinalBank(), session.Net()))
	return err
}
