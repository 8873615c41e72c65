package simulator

import (
	"fmt"
	"io"

	"github.com/lox/blackjack/internal/game"
)

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, result *Result) {
	stats := result.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS ===\n")
	fmt.Fprintf(w, "Sessions: %d\n", len(result.Sessions))
	fmt.Fprintf(w, "Rounds played: %d\n", stats.Rounds)
	fmt.Fprintf(w, "Chips wagered: %d\n", stats.Wagered)

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	fmt.Fprintf(w, "Wins:   %6d (%.1f%%), %d on dealer busts\n", stats.Wins, stats.Rate(game.OutcomeWin)*100, stats.DealerBusts)
	fmt.Fprintf(w, "Losses: %6d (%.1f%%)\n", stats.Losses, stats.Rate(game.OutcomeLoss)*100)
	fmt.Fprintf(w, "Pushes: %6d (%.1f%%)\n", stats.Pushes, stats.Rate(game.OutcomePush)*100)
	fmt.Fprintf(w, "Busts:  %6d (%.1f%%)\n", stats.Busts, stats.Rate(game.OutcomeBust)*100)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %.4f chips/round\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.4f chips/round\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.4f chips\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f chips\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] chips/round\n", low, high)
	fmt.Fprintf(w, "House edge: %.2f%%\n", stats.HouseEdge()*100)
	fmt.Fprintf(w, "Biggest win: %+d, biggest loss: %+d\n", stats.BiggestWin, stats.BiggestLoss)

	fmt.Fprintf(w, "\n=== SESSIONS ===\n")
	for _, s := range result.Sessions {
		status := ""
		if s.Broke {
			status = " (broke)"
		}
		fmt.Fprintf(w, "#%d %s: %d rounds, bank %d%s\n", s.Index+1, s.ID, s.Played, s.FinalBank, status)
	}
}
