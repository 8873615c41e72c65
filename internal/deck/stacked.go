package deck

import "fmt"

// Stacked returns a ShuffleFunc that arranges a fresh shoe so successive
// Draw calls return draws in the given order. The cards not named follow in
// reverse canonical order. Every shoe built with it is stacked the same way.
//
// Intended for tests and replays; it panics if draws repeats a card.
func Stacked(draws ...Card) ShuffleFunc {
	return StackedRounds(draws)
}

// StackedRounds is like Stacked but uses the n-th arrangement for the n-th
// shoe built. After the last arrangement it repeats the final one.
func StackedRounds(rounds ...[]Card) ShuffleFunc {
	n := 0
	return func(cards []Card) {
		if len(rounds) == 0 {
			return
		}
		draws := rounds[min(n, len(rounds)-1)]
		n++
		stack(cards, draws)
	}
}

func stack(cards []Card, draws []Card) {
	wanted := make(map[Card]bool, len(draws))
	for _, c := range draws {
		if wanted[c] {
			panic(fmt.Sprintf("deck: card %s stacked twice", c))
		}
		wanted[c] = true
	}

	ordered := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !wanted[c] {
			ordered = append(ordered, c)
		}
	}
	for i := len(draws) - 1; i >= 0; i-- {
		ordered = append(ordered, draws[i])
	}
	if len(ordered) != len(cards) {
		panic(fmt.Sprintf("deck: stacked %d cards into a shoe of %d", len(ordered), len(cards)))
	}
	copy(cards, ordered)
}
