package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// BustLimit is the highest total a hand can hold without busting
const BustLimit = 21

// Role identifies who a hand belongs to
type Role int

const (
	RolePlayer Role = iota
	RoleDealer
)

func (r Role) String() string {
	return [...]string{"player", "dealer"}[r]
}

// Hand is an ordered set of cards in deal order. Order only matters for
// display; scoring ignores it.
type Hand []deck.Card

// Score returns the hand's blackjack total
func (h Hand) Score() int {
	return Score(h)
}

// IsSoft reports whether the best total still counts an ace as 11
func (h Hand) IsSoft() bool {
	_, soft := evaluate(h)
	return soft
}

// IsBust reports whether the hand is over 21 after every ace demotion
func (h Hand) IsBust() bool {
	return Score(h) > BustLimit
}

// Cards returns a copy of the hand's cards
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h))
	copy(cards, h)
	return cards
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Score computes the best blackjack total for cards. Number cards count at
// face value, J/Q/K count 10 and aces start at 11. While the total is over
// 21, one ace at a time is demoted to 1. The result is the highest total
// not over 21, or the smallest bust total when none exists.
func Score(cards []deck.Card) int {
	total, _ := evaluate(cards)
	return total
}

func evaluate(cards []deck.Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
		}
		total += c.Rank.Points()
	}

	for total > BustLimit && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}
