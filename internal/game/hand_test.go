package game

import (
	"slices"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  int
		soft  bool
	}{
		{name: "empty hand", cards: "", want: 0},
		{name: "soft seventeen", cards: "As6h", want: 17, soft: true},
		{name: "two aces and nine", cards: "AsAh9c", want: 21, soft: true},
		{name: "three aces and eight", cards: "AsAhAd8c", want: 21, soft: true},
		{name: "bust without aces", cards: "Ts9h5c", want: 24},
		{name: "face cards count ten", cards: "KsQh", want: 20},
		{name: "blackjack", cards: "AsJd", want: 21, soft: true},
		{name: "ace demoted to hard", cards: "As6h9c", want: 16},
		{name: "pair of aces", cards: "AsAh", want: 12, soft: true},
		{name: "four aces", cards: "AsAhAdAc", want: 14, soft: true},
		{name: "bust with every ace demoted", cards: "AsKhQd5c", want: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := Hand(deck.MustParseCards(tt.cards))
			assert.Equal(t, tt.want, Score(hand))
			assert.Equal(t, tt.want, hand.Score())
			assert.Equal(t, tt.soft, hand.IsSoft())
			assert.Equal(t, tt.want > 21, hand.IsBust())
		})
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	rng := randutil.New(2024)
	shoe := deck.NewShoe()

	for trial := 0; trial < 200; trial++ {
		deck.Shuffle(shoe, rng)
		size := 2 + rng.IntN(6)
		hand := slices.Clone(shoe[:size])
		want := Score(hand)

		reversed := slices.Clone(hand)
		slices.Reverse(reversed)
		assert.Equal(t, want, Score(reversed), "hand %v", hand)

		permuted := slices.Clone(hand)
		deck.Shuffle(permuted, rng)
		assert.Equal(t, want, Score(permuted), "hand %v", hand)
	}
}

func TestHandCardsIsACopy(t *testing.T) {
	hand := Hand(deck.MustParseCards("AsKd"))
	cards := hand.Cards()
	cards[0] = deck.NewCard(deck.Two, deck.Clubs)

	assert.Equal(t, deck.NewCard(deck.Ace, deck.Spades), hand[0])
	assert.Equal(t, "A♠ K♦", hand.String())
}
