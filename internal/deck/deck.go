package deck

import (
	rand "math/rand/v2"
)

// ShoeSize is the number of cards in a single-deck shoe
const ShoeSize = 52

// ShuffleFunc reorders cards in place
type ShuffleFunc func(cards []Card)

// NewShoe returns the 52 cards of a standard deck in canonical order:
// ranks A..K within each suit, suits in the order ♠ ♥ ♦ ♣.
func NewShoe() []Card {
	cards := make([]Card, 0, ShoeSize)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle randomizes the order of cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// RandomShuffle returns a ShuffleFunc backed by rng
func RandomShuffle(rng *rand.Rand) ShuffleFunc {
	return func(cards []Card) {
		Shuffle(cards, rng)
	}
}

// Shoe is the live card source for a table. Cards are drawn from the end.
type Shoe struct {
	cards      []Card
	shuffle    ShuffleFunc
	drawn      int
	reshuffles int
}

// NewShoeWithShuffle creates an empty shoe that uses shuffle whenever it
// builds a fresh set of cards. The first Draw or Reset fills it.
func NewShoeWithShuffle(shuffle ShuffleFunc) *Shoe {
	return &Shoe{shuffle: shuffle}
}

// NewRandomShoe creates a shoe shuffled with rng
func NewRandomShoe(rng *rand.Rand) *Shoe {
	return NewShoeWithShuffle(RandomShuffle(rng))
}

// Reset discards whatever is left and replaces it with a freshly shuffled
// 52-card shoe.
func (s *Shoe) Reset() {
	s.cards = NewShoe()
	s.shuffle(s.cards)
	s.drawn = 0
	s.reshuffles++
}

// Draw removes and returns the last card of the shoe. An empty shoe is
// replaced with a freshly shuffled one before drawing, so Draw always
// succeeds.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.Reset()
	}

	last := len(s.cards) - 1
	card := s.cards[last]
	s.cards = s.cards[:last]
	s.drawn++
	return card
}

// Remaining returns the number of cards left in the current shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Drawn returns the number of cards drawn since the current shoe was built
func (s *Shoe) Drawn() int {
	return s.drawn
}

// Reshuffles returns how many times a fresh shoe has been built
func (s *Shoe) Reshuffles() int {
	return s.reshuffles
}
