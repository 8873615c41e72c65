package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankPoints(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rank.Points())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "10♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "Th", NewCard(Ten, Hearts).Code())
	assert.Equal(t, "Kc", NewCard(King, Clubs).Code())
	assert.True(t, NewCard(Two, Diamonds).IsRed())
	assert.False(t, NewCard(Two, Clubs).IsRed())
	assert.True(t, NewCard(Queen, Clubs).IsFaceCard())
	assert.False(t, NewCard(Ten, Clubs).IsFaceCard())
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "soft seventeen",
			input: "As6h",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: Six, Suit: Hearts},
			},
		},
		{
			name:  "spaced with ten",
			input: "Td 9c 5s",
			expected: []Card{
				{Rank: Ten, Suit: Diamonds},
				{Rank: Nine, Suit: Clubs},
				{Rank: Five, Suit: Spades},
			},
		},
		{
			name:  "case insensitive",
			input: "aSkH",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCodesRoundTrip(t *testing.T) {
	for _, c := range NewShoe() {
		parsed, err := ParseCard(c.Code())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, []string{"As", "Th"}, Codes(MustParseCards("AsTh")))
	assert.Panics(t, func() { MustParseCards("invalid") })
}
