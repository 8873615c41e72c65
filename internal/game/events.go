package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round lifecycle events
const (
	EventTypeStakeChange    EventType = "stake_change"
	EventTypeRoundStart     EventType = "round_start"
	EventTypeCardDealt      EventType = "card_dealt"
	EventTypeHoleCardReveal EventType = "hole_card_reveal"
	EventTypeRoundSettled   EventType = "round_settled"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens at the table
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// StakeChangeEvent is published whenever chips move between bank and stake
// outside of settlement
type StakeChangeEvent struct {
	Command    Command
	Amount     int
	Bank       int
	CurrentBet int
	timestamp  time.Time
}

func (e StakeChangeEvent) EventType() EventType { return EventTypeStakeChange }
func (e StakeChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewStakeChangeEvent creates a new stake change event
func NewStakeChangeEvent(cmd Command, amount, bank, currentBet int, at time.Time) StakeChangeEvent {
	return StakeChangeEvent{
		Command:    cmd,
		Amount:     amount,
		Bank:       bank,
		CurrentBet: currentBet,
		timestamp:  at,
	}
}

// RoundStartEvent is published when a round is dealt, before any card
type RoundStartEvent struct {
	RoundID   string
	Stake     int
	Bank      int
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string, stake, bank int, at time.Time) RoundStartEvent {
	return RoundStartEvent{
		RoundID:   roundID,
		Stake:     stake,
		Bank:      bank,
		timestamp: at,
	}
}

// CardDealtEvent is published for every card leaving the shoe. The dealer's
// hole card is dealt face down: Hidden is set and Card is left zero.
type CardDealtEvent struct {
	RoundID   string
	Role      Role
	Card      deck.Card
	Hidden    bool
	Score     int // visible score of the receiving hand after the card
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(roundID string, role Role, card deck.Card, hidden bool, score int, at time.Time) CardDealtEvent {
	if hidden {
		card = deck.Card{}
	}
	return CardDealtEvent{
		RoundID:   roundID,
		Role:      role,
		Card:      card,
		Hidden:    hidden,
		Score:     score,
		timestamp: at,
	}
}

// HoleCardRevealEvent is published when the dealer turns the hole card
type HoleCardRevealEvent struct {
	RoundID     string
	Card        deck.Card
	DealerScore int
	timestamp   time.Time
}

func (e HoleCardRevealEvent) EventType() EventType { return EventTypeHoleCardReveal }
func (e HoleCardRevealEvent) Timestamp() time.Time { return e.timestamp }

// NewHoleCardRevealEvent creates a new hole card reveal event
func NewHoleCardRevealEvent(roundID string, card deck.Card, dealerScore int, at time.Time) HoleCardRevealEvent {
	return HoleCardRevealEvent{
		RoundID:     roundID,
		Card:        card,
		DealerScore: dealerScore,
		timestamp:   at,
	}
}

// RoundSettledEvent is published once per round after the ledger has paid
type RoundSettledEvent struct {
	RoundID     string
	Outcome     Outcome
	Message     string
	PlayerHand  []deck.Card
	DealerHand  []deck.Card
	PlayerScore int
	DealerScore int
	Stake       int
	Credit      int // chips returned to the bank, stake included
	Bank        int
	timestamp   time.Time
}

func (e RoundSettledEvent) EventType() EventType { return EventTypeRoundSettled }
func (e RoundSettledEvent) Timestamp() time.Time { return e.timestamp }

// Net returns the chips won or lost on the round
func (e RoundSettledEvent) Net() int {
	return e.Credit - e.Stake
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a plain function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
