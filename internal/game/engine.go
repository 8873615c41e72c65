package game

import (
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
)

// DefaultStartingBank is the bank a new engine gets when none is configured
const DefaultStartingBank = 1000

// Config configures an Engine. Zero values get sensible defaults.
type Config struct {
	StartingBank int
	// Shuffle overrides how each fresh shoe is ordered. Takes precedence
	// over RNG.
	Shuffle deck.ShuffleFunc
	// RNG drives the shuffle and round IDs. Defaults to a time-seeded source.
	RNG    *rand.Rand
	Clock  quartz.Clock
	Logger *log.Logger
	Events EventBus
}

// Engine runs single-player blackjack rounds. It owns every piece of
// mutable table state and is not safe for concurrent use; one goroutine
// drives it and each command runs to completion before returning.
type Engine struct {
	shoe   *deck.Shoe
	ledger *Ledger
	ids    *gameid.Generator
	clock  quartz.Clock
	logger *log.Logger
	events EventBus

	state        RoundState
	roundID      string
	player       Hand
	dealer       Hand
	holeRevealed bool
	outcome      Outcome
	message      string
	rounds       int
}

// NewEngine creates an idle engine with the configured bank
func NewEngine(cfg Config) *Engine {
	if cfg.StartingBank == 0 {
		cfg.StartingBank = DefaultStartingBank
	}
	if cfg.RNG == nil {
		cfg.RNG = randutil.New(randutil.Seed(0))
	}
	if cfg.Shuffle == nil {
		cfg.Shuffle = deck.RandomShuffle(cfg.RNG)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Events == nil {
		cfg.Events = NewEventBus()
	}

	return &Engine{
		shoe:   deck.NewShoeWithShuffle(cfg.Shuffle),
		ledger: NewLedger(cfg.StartingBank),
		ids:    gameid.NewGenerator(cfg.RNG, cfg.Clock),
		clock:  cfg.Clock,
		logger: cfg.Logger.WithPrefix("engine"),
		events: cfg.Events,
		state:  Idle,
	}
}

// Subscribe registers a subscriber on the engine's event bus
func (e *Engine) Subscribe(subscriber EventSubscriber) {
	e.events.Subscribe(subscriber)
}

// PlaceChip adds a chip of amount to the stake. Only allowed while Idle and
// when the bank covers it.
func (e *Engine) PlaceChip(amount int) bool {
	if !e.requireState(CommandPlaceChip, Idle) {
		return false
	}
	if !e.ledger.PlaceChip(amount) {
		e.logger.Debug("Insufficient funds for chip", "amount", amount, "bank", e.ledger.Bank())
		return false
	}
	e.publishStake(CommandPlaceChip, amount)
	return true
}

// ClearBet returns the stake to the bank
func (e *Engine) ClearBet() bool {
	if !e.requireState(CommandClearBet, Idle) {
		return false
	}
	amount := e.ledger.CurrentBet()
	if !e.ledger.ClearBet() {
		return false
	}
	e.publishStake(CommandClearBet, amount)
	return true
}

// Rebet stakes the last bet times multiplier (1, 2 or 3)
func (e *Engine) Rebet(multiplier int) bool {
	if !e.requireState(CommandRebet, Idle) {
		return false
	}
	if !e.ledger.Rebet(multiplier) {
		e.logger.Debug("Rebet refused", "multiplier", multiplier, "lastBet", e.ledger.LastBet(), "bank", e.ledger.Bank())
		return false
	}
	e.publishStake(CommandRebet, e.ledger.CurrentBet())
	return true
}

// Deal starts a round on the current stake: a fresh shoe is shuffled and
// the player and dealer each get two cards, the dealer's second face down.
func (e *Engine) Deal() bool {
	if !e.requireState(CommandDeal, Idle) {
		return false
	}
	if e.ledger.CurrentBet() <= 0 {
		e.logger.Debug("Deal refused without a stake")
		return false
	}

	e.ledger.Commit()
	e.roundID = e.ids.Generate()
	e.rounds++
	e.outcome = OutcomeNone
	e.message = ""
	e.player = Hand{}
	e.dealer = Hand{}
	e.holeRevealed = false
	e.shoe.Reset()
	e.state = PlayerTurn

	e.logger.Info("Round started", "round", e.roundID, "stake", e.ledger.CurrentBet(), "bank", e.ledger.Bank())
	e.events.Publish(NewRoundStartEvent(e.roundID, e.ledger.CurrentBet(), e.ledger.Bank(), e.clock.Now()))

	e.dealTo(RolePlayer)
	e.dealTo(RolePlayer)
	e.dealTo(RoleDealer)
	e.dealTo(RoleDealer)
	return true
}

// Hit draws a card for the player. Going over 21 settles the round at once
// and the dealer draws nothing.
func (e *Engine) Hit() bool {
	if !e.requireState(CommandHit, PlayerTurn) {
		return false
	}

	e.dealTo(RolePlayer)
	if e.player.IsBust() {
		e.logger.Info("Player busts", "round", e.roundID, "score", e.player.Score())
		e.settle(OutcomeBust)
	}
	return true
}

// Stand ends the player's turn. The dealer reveals, draws to 17 or more and
// the round is settled before Stand returns.
func (e *Engine) Stand() bool {
	if !e.requireState(CommandStand, PlayerTurn) {
		return false
	}

	e.state = DealerTurn
	e.holeRevealed = true
	e.events.Publish(NewHoleCardRevealEvent(e.roundID, e.dealer[1], e.dealer.Score(), e.clock.Now()))

	for DealerShouldDraw(e.dealer) {
		e.dealTo(RoleDealer)
	}

	e.settle(Resolve(e.player.Score(), e.dealer.Score()))
	return true
}

// dealTo draws one card into the hand for role
func (e *Engine) dealTo(role Role) {
	card := e.shoe.Draw()

	switch role {
	case RolePlayer:
		e.player = append(e.player, card)
		e.events.Publish(NewCardDealtEvent(e.roundID, role, card, false, e.player.Score(), e.clock.Now()))
	case RoleDealer:
		e.dealer = append(e.dealer, card)
		hidden := len(e.dealer) == 2 && !e.holeRevealed
		visible := e.dealer
		if hidden {
			visible = e.dealer[:1]
		}
		e.events.Publish(NewCardDealtEvent(e.roundID, role, card, hidden, visible.Score(), e.clock.Now()))
	}
}

// settle pays the round through the ledger and returns the engine to Idle
func (e *Engine) settle(outcome Outcome) {
	e.state = Settled
	stake := e.ledger.CurrentBet()
	credit := e.ledger.Settle(outcome.Payout())
	e.outcome = outcome
	e.message = outcome.Message()

	e.logger.Info("Round settled",
		"round", e.roundID,
		"outcome", outcome,
		"player", e.player.Score(),
		"dealer", e.dealer.Score(),
		"stake", stake,
		"credit", credit,
		"bank", e.ledger.Bank())

	e.events.Publish(RoundSettledEvent{
		RoundID:     e.roundID,
		Outcome:     outcome,
		Message:     e.message,
		PlayerHand:  e.player.Cards(),
		DealerHand:  e.dealer.Cards(),
		PlayerScore: e.player.Score(),
		DealerScore: e.dealer.Score(),
		Stake:       stake,
		Credit:      credit,
		Bank:        e.ledger.Bank(),
		timestamp:   e.clock.Now(),
	})

	e.state = Idle
}

func (e *Engine) requireState(cmd Command, want RoundState) bool {
	if e.state != want {
		e.logger.Debug("Command ignored", "command", cmd, "state", e.state)
		return false
	}
	return true
}

func (e *Engine) publishStake(cmd Command, amount int) {
	e.events.Publish(NewStakeChangeEvent(cmd, amount, e.ledger.Bank(), e.ledger.CurrentBet(), e.clock.Now()))
}

// State returns the current round state
func (e *Engine) State() RoundState { return e.state }

// RoundID returns the ID of the current or most recent round
func (e *Engine) RoundID() string { return e.roundID }

// Rounds returns how many rounds have been dealt
func (e *Engine) Rounds() int { return e.rounds }

// Bank returns the chips not staked
func (e *Engine) Bank() int { return e.ledger.Bank() }

// CurrentBet returns the current stake
func (e *Engine) CurrentBet() int { return e.ledger.CurrentBet() }

// LastBet returns the last committed or settled stake
func (e *Engine) LastBet() int { return e.ledger.LastBet() }

// Message returns the last round's result line, empty while a round is in
// progress or before the first round
func (e *Engine) Message() string { return e.message }

// LastOutcome returns the last round's outcome
func (e *Engine) LastOutcome() Outcome { return e.outcome }

// PlayerHand returns a copy of the player's cards
func (e *Engine) PlayerHand() []deck.Card { return e.player.Cards() }

// PlayerScore returns the player's total
func (e *Engine) PlayerScore() int { return e.player.Score() }

// DealerHidden reports whether the hole card is still face down
func (e *Engine) DealerHidden() bool {
	return !e.holeRevealed && len(e.dealer) > 1
}

// DealerHand returns the dealer's visible cards: only the up card while the
// hole card is face down
func (e *Engine) DealerHand() []deck.Card {
	if e.DealerHidden() {
		return e.dealer[:1].Cards()
	}
	return e.dealer.Cards()
}

// DealerScore returns the dealer's total and true once the hole card is
// revealed, or 0 and false while it is hidden. A hand that has never been
// dealt scores 0 and counts as visible.
func (e *Engine) DealerScore() (int, bool) {
	if e.DealerHidden() {
		return 0, false
	}
	return e.dealer.Score(), true
}

// CanPlaceChip reports whether PlaceChip(amount) would succeed
func (e *Engine) CanPlaceChip(amount int) bool {
	return e.state == Idle && e.ledger.CanPlace(amount)
}

// CanRebet reports whether Rebet(multiplier) would succeed
func (e *Engine) CanRebet(multiplier int) bool {
	return e.state == Idle && e.ledger.CanRebet(multiplier)
}

// ValidCommands lists the commands that would currently have an effect.
// CommandPlaceChip is listed when any positive chip fits in the bank.
func (e *Engine) ValidCommands() []Command {
	switch e.state {
	case Idle:
		var cmds []Command
		if e.ledger.Bank() > 0 {
			cmds = append(cmds, CommandPlaceChip)
		}
		if e.ledger.CurrentBet() > 0 {
			cmds = append(cmds, CommandClearBet)
		}
		if e.ledger.CanRebet(1) {
			cmds = append(cmds, CommandRebet)
		}
		if e.ledger.CurrentBet() > 0 {
			cmds = append(cmds, CommandDeal)
		}
		return cmds
	case PlayerTurn:
		return []Command{CommandHit, CommandStand}
	default:
		return nil
	}
}

// IsValid reports whether cmd is in ValidCommands
func (e *Engine) IsValid(cmd Command) bool {
	return slices.Contains(e.ValidCommands(), cmd)
}
