// Package game implements the single-player blackjack round engine.
//
// The main type is Engine, which owns the shoe, both hands, the betting
// ledger and the round state, and exposes a small command/query surface for
// whatever renders the table.
//
// # Basic Usage
//
//	e := game.NewEngine(game.Config{StartingBank: 1000})
//	e.PlaceChip(100)
//	e.Deal()
//	e.Hit()
//	e.Stand()
//	snap := e.Snapshot()
//	fmt.Println(snap.Message, snap.Bank)
//
// Commands return false and leave state untouched when they are not legal
// in the current RoundState or when the bank cannot cover them. Nothing in
// the engine returns an error.
//
// # Deterministic Testing
//
// Inject either a seeded RNG or a ShuffleFunc that stacks the shoe:
//
//	e := game.NewEngine(game.Config{
//	    StartingBank: 1000,
//	    RNG:          randutil.New(42),
//	})
//
// # Architecture
//
// Engine delegates to small, separately testable pieces:
//   - deck.Shoe: fresh shuffled 52-card shoe per round, refilled on exhaustion
//   - Score: best blackjack total under the soft/hard ace rule
//   - Ledger: bank, current stake and last stake
//   - DealerShouldDraw: stand on every 17
//   - Resolve: outcome and payout multiplier from the final scores
//
// Every state change is also published as an Event on the engine's
// EventBus so renderers and recorders can follow along without polling.
package game
