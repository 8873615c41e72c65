package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds       int // per session
	Sessions     int
	StartingBank int
	Seed         int64
	Strategy     Strategy
	// Record keeps a round history for every session
	Record bool
	Clock  quartz.Clock
	Logger *log.Logger
}

// SessionResult is the outcome of one independent session
type SessionResult struct {
	Index     int
	ID        string
	Seed      int64
	Played    int
	FinalBank int
	// Broke is set when the session stopped because the bank could not
	// cover the next bet
	Broke   bool
	Stats   *statistics.Statistics
	History *history.Session
}

// Result aggregates every session
type Result struct {
	Stats    *statistics.Statistics
	Sessions []SessionResult
}

// Simulator plays blackjack sessions with a fixed strategy
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	if config.StartingBank <= 0 {
		config.StartingBank = game.DefaultStartingBank
	}
	if config.Strategy == nil {
		config.Strategy = FlatStrategy{BaseBet: 10, StandOn: game.DealerStandTotal}
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config}
}

// Seed returns the base seed sessions derive theirs from
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// Run plays every session concurrently and merges their statistics. The
// result for a given seed does not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	results := make([]SessionResult, s.config.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	for i := range s.config.Sessions {
		g.Go(func() error {
			result, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Merge(r.Stats)
	}
	if stats.Rounds > 0 {
		if err := stats.Validate(); err != nil {
			return nil, fmt.Errorf("statistics validation failed: %w", err)
		}
	}

	return &Result{Stats: stats, Sessions: results}, nil
}

func (s *Simulator) playSession(ctx context.Context, index int) (SessionResult, error) {
	seed := randutil.Derive(s.config.Seed, index)
	logger := s.config.Logger.With("session", index)

	engine := game.NewEngine(game.Config{
		StartingBank: s.config.StartingBank,
		RNG:          randutil.New(seed),
		Clock:        s.config.Clock,
		Logger:       logger,
	})

	result := SessionResult{
		Index: index,
		ID:    uuid.NewString(),
		Seed:  seed,
		Stats: &statistics.Statistics{},
	}
	engine.Subscribe(game.EventSubscriberFunc(func(event game.GameEvent) {
		if settled, ok := event.(game.RoundSettledEvent); ok {
			result.Stats.Add(statistics.RoundFromEvent(settled))
		}
	}))

	var recorder *history.Recorder
	if s.config.Record {
		recorder = history.NewRecorder(history.Session{
			ID:           result.ID,
			StartingBank: s.config.StartingBank,
			Seed:         seed,
			Started:      s.config.Clock.Now(),
		})
		engine.Subscribe(recorder)
	}

	for range s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return SessionResult{}, err
		}

		if !placeBet(engine, s.config.Strategy.Bet(engine.Bank())) {
			result.Broke = true
			logger.Debug("Bank cannot cover the bet", "bank", engine.Bank())
			break
		}
		if !engine.Deal() {
			return SessionResult{}, fmt.Errorf("deal refused with stake %d", engine.CurrentBet())
		}
		for engine.State() == game.PlayerTurn {
			if s.config.Strategy.Hit(engine.Snapshot()) {
				engine.Hit()
			} else {
				engine.Stand()
			}
		}
		result.Played++
	}

	result.FinalBank = engine.Bank()
	if recorder != nil {
		result.History = recorder.Session()
	}
	logger.Info("Session complete", "rounds", result.Played, "bank", result.FinalBank, "broke", result.Broke)
	return result, nil
}

// placeBet stakes bet, repeating the previous stake when it matches
func placeBet(engine *game.Engine, bet int) bool {
	if bet <= 0 {
		return false
	}
	if engine.LastBet() == bet && engine.CanRebet(1) {
		return engine.Rebet(1)
	}
	return engine.PlaceChip(bet)
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, rounds, sessions int, seed int64, strategy Strategy, logger *log.Logger) (*Result, error) {
	return New(Config{
		Rounds:   rounds,
		Sessions: sessions,
		Seed:     seed,
		Strategy: strategy,
		Logger:   logger,
	}).Run(ctx)
}
