package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/players"
)

// MaxGames bounds a single batch. Seeds and results are allocated up front.
const MaxGames = 100_000

// Config describes a batch of games between two fixed decks and strategies.
type Config struct {
	Decks    [2]game.Deck
	Players  [2]string // player codes, see players.ParsePlayerCode
	Games    int
	Seed     int64 // batch seed; each game gets its own seed derived from it
	Workers  int   // 0 = runtime.NumCPU()
	MaxTurns int   // 0 = game.DefaultMaxTurns
	Logger   *zap.Logger
}

// GameResult is the outcome of one game in a batch.
type GameResult struct {
	Index   int
	Seed    int64
	Outcome game.Outcome
	Turns   int
	Points  [2]int
}

// Results aggregates a batch. Everything except RunID and Duration depends
// only on the config, never on the worker count.
type Results struct {
	RunID    string
	Games    int
	Wins     [2]int
	Ties     int
	Timeouts int
	AvgTurns float64
	Duration time.Duration
	Details  []GameResult
}

// WinRate is the fraction of games won by player.
func (r Results) WinRate(player int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins[player]) / float64(r.Games)
}

func (r Results) String() string {
	return fmt.Sprintf("%d games: P1 %d (%.1f%%), P2 %d (%.1f%%), %d ties, %d timeouts, %.1f avg turns",
		r.Games, r.Wins[0], 100*r.WinRate(0), r.Wins[1], 100*r.WinRate(1), r.Ties, r.Timeouts, r.AvgTurns)
}

// RunBatch plays cfg.Games games on a pool of workers. Game seeds are drawn
// from cfg.Seed up front so results match a serial run.
func RunBatch(ctx context.Context, cfg Config) (Results, error) {
	if cfg.Games <= 0 {
		return Results{}, errors.New("simulate: games must be positive")
	}
	if cfg.Games > MaxGames {
		return Results{}, fmt.Errorf("simulate: at most %d games per batch, got %d", MaxGames, cfg.Games)
	}
	for _, code := range cfg.Players {
		if _, err := players.ParsePlayerCode(code, game.Deck{}); err != nil {
			return Results{}, fmt.Errorf("simulate: %w", err)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	logger.Info("batch started",
		zap.Int("games", cfg.Games),
		zap.Int("workers", workers),
		zap.Int64("seed", cfg.Seed),
		zap.Strings("players", cfg.Players[:]))
	start := time.Now()

	rng := rand.New(rand.NewSource(cfg.Seed))
	jobs := make(chan GameResult, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		jobs <- GameResult{Index: i, Seed: rng.Int63()}
	}
	close(jobs)

	results := make([]GameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for job := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := playOne(cfg, job)
				if err != nil {
					return err
				}
				results[job.Index] = res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	out := aggregate(results)
	out.RunID = runID
	out.Duration = time.Since(start)
	logger.Info("batch finished",
		zap.Int("p1_wins", out.Wins[0]),
		zap.Int("p2_wins", out.Wins[1]),
		zap.Int("ties", out.Ties),
		zap.Int("timeouts", out.Timeouts),
		zap.Float64("avg_turns", out.AvgTurns),
		zap.Duration("duration", out.Duration))
	return out, nil
}

// playOne runs a single game. A panic inside the engine is reported as an
// error for that game rather than taking the whole batch down.
func playOne(cfg Config, job GameResult) (res GameResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game %d (seed %d): %v", job.Index, job.Seed, r)
		}
	}()
	var seats [2]game.Player
	for p := 0; p < 2; p++ {
		seats[p], err = players.ParsePlayerCode(cfg.Players[p], cfg.Decks[p])
		if err != nil {
			return GameResult{}, err
		}
	}
	g := game.NewGame(game.GameConfig{Seed: job.Seed, MaxTurns: cfg.MaxTurns}, seats[0], seats[1])
	job.Outcome = g.Play()
	s := g.State()
	job.Turns = s.TurnCount
	job.Points = s.Points
	return job, nil
}

func aggregate(results []GameResult) Results {
	out := Results{Games: len(results), Details: results}
	turns := 0
	for _, r := range results {
		switch r.Outcome.Kind {
		case game.OutcomeWin:
			out.Wins[r.Outcome.Winner]++
		case game.OutcomeTie:
			out.Ties++
		case game.OutcomeTimeout:
			out.Timeouts++
		}
		turns += r.Turns
	}
	if len(results) > 0 {
		out.AvgTurns = float64(turns) / float64(len(results))
	}
	return out
}
