package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/logging"
	"github.com/peterkuimelis/tcgsim/internal/players"
	"github.com/peterkuimelis/tcgsim/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "simulate":
		runSimulate(os.Args[2:])
	case "play":
		runPlay(os.Args[2:])
	case "cards":
		runCards(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  tcgsim simulate [--deck1 N] [--deck2 N] [--p1 CODE] [--p2 CODE] [--games G] [--seed S] [--workers W]")
	fmt.Println("  tcgsim play     [--deck1 N] [--deck2 N] [--p1 CODE] [--p2 CODE] [--seed S]")
	fmt.Println("  tcgsim cards    [--incomplete]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  simulate  Play a batch of games and print win rates")
	fmt.Println("  play      Play one game and print every event")
	fmt.Println("  cards     List cards and their implementation status")
	fmt.Println()
	fmt.Println("Player codes: r (random), e (end turn), aa (attach and attack), v (value function)")
}

type matchFlags struct {
	decksFile *string
	deck1     *int
	deck2     *int
	p1        *string
	p2        *string
	seed      *int64
	maxTurns  *int
	verbose   *bool
}

func addMatchFlags(fs *flag.FlagSet) matchFlags {
	return matchFlags{
		decksFile: fs.String("decks", "decks.yaml", "path to decks file"),
		deck1:     fs.Int("deck1", 1, "deck number for player 1 (from decks.yaml)"),
		deck2:     fs.Int("deck2", 2, "deck number for player 2 (from decks.yaml)"),
		p1:        fs.String("p1", players.CodeAttachAttack, "player 1 strategy code"),
		p2:        fs.String("p2", players.CodeAttachAttack, "player 2 strategy code"),
		seed:      fs.Int64("seed", 0, "random seed"),
		maxTurns:  fs.Int("max-turns", game.DefaultMaxTurns, "turn cap before a game is a timeout"),
		verbose:   fs.Bool("v", false, "debug logging"),
	}
}

func (m matchFlags) decks() ([2]game.Deck, error) {
	var decks [2]game.Deck
	for i, n := range []int{*m.deck1, *m.deck2} {
		d, err := game.DeckByNumber(*m.decksFile, n)
		if err != nil {
			return decks, fmt.Errorf("deck %d: %w", i+1, err)
		}
		if err := game.ValidateDeck(d.Deck); err != nil {
			return decks, fmt.Errorf("deck %q: %w", d.Name, err)
		}
		decks[i] = d.Deck
	}
	return decks, nil
}

func runSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	m := addMatchFlags(fs)
	games := fs.Int("games", 100, "number of games")
	workers := fs.Int("workers", 0, "parallel workers (0 = one per CPU)")
	fs.Parse(args)

	logger := mustLogger(*m.verbose)
	defer logger.Sync()

	decks, err := m.decks()
	if err != nil {
		fail(err)
	}
	res, err := simulate.RunBatch(context.Background(), simulate.Config{
		Decks:    decks,
		Players:  [2]string{*m.p1, *m.p2},
		Games:    *games,
		Seed:     *m.seed,
		Workers:  *workers,
		MaxTurns: *m.maxTurns,
		Logger:   logger,
	})
	if err != nil {
		fail(err)
	}
	fmt.Println(res)
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	m := addMatchFlags(fs)
	fs.Parse(args)

	logger := mustLogger(*m.verbose)
	defer logger.Sync()

	decks, err := m.decks()
	if err != nil {
		fail(err)
	}
	var seats [2]game.Player
	for p, code := range []string{*m.p1, *m.p2} {
		seats[p], err = players.ParsePlayerCode(code, decks[p])
		if err != nil {
			fail(err)
		}
	}

	g := game.NewGame(game.GameConfig{
		Seed:     *m.seed,
		MaxTurns: *m.maxTurns,
		Logger:   log.NewTextLogger(os.Stdout),
		Debug:    logger,
	}, seats[0], seats[1])
	outcome := g.Play()
	logger.Info("game finished", zap.Stringer("outcome", outcome), zap.Int("ticks", g.Ticks()))
}

func runCards(args []string) {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	incomplete := fs.Bool("incomplete", false, "only list cards the engine cannot fully simulate")
	fs.Parse(args)

	for _, c := range game.AllCards() {
		st := game.ImplementationStatus(c)
		if *incomplete && st.IsComplete() {
			continue
		}
		fmt.Printf("%s  %-20s %-9s %s\n", c.ID, c.Name, c.Kind, st)
	}
}

func mustLogger(verbose bool) *zap.Logger {
	logger, err := logging.New(verbose)
	if err != nil {
		fail(err)
	}
	return logger
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
