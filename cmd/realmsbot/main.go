// Command realmsbot asks one strategy for a single turn decision and prints it.
//
//	realmsbot -strategy lookahead -players 3 \
//	  -hand "King,Queen,Dragon,Swamp,Forest,Candle,Mirage" \
//	  -discard "Wildfire,Bell Tower" -known "Warship;Basilisk,Unicorn"
//
// Defaults come from REALMS_* variables, optionally loaded from a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/bot"
	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
	"github.com/ChaseHBehrens/Fantasy-Realms-AI/oracle"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "[realmsbot] load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := bot.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[realmsbot] config: %v\n", err)
		os.Exit(1)
	}

	strategy := flag.String("strategy", cfg.Strategy, "strategy name: "+strategyNames())
	handFlag := flag.String("hand", "", "seven comma separated card names")
	discardFlag := flag.String("discard", "", "comma separated discard pile")
	knownFlag := flag.String("known", "", "known opponent cards, one comma list per opponent separated by ';'")
	turns := flag.Int("turns", -1, "turns remaining after this one (-1 derives it from -players)")
	players := flag.Int("players", 2, "number of players")
	drawnFlag := flag.String("drawn", "", "card drawn from the deck, to decide the discard")
	workers := flag.Int("workers", cfg.Workers, "goroutines scoring top-level moves")
	seed := flag.Int64("seed", cfg.Seed, "seed for the random strategy (0 = time based)")
	cacheSize := flag.Int("cache", cfg.OracleCacheSize, "oracle LRU size (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg.Strategy = *strategy
	cfg.Workers = *workers
	cfg.Seed = *seed
	cfg.OracleCacheSize = *cacheSize

	view, err := buildView(*handFlag, *discardFlag, *knownFlag)
	if err != nil {
		logger.Fatal("invalid position", zap.Error(err))
	}
	view.TurnsRemaining = *turns
	if *turns < 0 {
		view.TurnsRemaining = bot.MinTurnsRemaining(view.Discard.Len(), *players)
	}

	agent, calls, err := cfg.NewAgent(oracle.BaseStrength{}, logger)
	if err != nil {
		logger.Fatal("build agent", zap.Error(err))
	}

	draw, err := agent.DecideDraw(view)
	if err != nil {
		logger.Fatal("decide draw", zap.Error(err))
	}
	plan, _ := agent.Pending()
	fmt.Printf("strategy:   %s\n", agent.Name())
	fmt.Printf("hand:       %s\n", view.Hand)
	fmt.Printf("draw:       %s\n", draw)

	var drawn card.Card
	switch {
	case draw.Source == bot.FromDiscard:
		drawn = draw.Card
	case *drawnFlag != "":
		drawn, err = card.Parse(*drawnFlag)
		if err != nil {
			logger.Fatal("invalid -drawn", zap.Error(err))
		}
	}
	if drawn.Valid() {
		discard, err := agent.DecideDiscard(view, drawn)
		if err != nil {
			logger.Fatal("decide discard", zap.Error(err))
		}
		fmt.Printf("discard:    %s\n", discard)
	} else {
		fmt.Println("discard:    deferred until the deck card is known (-drawn)")
	}
	fmt.Printf("evaluation: %.2f\n", plan.Evaluation)
	fmt.Printf("oracle:     %s calls\n", humanize.Comma(calls.Calls()))
}

func newLogger(verbose bool) *zap.Logger {
	var cfg zap.Config
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func buildView(hand, discard, known string) (bot.View, error) {
	var view bot.View
	cards, err := card.ParseList(hand)
	if err != nil {
		return view, fmt.Errorf("hand: %w", err)
	}
	if view.Hand, err = card.NewHand(cards); err != nil {
		return view, fmt.Errorf("hand: %w", err)
	}
	pile, err := card.ParseList(discard)
	if err != nil {
		return view, fmt.Errorf("discard: %w", err)
	}
	view.Discard = card.Of(pile...)
	if strings.TrimSpace(known) != "" {
		for i, part := range strings.Split(known, ";") {
			cards, err := card.ParseList(part)
			if err != nil {
				return view, fmt.Errorf("known[%d]: %w", i, err)
			}
			view.OpponentsKnown = append(view.OpponentsKnown, card.Of(cards...))
		}
	}
	return view, view.Validate()
}

func strategyNames() string {
	names := make([]string, 0, len(bot.Kinds()))
	for _, k := range bot.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
