package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/VariantGo/internal/arena"
	"github.com/ChizhovVadim/VariantGo/internal/config"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

// arena plays engine settings against each other: engine A uses the
// configured options, engine B the same with delta pruning toggled.
func main() {
	var (
		flgConfig   string
		arenaConfig arena.Config
	)
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&arenaConfig.Variant, "variant", "classical", "board variant: "+strings.Join(variants.Names(), ", "))
	flag.IntVar(&arenaConfig.Openings, "openings", 50, "number of random openings, each played twice")
	flag.IntVar(&arenaConfig.OpeningPlies, "openingplies", 4, "random plies per opening")
	flag.IntVar(&arenaConfig.MaxPlies, "maxplies", 200, "game is drawn after this many plies")
	flag.IntVar(&arenaConfig.Concurrency, "concurrency", 4, "number of games played at once")
	flag.Int64Var(&arenaConfig.Seed, "seed", 1, "seed of random openings")
	var depth = flag.Int("depth", 3, "search depth of both engines")
	var gamesPath = flag.String("pgn", "", "file to append finished games to")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg, err = config.Load(flgConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	// engines log nothing; the arena reports per game
	arenaConfig.EngineA = cfg.EngineOptions(zerolog.Nop())
	arenaConfig.EngineA.Threads = 1
	arenaConfig.EngineA.MaxDepth = *depth
	arenaConfig.EngineB = arenaConfig.EngineA
	arenaConfig.EngineB.DeltaPruning = !arenaConfig.EngineA.DeltaPruning

	if *gamesPath != "" {
		var file, err = os.OpenFile(*gamesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open pgn file")
		}
		defer file.Close()
		arenaConfig.Games = file
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	stats, err := arena.Run(ctx, arenaConfig, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("arena failed")
	}
	log.Info().
		Int("wins", stats.Wins).
		Int("losses", stats.Losses).
		Int("draws", stats.Draws).
		Msg("match finished")
}
