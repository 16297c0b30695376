package arena

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/VariantGo/pkg/engine"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

// Config describes a match between two engine settings. Every opening is
// played twice with colours swapped.
type Config struct {
	Variant      string
	Openings     int
	OpeningPlies int
	MaxPlies     int
	Concurrency  int
	Seed         int64
	EngineA      engine.Options
	EngineB      engine.Options

	// Games receives every finished game when set.
	Games io.Writer
}

const (
	gameResultDraw = iota
	gameResultWhiteWins
	gameResultBlackWins
)

type gameInfo struct {
	opening        []string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []string
	comment  string
	result   int
}

// Run plays the match and returns the score of engine A.
func Run(ctx context.Context, config Config, logger zerolog.Logger) (Stats, error) {
	var v, err = variants.ByName(config.Variant)
	if err != nil {
		return Stats{}, err
	}
	if !hasLimit(config.EngineA) || !hasLimit(config.EngineB) {
		return Stats{}, errors.New("arena engines need a depth or node limit")
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}

	logger.Info().
		Str("variant", v.Name).
		Int("openings", config.Openings).
		Int("concurrency", config.Concurrency).
		Msg("arena started")
	defer logger.Info().Msg("arena finished")

	var g, gctx = errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(gctx, v, config, gameInfos)
	})

	g.Go(func() error {
		var err error
		stats, err = collectResults(v, gameResults, config.Games, logger)
		return err
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(gctx, v, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return stats, err
	}
	return stats, nil
}

func hasLimit(o engine.Options) bool {
	return o.MaxDepth > 0 || o.MaxNodes > 0
}

func playGames(
	ctx context.Context,
	v *variants.Variant,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for info := range gameInfos {
		var res, err = playGame(ctx, v, config, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
