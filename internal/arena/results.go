package arena

import (
	"io"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/VariantGo/internal/pgn"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

// Stats counts results from engine A's side.
type Stats struct {
	Wins   int
	Losses int
	Draws  int
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func (s Stats) WinningFraction() float64 {
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games())
}

// https://www.chessprogramming.org/Match_Statistics
func (s Stats) EloDifference() float64 {
	return -math.Log(1/s.WinningFraction()-1) * 400 / math.Ln10
}

// LOS is the likelihood of superiority of engine A.
func (s Stats) LOS() float64 {
	if s.Wins+s.Losses == 0 {
		return 0.5
	}
	return 0.5 + 0.5*math.Erf(float64(s.Wins-s.Losses)/math.Sqrt(2*float64(s.Wins+s.Losses)))
}

func (s *Stats) add(res gameResult) {
	switch {
	case res.result == gameResultDraw:
		s.Draws++
	case res.result == gameResultWhiteWins && res.gameInfo.engineAIsWhite,
		res.result == gameResultBlackWins && !res.gameInfo.engineAIsWhite:
		s.Wins++
	default:
		s.Losses++
	}
}

func collectResults(
	v *variants.Variant,
	gameResults <-chan gameResult,
	games io.Writer,
	logger zerolog.Logger,
) (Stats, error) {
	var stats Stats
	for res := range gameResults {
		stats.add(res)
		if games != nil {
			if err := pgn.Write(games, newPgnGame(v, res)); err != nil {
				// keep draining so the players can finish
				logger.Error().Err(err).Msg("failed to write game")
				games = nil
			}
		}
		logger.Info().
			Int("game", res.gameInfo.gameNumber).
			Str("result", gameResultString(res.result)).
			Str("reason", res.comment).
			Int("plies", len(res.moves)).
			Msg("game finished")
		logger.Info().
			Int("wins", stats.Wins).
			Int("losses", stats.Losses).
			Int("draws", stats.Draws).
			Float64("fraction", stats.WinningFraction()).
			Float64("elo", stats.EloDifference()).
			Float64("los", stats.LOS()).
			Msg("score")
	}
	return stats, nil
}

func newPgnGame(v *variants.Variant, res gameResult) *pgn.Game {
	var white, black = "A", "B"
	if !res.gameInfo.engineAIsWhite {
		white, black = black, white
	}
	return &pgn.Game{
		Tags: []pgn.Tag{
			{Key: "Event", Value: "arena"},
			{Key: "Round", Value: strconv.Itoa(res.gameInfo.gameNumber)},
			{Key: "Variant", Value: v.Name},
			{Key: "White", Value: white},
			{Key: "Black", Value: black},
			{Key: "Termination", Value: res.comment},
		},
		Moves:  res.moves,
		Result: gameResultString(res.result),
	}
}

func gameResultString(v int) string {
	switch v {
	case gameResultWhiteWins:
		return pgn.GameResultWhiteWin
	case gameResultBlackWins:
		return pgn.GameResultBlackWin
	case gameResultDraw:
		return pgn.GameResultDraw
	}
	return pgn.GameResultNone
}
