package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/engine"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

func playGame(
	ctx context.Context,
	v *variants.Variant,
	config Config,
	info gameInfo,
) (gameResult, error) {
	var engineA = engine.NewAiOff(v.NewGame(), config.EngineA)
	var engineB = engine.NewAiOff(v.NewGame(), config.EngineB)
	var moves []string
	var play = func(idx common.MoveIdx) error {
		var m, err = engineA.BoardData().Move(idx)
		if err != nil {
			return err
		}
		moves = append(moves, v.MoveName(m))
		return makeMove(engineA, engineB, idx)
	}
	var finish = func(comment string, result int) (gameResult, error) {
		return gameResult{gameInfo: info, moves: moves, comment: comment, result: result}, nil
	}

	for _, code := range info.opening {
		var idx, err = v.FindMove(engineA.Moves(), code)
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: opening: %w", info.gameNumber, err)
		}
		if err := play(idx); err != nil {
			return gameResult{}, err
		}
	}

	for {
		var b = engineA.Board()
		var bd = engineA.BoardData()
		if bd.IsTerminal() {
			if !bd.IsCheck() {
				return finish("stalemate", gameResultDraw)
			}
			var result = gameResultWhiteWins
			if b.Turn() == common.White {
				result = gameResultBlackWins
			}
			return finish("checkmate", result)
		}
		if config.MaxPlies > 0 && b.MoveNumber() >= config.MaxPlies {
			return finish("ply limit", gameResultDraw)
		}

		var idx common.MoveIdx
		var ok bool
		var err error
		if (b.Turn() == common.White) == info.engineAIsWhite {
			engineA, idx, ok, err = think(ctx, engineA)
		} else {
			engineB, idx, ok, err = think(ctx, engineB)
		}
		if err != nil {
			return gameResult{}, err
		}
		if !ok {
			return gameResult{}, fmt.Errorf("game %v: engine returned no move at ply %v",
				info.gameNumber, b.MoveNumber())
		}
		if err := play(idx); err != nil {
			return gameResult{}, err
		}
	}
}

// think runs a search to its limits and hands the game back.
func think(ctx context.Context, off *engine.AiOff) (*engine.AiOff, common.MoveIdx, bool, error) {
	var on = off.Start()
	select {
	case <-on.Done():
	case <-ctx.Done():
		off, _, _ = on.Finish()
		return off, 0, false, ctx.Err()
	}
	var next, idx, ok = on.Finish()
	return next, idx, ok, nil
}

// Both engines see the same positions, so move indices agree.
func makeMove(engineA, engineB *engine.AiOff, idx common.MoveIdx) error {
	if err := engineA.MakeMove(idx); err != nil {
		return err
	}
	return engineB.MakeMove(idx)
}
