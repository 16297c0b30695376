package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/engine"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

// Usage:
//
//	tests perft -variant wormhole -depth 4
//	tests benchmark -depth 4
func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	var handler = NewCommandHandler()
	handler.Add("perft", perftHandler)
	handler.Add("benchmark", benchmarkHandler)
	if err := handler.Execute(NewCommandArgs(os.Args[1:])); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func setupBoard(args *CommandArgs) (*variants.Variant, *common.Board, error) {
	if fen := args.GetString("fen", ""); fen != "" {
		return variants.ClassicalFromFEN(fen)
	}
	var v, err = variants.ByName(args.GetString("variant", "classical"))
	if err != nil {
		return nil, nil, err
	}
	return v, v.NewGame(), nil
}

// perftHandler prints the node count below every root move.
func perftHandler(args *CommandArgs) error {
	var v, b, err = setupBoard(args)
	if err != nil {
		return err
	}
	depth, err := args.GetInt("depth", 3)
	if err != nil {
		return err
	}
	if depth < 1 {
		return fmt.Errorf("depth must be positive, got %d", depth)
	}
	var start = time.Now()
	var total = 0
	for _, m := range common.GenerateLegalMoves(b).Moves {
		b.MakeMove(m)
		var nodes = common.Perft(b, depth-1)
		if err := b.UnmakeMove(); err != nil {
			return err
		}
		fmt.Printf("%v: %d\n", v.MoveName(m), nodes)
		total += nodes
	}
	fmt.Println("Nodes", total)
	log.Info().
		Str("variant", v.Name).
		Int("depth", depth).
		Dur("elapsed", time.Since(start)).
		Msg("perft finished")
	return nil
}

var benchmarkFENs = []string{
	variants.InitialPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// benchmarkHandler searches a fixed set of positions plus the start of every
// variant to the same depth.
func benchmarkHandler(args *CommandArgs) error {
	var depth, err = args.GetInt("depth", 4)
	if err != nil {
		return err
	}
	threads, err := args.GetInt("threads", 1)
	if err != nil {
		return err
	}
	var opts = engine.NewOptions()
	opts.Threads = threads

	var boards []*common.Board
	for _, fen := range benchmarkFENs {
		var _, b, err = variants.ClassicalFromFEN(fen)
		if err != nil {
			return err
		}
		boards = append(boards, b)
	}
	for _, name := range variants.Names() {
		var v, _ = variants.ByName(name)
		boards = append(boards, v.NewGame())
	}

	var start = time.Now()
	var nodes int64
	for _, b := range boards {
		var tree = engine.NewBoardTree(b)
		for d := 1; d <= depth; d++ {
			var result, err = tree.BestMoveAtDepth(context.Background(), opts.SearchParams(d))
			if err != nil {
				return err
			}
			nodes += result.Nodes
		}
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	if ms := elapsed.Milliseconds(); ms > 0 {
		fmt.Println("kNPS", nodes/ms)
	}
	return nil
}
