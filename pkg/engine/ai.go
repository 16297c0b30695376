package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

// AiOff is an idle engine owning a game. Start hands the game to a thinking
// AiOn; the AiOff must not be used afterwards.
type AiOff struct {
	tree    *BoardTree
	options Options
}

func NewAiOff(b *Board, options Options) *AiOff {
	return &AiOff{
		tree:    NewBoardTree(b),
		options: options,
	}
}

func (ai *AiOff) Board() *Board {
	return ai.tree.Board()
}

func (ai *AiOff) BoardData() *BoardData {
	return ai.tree.Root()
}

func (ai *AiOff) Moves() []Move {
	return ai.tree.Root().Moves()
}

func (ai *AiOff) MakeMove(idx MoveIdx) error {
	return ai.tree.MakeMove(idx)
}

func (ai *AiOff) UnmakeMove() error {
	return ai.tree.UnmakeMove()
}

func (ai *AiOff) Start() *AiOn {
	var ctx, cancel = context.WithCancel(context.Background())
	var on = &AiOn{
		tree:    ai.tree,
		options: ai.options,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	ai.tree = nil
	go on.think(ctx)
	return on
}

// AiOn is an engine thinking in the background.
type AiOn struct {
	tree    *BoardTree
	options Options
	cancel  context.CancelFunc
	done    chan struct{}

	mu       sync.Mutex
	bestMove MoveIdx
	hasBest  bool
	depth    int
}

func (ai *AiOn) think(ctx context.Context) {
	defer close(ai.done)
	var logger = ai.options.Logger
	var start = time.Now()
	var totalNodes int64
	logger.Info().
		Int("moves", ai.tree.Root().NumMoves()).
		Int("threads", ai.options.Threads).
		Msg("search started")
	for depth := 1; ai.options.MaxDepth <= 0 || depth <= ai.options.MaxDepth; depth++ {
		var result, err = ai.tree.BestMoveAtDepth(ctx, ai.options.SearchParams(depth))
		totalNodes += result.Nodes
		if err != nil {
			if !errors.Is(err, errSearchCancelled) {
				logger.Error().Err(err).Int("depth", depth).Msg("search failed")
			}
			break
		}
		logger.Debug().
			Int("depth", depth).
			Str("score", result.Score.String()).
			Int64("nodes", result.Nodes).
			Int("move", int(result.Move)).
			Msg("iteration complete")
		if !result.HasMove {
			break
		}
		ai.mu.Lock()
		ai.bestMove, ai.hasBest, ai.depth = result.Move, true, depth
		ai.mu.Unlock()
	}
	logger.Info().
		Int64("nodes", totalNodes).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
}

// CurrentBestMove returns the best move of the deepest completed iteration.
func (ai *AiOn) CurrentBestMove() (MoveIdx, bool) {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.bestMove, ai.hasBest
}

// Move looks up a root move. The root move list does not change while
// thinking, so this is safe during the search.
func (ai *AiOn) Move(idx MoveIdx) (Move, error) {
	return ai.tree.Root().Move(idx)
}

// Depth is the deepest completed iteration.
func (ai *AiOn) Depth() int {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.depth
}

// Done is closed when the search ends on its own or after Finish.
func (ai *AiOn) Done() <-chan struct{} {
	return ai.done
}

// Finish stops the search and returns the game with its caches.
func (ai *AiOn) Finish() (*AiOff, MoveIdx, bool) {
	ai.cancel()
	<-ai.done
	var move, ok = ai.CurrentBestMove()
	return &AiOff{tree: ai.tree, options: ai.options}, move, ok
}
