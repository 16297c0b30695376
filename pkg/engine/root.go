package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

type SearchParams struct {
	MaxDepth        int
	MaxQuiesceDepth int
	MaxNodes        int64
	Threads         int
	DeltaPruning    bool
}

type SearchResult struct {
	Move    MoveIdx
	HasMove bool
	Score   Score
	Nodes   int64
}

// BestMoveAtDepth searches every root move in parallel. All root searches
// share one alpha cell, so a finished move tightens the others. The result
// does not depend on the order in which the searches finish.
func (t *BoardTree) BestMoveAtDepth(ctx context.Context, params SearchParams) (SearchResult, error) {
	var root = t.Root()
	if root.IsTerminal() {
		return SearchResult{Score: root.evaluation}, nil
	}

	var g, gctx = errgroup.WithContext(ctx)
	if params.Threads > 0 {
		g.SetLimit(params.Threads)
	}
	var nodes atomic.Int64
	var s = &searcher{
		ctx:             gctx,
		nodes:           &nodes,
		maxNodes:        params.MaxNodes,
		maxDepth:        params.MaxDepth,
		maxQuiesceDepth: params.MaxQuiesceDepth,
		deltaPruning:    params.DeltaPruning,
	}
	var alpha = sharedBound{}.push()
	var scores = make([]Score, len(root.moves))

	for i := range root.moves {
		var i = i
		var md = root.moves[i]
		var b = t.board.Clone()
		g.Go(func() error {
			var score, err = md.alphaBeta(s, b, 0, alpha, sharedBound{})
			if err != nil {
				return err
			}
			alpha.refine(score)
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SearchResult{Nodes: nodes.Load()}, err
	}

	var result = SearchResult{HasMove: true, Nodes: nodes.Load()}
	for i, score := range scores {
		if i == 0 || result.Score.Less(score) {
			result.Move = MoveIdx(i)
			result.Score = score
		}
	}
	return result, nil
}
