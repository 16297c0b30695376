package engine

import (
	"context"
	"errors"
	"sync/atomic"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

var errSearchCancelled = errors.New("search cancelled")

// ErrSearchCancelled is returned when a search is stopped by its context or
// its node limit.
var ErrSearchCancelled = errSearchCancelled

// deltaMargin is the slack allowed when pruning captures that cannot raise alpha.
const deltaMargin = 200

type searcher struct {
	ctx             context.Context
	nodes           *atomic.Int64
	maxNodes        int64
	maxDepth        int
	maxQuiesceDepth int
	deltaPruning    bool
}

func (s *searcher) enter() error {
	if s.ctx.Err() != nil {
		return errSearchCancelled
	}
	var n = s.nodes.Add(1)
	if s.maxNodes > 0 && n > s.maxNodes {
		return errSearchCancelled
	}
	return nil
}

// alphaBeta plays the move, searches the resulting position and takes the
// move back. The result is from the point of view of the side making the move.
func (md *MoveData) alphaBeta(s *searcher, b *Board, depth int, alpha, beta sharedBound) (Score, error) {
	b.MakeMove(md.move)
	var child = md.childData(b)
	var score, err = child.alphaBeta(s, b, depth, beta, alpha)
	if uerr := b.UnmakeMove(); uerr != nil {
		panic(uerr)
	}
	if err != nil {
		return Score{}, err
	}
	score = score.Neg()
	md.approx, md.hasApprox = score, true
	return score, nil
}

func (md *MoveData) quiesce(s *searcher, b *Board, depth int, alpha, beta sharedBound) (Score, error) {
	b.MakeMove(md.move)
	var child = md.childData(b)
	var score, err = child.quiesce(s, b, depth, beta, alpha)
	if uerr := b.UnmakeMove(); uerr != nil {
		panic(uerr)
	}
	if err != nil {
		return Score{}, err
	}
	score = score.Neg()
	md.approx, md.hasApprox = score, true
	return score, nil
}

// alphaBeta searches the position on b, which bd describes. alpha holds the
// lower bounds of the side to move, beta those of the opponent.
func (bd *BoardData) alphaBeta(s *searcher, b *Board, depth int, alpha, beta sharedBound) (Score, error) {
	if err := s.enter(); err != nil {
		return Score{}, err
	}
	if bd.IsTerminal() {
		return bd.evaluation, nil
	}
	if depth >= s.maxDepth {
		return bd.quiesce(s, b, depth, alpha, beta)
	}
	var own = alpha.push()
	var best Score
	for i, md := range bd.orderedMoves() {
		var score, err = md.alphaBeta(s, b, depth+1, own, beta)
		if err != nil {
			return Score{}, err
		}
		if !beta.upper().Admits(score) {
			return score, nil
		}
		if i == 0 || best.Less(score) {
			best = score
		}
		own.refine(score)
	}
	return best, nil
}

func (bd *BoardData) quiesce(s *searcher, b *Board, depth int, alpha, beta sharedBound) (Score, error) {
	if err := s.enter(); err != nil {
		return Score{}, err
	}
	if bd.IsTerminal() {
		return bd.evaluation, nil
	}
	var standPat = bd.evaluation
	if depth >= s.maxQuiesceDepth {
		return standPat, nil
	}
	if !beta.upper().Admits(standPat) {
		return standPat, nil
	}
	var own = alpha.push()
	own.refine(standPat)
	var best = standPat
	for _, md := range bd.orderedMoves() {
		if !md.move.IsCapture() {
			continue
		}
		if s.deltaPruning &&
			!own.lower().Admits(standPat.AddHeuristic(materialGain(md.move)+deltaMargin)) {
			continue
		}
		var score, err = md.quiesce(s, b, depth+1, own, beta)
		if err != nil {
			return Score{}, err
		}
		if !beta.upper().Admits(score) {
			return score, nil
		}
		if best.Less(score) {
			best = score
		}
		own.refine(score)
	}
	return best, nil
}
