package engine

import (
	"golang.org/x/exp/slices"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

// BoardData caches the legal moves and static evaluation of a position.
// Children are generated on demand as the search visits them.
type BoardData struct {
	isCheck    bool
	evaluation Score
	moves      []*MoveData
}

type MoveData struct {
	move      Move
	child     *BoardData
	approx    Score
	hasApprox bool
}

func newBoardData(b *Board) *BoardData {
	var lm = GenerateLegalMoves(b)
	var bd = &BoardData{
		isCheck: lm.IsCheck,
		moves:   make([]*MoveData, len(lm.Moves)),
	}
	for i, m := range lm.Moves {
		bd.moves[i] = &MoveData{move: m}
	}
	switch {
	case len(lm.Moves) != 0:
		bd.evaluation = evaluate(b, lm.Pseudo)
	case lm.IsCheck:
		bd.evaluation = Lost(b.MoveNumber())
	default:
		bd.evaluation = Draw(b.MoveNumber())
	}
	return bd
}

func (bd *BoardData) IsCheck() bool {
	return bd.isCheck
}

func (bd *BoardData) IsTerminal() bool {
	return len(bd.moves) == 0
}

// Evaluation is the static score, or the final result for terminal positions.
func (bd *BoardData) Evaluation() Score {
	return bd.evaluation
}

func (bd *BoardData) NumMoves() int {
	return len(bd.moves)
}

func (bd *BoardData) Moves() []Move {
	var result = make([]Move, len(bd.moves))
	for i, md := range bd.moves {
		result[i] = md.move
	}
	return result
}

func (bd *BoardData) Move(idx MoveIdx) (Move, error) {
	if idx < 0 || int(idx) >= len(bd.moves) {
		return Move{}, ErrBadMoveIdx
	}
	return bd.moves[idx].move, nil
}

// orderedMoves puts moves with the best remembered score first. Moves never
// scored keep their relative order after the scored ones.
func (bd *BoardData) orderedMoves() []*MoveData {
	var result = slices.Clone(bd.moves)
	slices.SortStableFunc(result, func(a, b *MoveData) int {
		switch {
		case a.hasApprox && b.hasApprox:
			return Compare(b.approx, a.approx)
		case a.hasApprox:
			return -1
		case b.hasApprox:
			return 1
		}
		return 0
	})
	return result
}

func (md *MoveData) Move() Move {
	return md.move
}

func (md *MoveData) childData(b *Board) *BoardData {
	if md.child == nil {
		md.child = newBoardData(b)
	}
	return md.child
}
