package engine

import (
	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

// BoardTree is a board together with the search cache of its position.
type BoardTree struct {
	board   *Board
	root    *BoardData
	parents []*BoardData
}

func NewBoardTree(b *Board) *BoardTree {
	return &BoardTree{
		board: b,
		root:  newBoardData(b),
	}
}

func (t *BoardTree) Board() *Board {
	return t.board
}

func (t *BoardTree) Root() *BoardData {
	return t.root
}

// MakeMove plays a legal move, keeping the cached subtree of the new position.
func (t *BoardTree) MakeMove(idx MoveIdx) error {
	if idx < 0 || int(idx) >= len(t.root.moves) {
		return ErrBadMoveIdx
	}
	var md = t.root.moves[idx]
	t.board.MakeMove(md.move)
	t.parents = append(t.parents, t.root)
	t.root = md.childData(t.board)
	return nil
}

func (t *BoardTree) UnmakeMove() error {
	if err := t.board.UnmakeMove(); err != nil {
		return err
	}
	if n := len(t.parents); n != 0 {
		t.root = t.parents[n-1]
		t.parents = t.parents[:n-1]
	} else {
		t.root = newBoardData(t.board)
	}
	return nil
}
