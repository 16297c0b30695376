package common

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyHistory = errors.New("no move to unmake")
	ErrBadMoveIdx   = errors.New("move index out of range")
)

type MoveKind int

const (
	MoveStandard MoveKind = iota
	MoveCastle
	MoveEnPassant
)

// Move is a fully described ply. Standard moves cover quiet moves, captures,
// promotions and double pushes. Castle moves carry the rook and the squares
// the king passes. En passant moves carry the victim and its square.
type Move struct {
	Kind    MoveKind
	Piece   Piece
	ToPiece Piece
	From    Square
	To      Square

	Victim       Piece
	VictimSquare Square

	Rook     Piece
	RookFrom Square
	RookTo   Square
	Through  []Square
}

// MoveIdx indexes the current legal-move list.
type MoveIdx int

func (m Move) IsCapture() bool {
	return m.Kind != MoveCastle && !m.Victim.IsEmpty()
}

func (m Move) Captured() (Piece, Square, bool) {
	if !m.IsCapture() {
		return Piece{}, SquareNone, false
	}
	return m.Victim, m.VictimSquare, true
}

func (m Move) IsPromotion() bool {
	return m.Kind == MoveStandard && m.ToPiece.Kind != m.Piece.Kind
}

func (m Move) String() string {
	return m.Format(func(sq Square) string {
		return strconv.Itoa(int(sq))
	})
}

// Format renders the move with the given square naming.
func (m Move) Format(name func(Square) string) string {
	var s = name(m.From)
	if m.IsCapture() {
		s += "x"
	} else {
		s += "-"
	}
	s += name(m.To)
	switch {
	case m.Kind == MoveCastle:
		s += " (castle)"
	case m.Kind == MoveEnPassant:
		s += " (ep)"
	case m.IsPromotion():
		s += "=" + m.ToPiece.Letter()
	}
	return s
}
