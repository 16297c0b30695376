package common

import (
	"errors"
	"fmt"
)

// Board is a position on a Signature together with the move history.
type Board struct {
	sig     *Signature
	turn    Team
	squares []Piece
	kings   [2]Square
	history []Move
}

func NewBoard(turn Team, sig *Signature, white, black map[Square]PieceKind) (*Board, error) {
	var pieces = make(map[Square]Piece, len(white)+len(black))
	for team, kinds := range [...]map[Square]PieceKind{white, black} {
		for sq, kind := range kinds {
			if _, found := pieces[sq]; found {
				return nil, fmt.Errorf("square %v occupied twice", sq)
			}
			pieces[sq] = Piece{Kind: kind, Team: Team(team)}
		}
	}
	return NewBoardFromPieces(turn, sig, pieces)
}

func NewBoardFromPieces(turn Team, sig *Signature, pieces map[Square]Piece) (*Board, error) {
	var b = &Board{
		sig:     sig,
		turn:    turn,
		squares: make([]Piece, sig.Num()),
	}
	for sq, p := range pieces {
		if !sig.Contains(sq) {
			return nil, fmt.Errorf("square %v out of range", sq)
		}
		if p.IsEmpty() {
			continue
		}
		b.squares[sq] = p
	}
	var kings, err = b.royalSquares()
	if err != nil {
		return nil, err
	}
	b.kings = kings
	return b, nil
}

func (b *Board) royalSquares() ([2]Square, error) {
	var kings = [2]Square{SquareNone, SquareNone}
	for i, p := range b.squares {
		if !p.Kind.IsRoyal() {
			continue
		}
		if kings[p.Team] != SquareNone {
			return kings, fmt.Errorf("%v has more than one royal piece", p.Team)
		}
		kings[p.Team] = Square(i)
	}
	for _, team := range [...]Team{White, Black} {
		if kings[team] == SquareNone {
			return kings, fmt.Errorf("%v has no royal piece", team)
		}
	}
	return kings, nil
}

// Validate checks the king-square cache against the pieces on the board.
func (b *Board) Validate() error {
	var kings, err = b.royalSquares()
	if err != nil {
		return err
	}
	if b.kings != kings {
		return errors.New("king square cache is stale")
	}
	return nil
}

func (b *Board) Signature() *Signature {
	return b.sig
}

func (b *Board) Turn() Team {
	return b.turn
}

func (b *Board) Square(sq Square) (Piece, bool) {
	var p = b.squares[sq]
	return p, !p.IsEmpty()
}

func (b *Board) KingSquare(team Team) Square {
	return b.kings[team]
}

func (b *Board) MoveNumber() int {
	return len(b.history)
}

func (b *Board) History() []Move {
	return b.history
}

func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// PlacedPiece is a piece together with its square.
type PlacedPiece struct {
	Square Square
	Piece  Piece
}

// Pieces lists occupied squares in ascending order.
func (b *Board) Pieces() []PlacedPiece {
	var result []PlacedPiece
	for i, p := range b.squares {
		if !p.IsEmpty() {
			result = append(result, PlacedPiece{Square(i), p})
		}
	}
	return result
}

// MakeMove plays a move taken from the current legal move list.
func (b *Board) MakeMove(m Move) {
	if debugChecks {
		b.checkBeforeMake(m)
	}
	switch m.Kind {
	case MoveStandard:
		b.squares[m.From] = Piece{}
		b.squares[m.To] = m.ToPiece
	case MoveCastle:
		b.squares[m.From] = Piece{}
		b.squares[m.RookFrom] = Piece{}
		b.squares[m.RookTo] = m.movedRook()
		b.squares[m.To] = m.ToPiece
	case MoveEnPassant:
		b.squares[m.From] = Piece{}
		b.squares[m.VictimSquare] = Piece{}
		b.squares[m.To] = m.ToPiece
	}
	if m.Piece.Kind.IsRoyal() {
		b.kings[m.Piece.Team] = m.To
	}
	b.turn = b.turn.Opposite()
	b.history = append(b.history, m)
	if debugChecks {
		b.mustValidate()
	}
}

func (b *Board) UnmakeMove() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	var m = b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	switch m.Kind {
	case MoveStandard:
		b.squares[m.To] = m.Victim
		b.squares[m.From] = m.Piece
	case MoveCastle:
		b.squares[m.To] = Piece{}
		b.squares[m.RookTo] = Piece{}
		b.squares[m.RookFrom] = m.Rook
		b.squares[m.From] = m.Piece
	case MoveEnPassant:
		b.squares[m.To] = Piece{}
		b.squares[m.VictimSquare] = m.Victim
		b.squares[m.From] = m.Piece
	}
	if m.Piece.Kind.IsRoyal() {
		b.kings[m.Piece.Team] = m.From
	}
	b.turn = b.turn.Opposite()
	if debugChecks {
		b.mustValidate()
	}
	return nil
}

func (m *Move) movedRook() Piece {
	var rook = m.Rook
	rook.Moved = true
	return rook
}

func (b *Board) Clone() *Board {
	var result = *b
	result.squares = append([]Piece(nil), b.squares...)
	result.history = append([]Move(nil), b.history...)
	return &result
}

// Equal compares turn, pieces and king squares. History is ignored.
func (b *Board) Equal(other *Board) bool {
	if b.sig != other.sig || b.turn != other.turn || b.kings != other.kings {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

func (b *Board) checkBeforeMake(m Move) {
	if b.squares[m.From] != m.Piece {
		panic(fmt.Sprintf("move %v: source holds %v, expected %v", m, b.squares[m.From], m.Piece))
	}
	if m.Piece.Team != b.turn || m.ToPiece.Team != m.Piece.Team {
		panic(fmt.Sprintf("move %v: wrong team", m))
	}
	switch m.Kind {
	case MoveStandard:
		if b.squares[m.To] != m.Victim {
			panic(fmt.Sprintf("move %v: destination holds %v, expected %v", m, b.squares[m.To], m.Victim))
		}
	case MoveCastle:
		if b.squares[m.RookFrom] != m.Rook {
			panic(fmt.Sprintf("move %v: rook square holds %v", m, b.squares[m.RookFrom]))
		}
	case MoveEnPassant:
		if b.squares[m.VictimSquare] != m.Victim || !b.squares[m.To].IsEmpty() {
			panic(fmt.Sprintf("move %v: bad en passant", m))
		}
	}
	if !m.Victim.IsEmpty() && (m.Victim.Team == m.Piece.Team || m.Victim.Kind.IsRoyal()) {
		panic(fmt.Sprintf("move %v: bad victim %v", m, m.Victim))
	}
}

// mustUnmake takes back a move made by the caller; an empty history there is a defect.
func (b *Board) mustUnmake() {
	if err := b.UnmakeMove(); err != nil {
		panic(err)
	}
}

func (b *Board) mustValidate() {
	if err := b.Validate(); err != nil {
		panic(err)
	}
}
