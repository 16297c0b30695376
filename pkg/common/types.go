package common

import "fmt"

// Square is an opaque index into a Signature, 0..Num()-1.
type Square int

const SquareNone Square = -1

type Team int

const (
	White Team = iota
	Black
)

func (t Team) Opposite() Team {
	return 1 - t
}

func (t Team) String() string {
	if t == White {
		return "white"
	}
	return "black"
}

type PieceKind int

const (
	Empty PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Grasshopper
)

var pieceKindNames = [...]string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king", "grasshopper"}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(pieceKindNames) {
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
	return pieceKindNames[k]
}

// Worth is the material value in pawn-halves. Royal pieces have none.
func (k PieceKind) Worth() (int64, bool) {
	switch k {
	case Pawn:
		return 2, true
	case Grasshopper:
		return 1, true
	case Knight, Bishop:
		return 6, true
	case Rook:
		return 10, true
	case Queen:
		return 18, true
	}
	return 0, false
}

func (k PieceKind) IsRoyal() bool {
	return k == King
}

// Passant marks a pawn that made a double push at history length Ply over Skipped.
type Passant struct {
	Active  bool
	Ply     int
	Skipped Square
}

type Piece struct {
	Kind    PieceKind
	Team    Team
	Moved   bool
	Passant Passant
}

func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Team.String() + " " + p.Kind.String()
}

// Letter returns the FEN-style letter, upper case for White.
func (p Piece) Letter() string {
	var s string
	switch p.Kind {
	case Pawn:
		s = "p"
	case Knight:
		s = "n"
	case Bishop:
		s = "b"
	case Rook:
		s = "r"
	case Queen:
		s = "q"
	case King:
		s = "k"
	case Grasshopper:
		s = "g"
	default:
		return " "
	}
	if p.Team == White {
		return string(s[0] - 'a' + 'A')
	}
	return s
}
