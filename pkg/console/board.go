package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

const (
	fgBlack = iota + 30
)

const (
	bgBlack = 40
	bgWhite = 47
)

const (
	bgHiWhite = 107
)

var chessSymbols = [2][8]string{
	{" ", whitePawn, whiteKnight, whiteBishop, whiteRook, whiteQueen, whiteKing, "G"},
	{" ", blackPawn, blackKnight, blackBishop, blackRook, blackQueen, blackKing, "g"},
}

// PrintBoard draws the board with White at the bottom. Missing squares are
// left black.
func PrintBoard(w io.Writer, v *variants.Variant, b *Board) {
	var sb strings.Builder
	for y := v.Height() - 1; y >= 0; y-- {
		for x := 0; x < v.Width(); x++ {
			var sq, ok = v.SquareAt(x, y)
			if !ok {
				sb.WriteString(colored(" ", bgBlack))
				continue
			}
			var p, _ = b.Square(sq)
			sb.WriteString(pieceString(p, (x+y)%2 == 0))
		}
		sb.WriteString(" " + strconv.Itoa(y+1) + "\n")
	}
	for x := 0; x < v.Width(); x++ {
		sb.WriteString(string(rune('a'+x)) + " ")
	}
	sb.WriteString("\n")
	fmt.Fprint(w, sb.String())
}

func pieceString(p Piece, darkSquare bool) string {
	var s = chessSymbols[p.Team][p.Kind]
	if p.IsEmpty() {
		s = " "
	}
	var bgColor = bgHiWhite
	if darkSquare {
		bgColor = bgWhite
	}
	return colored(s, bgColor)
}

func colored(s string, bgColor int) string {
	const fgColor = fgBlack
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s %s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgColor), s, escape, reset)
}
