package variants

import (
	"fmt"

	"github.com/notnil/chess"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceKinds = map[chess.PieceType]PieceKind{
	chess.King:   King,
	chess.Queen:  Queen,
	chess.Rook:   Rook,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Pawn:   Pawn,
}

// ClassicalFromFEN sets up a classical board from FEN. Castling rights become
// unmoved kings and rooks; the en passant square marks the pawn that has just
// made a double push.
func ClassicalFromFEN(fen string) (*Variant, *Board, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid FEN: %w", err)
	}
	var pos = chess.NewGame(opt).Position()

	var v = Classical()
	var rights = pos.CastleRights()
	var pieces = make(map[Square]Piece)
	for csq, cp := range pos.Board().SquareMap() {
		var kind, ok = pieceKinds[cp.Type()]
		if !ok {
			continue
		}
		var team = teamOf(cp.Color())
		var sq = MakeSquare(int(csq.File()), int(csq.Rank()))
		var p = Piece{Kind: kind, Team: team, Moved: true}
		switch kind {
		case King:
			p.Moved = !rights.CanCastle(cp.Color(), chess.KingSide) &&
				!rights.CanCastle(cp.Color(), chess.QueenSide)
		case Rook:
			var queenRook, kingRook = SquareA1, SquareH1
			if team == Black {
				queenRook, kingRook = SquareA8, SquareH8
			}
			if sq == queenRook && rights.CanCastle(cp.Color(), chess.QueenSide) ||
				sq == kingRook && rights.CanCastle(cp.Color(), chess.KingSide) {
				p.Moved = false
			}
		}
		pieces[sq] = p
	}

	var turn = teamOf(pos.Turn())
	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		var skipped = MakeSquare(int(ep.File()), int(ep.Rank()))
		var victimSq = MakeSquare(File(skipped), Rank(skipped)+1)
		if turn == White {
			victimSq = MakeSquare(File(skipped), Rank(skipped)-1)
		}
		if p, ok := pieces[victimSq]; ok && p.Kind == Pawn && p.Team != turn {
			p.Passant = Passant{Active: true, Ply: -1, Skipped: skipped}
			pieces[victimSq] = p
		}
	}

	b, err := NewBoardFromPieces(turn, v.sig, pieces)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return v, b, nil
}

func teamOf(c chess.Color) Team {
	if c == chess.White {
		return White
	}
	return Black
}
