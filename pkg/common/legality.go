package common

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type LegalMoves struct {
	Moves   []Move
	IsCheck bool
	Pseudo  *PseudoMoves
}

// GenerateLegalMoves filters the pseudo-legal moves of the side to move.
// The board is modified while testing moves and restored before returning.
func GenerateLegalMoves(b *Board) LegalMoves {
	var pm = NewPseudoMoves(b)
	var team = b.Turn()
	var isCheck = pm.Attacked(team.Opposite(), b.KingSquare(team))
	var pseudo = pm.Moves(team)
	var moves = make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		var legal = isLegal(b, pm, isCheck, m)
		if debugChecks && legal != IsLegalBruteForce(b, m) {
			panic(fmt.Sprintf("legality mismatch for %v", m))
		}
		if legal {
			moves = append(moves, m)
		}
	}
	return LegalMoves{
		Moves:   moves,
		IsCheck: isCheck,
		Pseudo:  pm,
	}
}

// IsLegal tests a pseudo-legal move of the side to move using the vision in pm.
func IsLegal(b *Board, pm *PseudoMoves, m Move) bool {
	var team = b.Turn()
	return isLegal(b, pm, pm.Attacked(team.Opposite(), b.KingSquare(team)), m)
}

func isLegal(b *Board, pm *PseudoMoves, isCheck bool, m Move) bool {
	var enemy = m.Piece.Team.Opposite()
	var hot []Square
	if m.Kind == MoveCastle {
		if isCheck {
			return false
		}
		for _, sq := range m.Through {
			if pm.Attacked(enemy, sq) {
				return false
			}
		}
		hot = []Square{m.From, m.To, m.RookFrom, m.RookTo}
	} else {
		hot = []Square{m.From, m.To, b.KingSquare(m.Piece.Team)}
		if m.Kind == MoveEnPassant {
			hot = append(hot, m.VictimSquare)
		}
	}

	// Only enemy pieces that see a square changed by the move, or the king
	// square itself, can attack the king afterwards.
	var captured = SquareNone
	if m.IsCapture() {
		captured = m.VictimSquare
	}
	var candidates []Square
	for _, sq := range hot {
		for _, v := range pm.Vision(enemy, sq) {
			if v.From != captured && !slices.Contains(candidates, v.From) {
				candidates = append(candidates, v.From)
			}
		}
	}
	if len(candidates) == 0 {
		return true
	}

	b.MakeMove(m)
	var king = b.KingSquare(m.Piece.Team)
	var legal = true
	for _, from := range candidates {
		if AttacksSquare(b, from, b.squares[from], king) {
			legal = false
			break
		}
	}
	b.mustUnmake()
	return legal
}

// IsLegalBruteForce regenerates the full vision after the move.
func IsLegalBruteForce(b *Board, m Move) bool {
	var team = m.Piece.Team
	var enemy = team.Opposite()
	if m.Kind == MoveCastle {
		var pm = NewPseudoMoves(b)
		if pm.Attacked(enemy, b.KingSquare(team)) {
			return false
		}
		for _, sq := range m.Through {
			if pm.Attacked(enemy, sq) {
				return false
			}
		}
	}
	b.MakeMove(m)
	var attacked = NewPseudoMoves(b).Attacked(enemy, b.KingSquare(team))
	b.mustUnmake()
	return !attacked
}
