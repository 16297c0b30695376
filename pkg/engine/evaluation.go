package engine

import (
	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

const materialScale = 1000

var pawnAdvanceBonus = [...]int64{1: 2500, 2: 300, 3: 100, 4: 20, 5: 1}

// evaluate scores a position with legal moves for the side to move.
func evaluate(b *Board, pm *PseudoMoves) Score {
	var sig = b.Signature()
	var score int64
	for _, pp := range b.Pieces() {
		var sign = teamSign(pp.Piece.Team)
		if worth, ok := pp.Piece.Kind.Worth(); ok {
			score += sign * worth * materialScale
		}
		if pp.Piece.Kind == Pawn {
			if d, ok := sig.PromotionDistance(pp.Piece.Team, pp.Square); ok && d < len(pawnAdvanceBonus) {
				score += sign * pawnAdvanceBonus[d]
			}
		}
	}
	for _, team := range [...]Team{White, Black} {
		var sign = teamSign(team)
		for i := 0; i < sig.Num(); i++ {
			var sq = Square(i)
			for _, v := range pm.Vision(team, sq) {
				if !v.Attacks() || v.Piece.Kind.IsRoyal() {
					continue
				}
				var worth, _ = v.Piece.Kind.Worth()
				var target, occupied = b.Square(sq)
				switch {
				case !occupied:
					score += sign * (10 - worth)
				case target.Team != team && !target.Kind.IsRoyal():
					score += sign * (10 - worth) * 3
				}
			}
		}
	}
	return Heuristic(score * teamSign(b.Turn()))
}

func teamSign(team Team) int64 {
	if team == White {
		return 1
	}
	return -1
}

// materialGain is what a capture wins, promotion included.
func materialGain(m Move) int64 {
	var gain int64
	if victim, _, ok := m.Captured(); ok {
		var worth, _ = victim.Kind.Worth()
		gain += worth * materialScale
	}
	if m.IsPromotion() {
		var to, _ = m.ToPiece.Kind.Worth()
		var from, _ = m.Piece.Kind.Worth()
		gain += (to - from) * materialScale
	}
	return gain
}
