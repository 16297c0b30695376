package common

import (
	"golang.org/x/exp/slices"
)

// PawnStep is a single pawn push together with the follow-up pushes allowed
// from the starting square.
type PawnStep struct {
	First   Square
	Seconds []Square
}

type CastleSignature struct {
	KingFrom    Square
	KingTo      Square
	RookFrom    Square
	RookTo      Square
	NotChecked  []Square
	NotOccupied []Square
}

// Geometry describes a board topology.
// FlatOpposite and DiagOpposite return every square k such that i, j, k are
// evenly spaced along a line. Several results mean the line branches.
type Geometry struct {
	FlatNeighbours func(Square) []Square
	DiagNeighbours func(Square) []Square
	FlatOpposite   func(i, j Square) []Square
	DiagOpposite   func(i, j Square) []Square
	PawnMoves      func(Team, Square) []PawnStep
	Promotions     [2]map[Square][]PieceKind
	Castles        [2][]CastleSignature
}

// Signature holds the immutable movement tables of a board geometry.
type Signature struct {
	num               int
	flatSlides        [][][]Square
	diagSlides        [][][]Square
	knightMoves       [][]Square
	kingMoves         [][]Square
	pawnMoves         [2][][]PawnStep
	pawnTakes         [2][][]Square
	promotions        [2][][]PieceKind
	promotionDistance [2][]int
	castles           [2][]CastleSignature
}

func NewSignature(num int, geometry Geometry) *Signature {
	var g = &geometry
	var sig = &Signature{
		num:         num,
		flatSlides:  make([][][]Square, num),
		diagSlides:  make([][][]Square, num),
		knightMoves: make([][]Square, num),
		kingMoves:   make([][]Square, num),
		castles:     geometry.Castles,
	}
	for i := 0; i < num; i++ {
		var sq = Square(i)
		sig.flatSlides[i] = generateSlides(sq, g.FlatNeighbours, g.FlatOpposite)
		sig.diagSlides[i] = generateSlides(sq, g.DiagNeighbours, g.DiagOpposite)
		sig.knightMoves[i] = knightTargets(g, sq)

		var king []Square
		king = append(king, g.FlatNeighbours(sq)...)
		king = append(king, g.DiagNeighbours(sq)...)
		sig.kingMoves[i] = normalize(king, sq)
	}
	for _, team := range [...]Team{White, Black} {
		sig.pawnMoves[team] = make([][]PawnStep, num)
		sig.pawnTakes[team] = make([][]Square, num)
		sig.promotions[team] = make([][]PieceKind, num)
		for i := 0; i < num; i++ {
			var sq = Square(i)
			var steps = g.PawnMoves(team, sq)
			sig.pawnMoves[team][i] = steps
			var takes []Square
			for _, step := range steps {
				takes = append(takes, flatTurns(g, sq, step.First)...)
			}
			sig.pawnTakes[team][i] = normalize(takes, sq)
			sig.promotions[team][i] = geometry.Promotions[team][sq]
		}
		sig.promotionDistance[team] = promotionDistances(num, sig.pawnMoves[team], geometry.Promotions[team])
	}
	return sig
}

// generateSlides walks every line out of origin. A branch that returns to a
// square already on its path ends with that square.
func generateSlides(origin Square, nbs func(Square) []Square, opp func(i, j Square) []Square) [][]Square {
	var result [][]Square
	var walk func(path []Square, i, j Square)
	walk = func(path []Square, i, j Square) {
		var visited = j == origin || slices.Contains(path, j)
		path = append(path[:len(path):len(path)], j)
		if visited {
			result = append(result, path)
			return
		}
		var next = opp(i, j)
		if len(next) == 0 {
			result = append(result, path)
			return
		}
		for _, k := range next {
			walk(path, j, k)
		}
	}
	for _, first := range nbs(origin) {
		walk(nil, origin, first)
	}
	return result
}

// flatTurns are the flat neighbours of j that neither continue the line i, j
// nor step back to i.
func flatTurns(g *Geometry, i, j Square) []Square {
	var opps = g.FlatOpposite(i, j)
	var result []Square
	for _, k := range g.FlatNeighbours(j) {
		if k != i && !slices.Contains(opps, k) {
			result = append(result, k)
		}
	}
	return result
}

func knightTargets(g *Geometry, a Square) []Square {
	var result []Square
	for _, b := range g.FlatNeighbours(a) {
		// two straight, one aside
		for _, c := range g.FlatOpposite(a, b) {
			result = append(result, flatTurns(g, b, c)...)
		}
		// one aside, two straight
		for _, c := range flatTurns(g, a, b) {
			result = append(result, g.FlatOpposite(b, c)...)
		}
	}
	return normalize(result, a)
}

func normalize(squares []Square, origin Square) []Square {
	var result = make([]Square, 0, len(squares))
	for _, sq := range squares {
		if sq != origin {
			result = append(result, sq)
		}
	}
	slices.Sort(result)
	return slices.Compact(result)
}

func promotionDistances(num int, moves [][]PawnStep, promotions map[Square][]PieceKind) []int {
	var result = make([]int, num)
	for i := 0; i < num; i++ {
		result[i] = -1
		var frontier = []Square{Square(i)}
		var seen = map[Square]bool{Square(i): true}
		for distance := 0; len(frontier) != 0; distance++ {
			if slices.ContainsFunc(frontier, func(sq Square) bool {
				_, ok := promotions[sq]
				return ok
			}) {
				result[i] = distance
				break
			}
			var next []Square
			for _, sq := range frontier {
				for _, step := range moves[sq] {
					if !seen[step.First] {
						seen[step.First] = true
						next = append(next, step.First)
					}
				}
			}
			frontier = next
		}
	}
	return result
}

func (sig *Signature) Num() int {
	return sig.num
}

func (sig *Signature) Contains(sq Square) bool {
	return sq >= 0 && int(sq) < sig.num
}

func (sig *Signature) FlatSlides(sq Square) [][]Square {
	return sig.flatSlides[sq]
}

func (sig *Signature) DiagSlides(sq Square) [][]Square {
	return sig.diagSlides[sq]
}

func (sig *Signature) KnightMoves(sq Square) []Square {
	return sig.knightMoves[sq]
}

func (sig *Signature) KingMoves(sq Square) []Square {
	return sig.kingMoves[sq]
}

func (sig *Signature) PawnMoves(team Team, sq Square) []PawnStep {
	return sig.pawnMoves[team][sq]
}

func (sig *Signature) PawnTakes(team Team, sq Square) []Square {
	return sig.pawnTakes[team][sq]
}

// Promotions returns nil when sq is not a promotion square for team.
func (sig *Signature) Promotions(team Team, sq Square) []PieceKind {
	return sig.promotions[team][sq]
}

func (sig *Signature) PromotionDistance(team Team, sq Square) (int, bool) {
	var d = sig.promotionDistance[team][sq]
	return d, d >= 0
}

func (sig *Signature) Castles(team Team) []CastleSignature {
	return sig.castles[team]
}
