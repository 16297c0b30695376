package variants

import (
	"golang.org/x/exp/slices"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

type direction struct {
	dx, dy int
}

func (d direction) diagonal() bool {
	return d.dx != 0 && d.dy != 0
}

var (
	flatDirections = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

type point struct {
	x, y int
}

// rect is an inclusive block of removed cells.
type rect struct {
	min, max point
}

func (r *rect) contains(x, y int) bool {
	return r != nil && r.min.x <= x && x <= r.max.x && r.min.y <= y && y <= r.max.y
}

// grid is a rectangular board, optionally with wrapping files and a hole.
// Squares are numbered rank by rank, skipping the hole.
type grid struct {
	width, height int
	wrapFiles     bool
	hole          *rect
	points        []point
	index         [][]Square
}

func newGrid(width, height int, wrapFiles bool, hole *rect) *grid {
	var g = &grid{
		width:     width,
		height:    height,
		wrapFiles: wrapFiles,
		hole:      hole,
		index:     make([][]Square, width),
	}
	for x := range g.index {
		g.index[x] = make([]Square, height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if hole.contains(x, y) {
				g.index[x][y] = SquareNone
				continue
			}
			g.index[x][y] = Square(len(g.points))
			g.points = append(g.points, point{x, y})
		}
	}
	return g
}

func (g *grid) num() int {
	return len(g.points)
}

func (g *grid) at(x, y int) (Square, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return SquareNone, false
	}
	var sq = g.index[x][y]
	return sq, sq != SquareNone
}

func (g *grid) mustAt(x, y int) Square {
	var sq, ok = g.at(x, y)
	if !ok {
		panic("no square at given coordinates")
	}
	return sq
}

// step moves one cell in direction d. A flat step into the hole comes out on
// the far side at every cell of the opposite edge; a diagonal step crosses
// the hole along the diagonal.
func (g *grid) step(sq Square, d direction) []Square {
	var p = g.points[sq]
	var x, y = p.x + d.dx, p.y + d.dy
	if g.wrapFiles {
		x = (x + g.width) % g.width
	}
	if !g.hole.contains(x, y) {
		if to, ok := g.at(x, y); ok {
			return []Square{to}
		}
		return nil
	}
	if d.diagonal() {
		for g.hole.contains(x, y) {
			x, y = x+d.dx, y+d.dy
		}
		if to, ok := g.at(x, y); ok {
			return []Square{to}
		}
		return nil
	}
	var h = g.hole
	var result []Square
	switch {
	case d.dx > 0:
		for yy := h.min.y; yy <= h.max.y; yy++ {
			result = append(result, g.mustAt(h.max.x+1, yy))
		}
	case d.dx < 0:
		for yy := h.min.y; yy <= h.max.y; yy++ {
			result = append(result, g.mustAt(h.min.x-1, yy))
		}
	case d.dy > 0:
		for xx := h.min.x; xx <= h.max.x; xx++ {
			result = append(result, g.mustAt(xx, h.max.y+1))
		}
	default:
		for xx := h.min.x; xx <= h.max.x; xx++ {
			result = append(result, g.mustAt(xx, h.min.y-1))
		}
	}
	return result
}

func (g *grid) neighbours(dirs []direction) func(Square) []Square {
	return func(sq Square) []Square {
		var result []Square
		for _, d := range dirs {
			result = append(result, g.step(sq, d)...)
		}
		return unique(result)
	}
}

// opposite continues the line i, j in every direction that leads from i to j.
func (g *grid) opposite(dirs []direction) func(i, j Square) []Square {
	return func(i, j Square) []Square {
		var result []Square
		for _, d := range dirs {
			if slices.Contains(g.step(i, d), j) {
				result = append(result, g.step(j, d)...)
			}
		}
		return unique(result)
	}
}

func (g *grid) pawnMoves(startRanks [2]int) func(Team, Square) []PawnStep {
	return func(team Team, sq Square) []PawnStep {
		var p = g.points[sq]
		if p.y == 0 || p.y == g.height-1 {
			return nil
		}
		var forward = direction{0, 1}
		if team == Black {
			forward = direction{0, -1}
		}
		var result []PawnStep
		for _, first := range g.step(sq, forward) {
			var step = PawnStep{First: first}
			if p.y == startRanks[team] {
				step.Seconds = g.step(first, forward)
			}
			result = append(result, step)
		}
		return result
	}
}

func (g *grid) promotions(team Team, kinds []PieceKind) map[Square][]PieceKind {
	var y = g.height - 1
	if team == Black {
		y = 0
	}
	var result = make(map[Square][]PieceKind)
	for x := 0; x < g.width; x++ {
		if sq, ok := g.at(x, y); ok {
			result[sq] = kinds
		}
	}
	return result
}

// classicalCastles returns the long and short castle of team on its back rank.
func (g *grid) classicalCastles(team Team) []CastleSignature {
	var y = 0
	if team == Black {
		y = g.height - 1
	}
	var sq = func(x int) Square {
		return g.mustAt(x, y)
	}
	return []CastleSignature{
		{
			KingFrom:    sq(4),
			KingTo:      sq(2),
			RookFrom:    sq(0),
			RookTo:      sq(3),
			NotChecked:  []Square{sq(3)},
			NotOccupied: []Square{sq(1)},
		},
		{
			KingFrom:   sq(4),
			KingTo:     sq(6),
			RookFrom:   sq(7),
			RookTo:     sq(5),
			NotChecked: []Square{sq(5)},
		},
	}
}

func (g *grid) signature(startRanks [2]int, promotions []PieceKind) *Signature {
	return NewSignature(g.num(), Geometry{
		FlatNeighbours: g.neighbours(flatDirections),
		DiagNeighbours: g.neighbours(diagDirections),
		FlatOpposite:   g.opposite(flatDirections),
		DiagOpposite:   g.opposite(diagDirections),
		PawnMoves:      g.pawnMoves(startRanks),
		Promotions: [2]map[Square][]PieceKind{
			g.promotions(White, promotions),
			g.promotions(Black, promotions),
		},
		Castles: [2][]CastleSignature{
			g.classicalCastles(White),
			g.classicalCastles(Black),
		},
	})
}

func unique(squares []Square) []Square {
	slices.Sort(squares)
	return slices.Compact(squares)
}
