package variants

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

// Variant is a board geometry together with its starting position.
type Variant struct {
	Name  string
	grid  *grid
	sig   *Signature
	setup [2]map[Square]PieceKind
}

var (
	backRank       = []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	promotionKinds = []PieceKind{Knight, Bishop, Rook, Queen}
)

var constructors = map[string]func() *Variant{
	"classical":   Classical,
	"grasshopper": GrasshopperChess,
	"cylinder":    Cylinder,
	"wormhole":    Wormhole,
}

func Names() []string {
	var names = maps.Keys(constructors)
	slices.Sort(names)
	return names
}

func ByName(name string) (*Variant, error) {
	var ctor, ok = constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q, expected one of %v", name, Names())
	}
	return ctor(), nil
}

// Classical is standard chess.
func Classical() *Variant {
	var g = newGrid(8, 8, false, nil)
	var v = &Variant{
		Name: "classical",
		grid: g,
		sig:  g.signature([2]int{1, 6}, promotionKinds),
	}
	v.setup = v.standardSetup(1, 6)
	return v
}

// GrasshopperChess adds a rank of grasshoppers in front of each army; the pawns
// stand one rank further forward.
func GrasshopperChess() *Variant {
	var g = newGrid(8, 8, false, nil)
	var v = &Variant{
		Name: "grasshopper",
		grid: g,
		sig:  g.signature([2]int{2, 5}, append([]PieceKind{Grasshopper}, promotionKinds...)),
	}
	v.setup = v.standardSetup(2, 5)
	for x := 0; x < 8; x++ {
		v.setup[White][g.mustAt(x, 1)] = Grasshopper
		v.setup[Black][g.mustAt(x, 6)] = Grasshopper
	}
	return v
}

// Cylinder joins the a-file and the h-file.
func Cylinder() *Variant {
	var g = newGrid(8, 8, true, nil)
	var v = &Variant{
		Name: "cylinder",
		grid: g,
		sig:  g.signature([2]int{1, 6}, promotionKinds),
	}
	v.setup = v.standardSetup(1, 6)
	return v
}

// Wormhole removes the four centre squares. A line running straight into the
// hole continues from both squares on its far edge.
func Wormhole() *Variant {
	var g = newGrid(8, 8, false, &rect{point{3, 3}, point{4, 4}})
	var v = &Variant{
		Name: "wormhole",
		grid: g,
		sig:  g.signature([2]int{1, 6}, promotionKinds),
	}
	v.setup = v.standardSetup(1, 6)
	return v
}

func (v *Variant) standardSetup(whitePawns, blackPawns int) [2]map[Square]PieceKind {
	var white = make(map[Square]PieceKind)
	var black = make(map[Square]PieceKind)
	for x, kind := range backRank {
		white[v.grid.mustAt(x, 0)] = kind
		black[v.grid.mustAt(x, v.grid.height-1)] = kind
		white[v.grid.mustAt(x, whitePawns)] = Pawn
		black[v.grid.mustAt(x, blackPawns)] = Pawn
	}
	return [2]map[Square]PieceKind{white, black}
}

func (v *Variant) Signature() *Signature {
	return v.sig
}

// NewGame returns the starting position with White to move.
func (v *Variant) NewGame() *Board {
	var b, err = NewBoard(White, v.sig, v.setup[White], v.setup[Black])
	if err != nil {
		panic(fmt.Errorf("variant %v: %w", v.Name, err))
	}
	return b
}

func (v *Variant) Width() int {
	return v.grid.width
}

func (v *Variant) Height() int {
	return v.grid.height
}

// SquareAt returns the square at file x and rank y, both zero based.
func (v *Variant) SquareAt(x, y int) (Square, bool) {
	return v.grid.at(x, y)
}

func (v *Variant) Coords(sq Square) (x, y int) {
	var p = v.grid.points[sq]
	return p.x, p.y
}

func (v *Variant) SquareName(sq Square) string {
	if !v.sig.Contains(sq) {
		return "-"
	}
	var x, y = v.Coords(sq)
	return string(rune('a'+x)) + strconv.Itoa(y+1)
}

func (v *Variant) ParseSquare(s string) (Square, error) {
	if len(s) < 2 {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	var x = int(s[0] - 'a')
	var y, err = strconv.Atoi(s[1:])
	if err != nil {
		return SquareNone, fmt.Errorf("bad square %q: %w", s, err)
	}
	var sq, ok = v.grid.at(x, y-1)
	if !ok {
		return SquareNone, fmt.Errorf("no square %q on %v board", s, v.Name)
	}
	return sq, nil
}

func (v *Variant) MoveName(m Move) string {
	return m.Format(v.SquareName)
}

// MoveCode is the inverse of FindMove.
func (v *Variant) MoveCode(m Move) string {
	var s = v.SquareName(m.From) + v.SquareName(m.To)
	if m.IsPromotion() {
		s += strings.ToLower(m.ToPiece.Letter())
	}
	return s
}

// FindMove looks up a move by its squares in the algebraic form "e2e4",
// with an optional promotion letter such as "e7e8q".
func (v *Variant) FindMove(moves []Move, s string) (MoveIdx, error) {
	var promotion string
	if n := len(s); n > 0 && strings.ContainsRune("nbrqg", rune(s[n-1])) {
		promotion, s = s[n-1:], s[:n-1]
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("bad move %q", s)
	}
	var split = strings.IndexFunc(s[1:], func(r rune) bool { return r >= 'a' && r <= 'z' }) + 1
	if split <= 0 {
		return 0, fmt.Errorf("bad move %q", s)
	}
	var from, err = v.ParseSquare(s[:split])
	if err != nil {
		return 0, err
	}
	to, err := v.ParseSquare(s[split:])
	if err != nil {
		return 0, err
	}
	for i, m := range moves {
		if m.From != from || m.To != to {
			continue
		}
		if promotion != "" && (!m.IsPromotion() || strings.ToLower(m.ToPiece.Letter()) != promotion) {
			continue
		}
		return MoveIdx(i), nil
	}
	return 0, fmt.Errorf("move %q not found", s)
}
