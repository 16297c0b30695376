package common_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

func TestLegalityMatchesBruteForce(t *testing.T) {
	var rnd = rand.New(rand.NewSource(7))
	for _, g := range testGames(t) {
		t.Run(g.name, func(t *testing.T) {
			for n := 0; n < 4; n++ {
				var b = g.board.Clone()
				playout(b, rnd, 60, func(b *Board, lm LegalMoves) {
					var legal = 0
					for _, m := range lm.Pseudo.Moves(b.Turn()) {
						var fast = IsLegal(b, lm.Pseudo, m)
						require.Equal(t, IsLegalBruteForce(b, m), fast, "move %v", m)
						if fast {
							legal++
						}
					}
					require.Len(t, lm.Moves, legal)
				})
			}
		})
	}
}

func TestTerminalPositions(t *testing.T) {
	var tests = []struct {
		fen     string
		isCheck bool
	}{
		{"4r2k/8/8/8/8/8/3P1P2/3RKR2 w - - 0 1", true},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}
	for _, test := range tests {
		var _, b, err = variants.ClassicalFromFEN(test.fen)
		require.NoError(t, err)
		var lm = GenerateLegalMoves(b)
		assert.Empty(t, lm.Moves, test.fen)
		assert.Equal(t, test.isCheck, lm.IsCheck, test.fen)
	}
}

func TestPinnedPiece(t *testing.T) {
	var _, b, err = variants.ClassicalFromFEN("4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	var lm = GenerateLegalMoves(b)
	assert.False(t, lm.IsCheck)
	for _, m := range lm.Moves {
		assert.NotEqual(t, Knight, m.Piece.Kind, "pinned knight moved: %v", m)
	}
	assert.NotEmpty(t, lm.Moves)
}

func TestEnPassantWindow(t *testing.T) {
	var v = variants.Classical()
	var b = v.NewGame()
	var play = func(s string) {
		var lm = GenerateLegalMoves(b)
		var idx, err = v.FindMove(lm.Moves, s)
		require.NoError(t, err, s)
		b.MakeMove(lm.Moves[idx])
	}
	var findEnPassant = func() (Move, bool) {
		for _, m := range GenerateLegalMoves(b).Moves {
			if m.Kind == MoveEnPassant {
				return m, true
			}
		}
		return Move{}, false
	}

	for _, s := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		play(s)
	}
	var ep, ok = findEnPassant()
	require.True(t, ok)
	assert.Equal(t, variants.SquareE5, ep.From)
	assert.Equal(t, variants.SquareD6, ep.To)
	assert.Equal(t, variants.SquareD5, ep.VictimSquare)
	assert.Equal(t, Pawn, ep.Victim.Kind)

	b.MakeMove(ep)
	var _, occupied = b.Square(variants.SquareD5)
	assert.False(t, occupied)
	require.NoError(t, b.UnmakeMove())

	play("h2h3")
	play("h7h6")
	_, ok = findEnPassant()
	assert.False(t, ok, "en passant is only available right after the double push")
}

func TestEnPassantFromFEN(t *testing.T) {
	var _, b, err = variants.ClassicalFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	require.NoError(t, err)
	var found bool
	for _, m := range GenerateLegalMoves(b).Moves {
		if m.Kind == MoveEnPassant {
			found = true
			assert.Equal(t, variants.SquareD6, m.To)
		}
	}
	assert.True(t, found)
}

func TestCastleRules(t *testing.T) {
	var tests = []struct {
		name        string
		fen         string
		short, long bool
	}{
		{"free", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"passing square attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"rook square attacked", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"in check", "r3k3/8/8/8/8/8/8/R3K2r w Q - 0 1", false, false},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"blocked", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", false, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var _, b, err = variants.ClassicalFromFEN(test.fen)
			require.NoError(t, err)
			var short, long bool
			for _, m := range GenerateLegalMoves(b).Moves {
				if m.Kind != MoveCastle {
					continue
				}
				switch m.To {
				case variants.SquareG1:
					short = true
				case variants.SquareC1:
					long = true
				}
			}
			assert.Equal(t, test.short, short, "short castle")
			assert.Equal(t, test.long, long, "long castle")
		})
	}
}

func TestGrasshopperVision(t *testing.T) {
	var sig = variants.GrasshopperChess().Signature()
	var b, err = NewBoard(White, sig,
		map[Square]PieceKind{variants.SquareH1: King, variants.SquareA1: Grasshopper},
		map[Square]PieceKind{variants.SquareH8: King, variants.SquareA4: Pawn, variants.SquareA5: Rook})
	require.NoError(t, err)

	var pm = NewPseudoMoves(b)
	var kinds = func(sq Square) []VisionKind {
		var result []VisionKind
		for _, v := range pm.Vision(White, sq) {
			if v.Piece.Kind == Grasshopper {
				result = append(result, v.Kind)
			}
		}
		return result
	}
	assert.Equal(t, []VisionKind{VisionHopSlide}, kinds(variants.SquareA2))
	assert.Equal(t, []VisionKind{VisionHopHurdle}, kinds(variants.SquareA4))
	assert.Equal(t, []VisionKind{VisionHopLanding}, kinds(variants.SquareA5))
	assert.Empty(t, kinds(variants.SquareA6))
	assert.False(t, pm.Attacked(White, variants.SquareA3))
	assert.True(t, pm.Attacked(White, variants.SquareA5))

	var targets []Square
	for _, m := range pm.Moves(White) {
		if m.Piece.Kind == Grasshopper {
			targets = append(targets, m.To)
		}
	}
	assert.Contains(t, targets, variants.SquareA5)
	assert.NotContains(t, targets, variants.SquareA2)
	assert.NotContains(t, targets, variants.SquareA4)
}

func TestCylinderWraps(t *testing.T) {
	var count = func(v *variants.Variant) int {
		var b, err = NewBoard(White, v.Signature(),
			map[Square]PieceKind{variants.SquareA1: Rook, variants.SquareB1: Knight, variants.SquareE3: King, variants.SquareA2: Pawn},
			map[Square]PieceKind{variants.SquareE8: King})
		require.NoError(t, err)
		var n = 0
		for _, m := range GenerateLegalMoves(b).Moves {
			if m.Piece.Kind == Rook {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 0, count(variants.Classical()))
	assert.Equal(t, 6, count(variants.Cylinder()))

	var sig = variants.Cylinder().Signature()
	var closed bool
	for _, path := range sig.FlatSlides(variants.SquareA1) {
		if path[len(path)-1] == variants.SquareA1 {
			closed = true
			assert.Len(t, path, 8)
		}
	}
	assert.True(t, closed, "a rank on a cylinder is a cycle")
}

func TestWormholeBranches(t *testing.T) {
	var v = variants.Wormhole()
	assert.Equal(t, 60, v.Signature().Num())
	var at = func(s string) Square {
		var sq, err = v.ParseSquare(s)
		require.NoError(t, err)
		return sq
	}
	_, err := v.ParseSquare("d4")
	assert.Error(t, err)

	var b, boardErr = NewBoard(White, v.Signature(),
		map[Square]PieceKind{at("d2"): Rook, at("a1"): King},
		map[Square]PieceKind{at("h8"): King})
	require.NoError(t, boardErr)
	var targets []Square
	for _, m := range GenerateLegalMoves(b).Moves {
		if m.Piece.Kind == Rook {
			targets = append(targets, m.To)
		}
	}
	for _, s := range []string{"d3", "d6", "e6", "d8", "e8"} {
		assert.Contains(t, targets, at(s), s)
	}

	var branches = 0
	for _, path := range v.Signature().FlatSlides(at("d2")) {
		if path[0] == at("d3") {
			branches++
		}
	}
	assert.Equal(t, 2, branches)
}
