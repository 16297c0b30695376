package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"classical", "cylinder", "grasshopper", "wormhole"}, Names())
	for _, name := range Names() {
		var v, err = ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.Name)
		var b = v.NewGame()
		assert.NoError(t, b.Validate())
		assert.Len(t, GenerateLegalMoves(b).Moves, startMoves[name], name)
	}
	var _, err = ByName("shogi")
	assert.Error(t, err)
}

var startMoves = map[string]int{
	"classical": 20,
	"cylinder":  20,

	// the d and e pawns may double push across the hole to d6 or e6
	"wormhole": 22,

	// 16 pawn moves and 20 grasshopper hops over the pawn line
	"grasshopper": 36,
}

func TestClassicalTables(t *testing.T) {
	var sig = Classical().Signature()
	assert.Equal(t, 64, sig.Num())
	assert.Equal(t, []Square{SquareD2, SquareA3, SquareC3}, sig.KnightMoves(SquareB1))
	assert.Len(t, sig.KnightMoves(SquareD4), 8)
	assert.Len(t, sig.KingMoves(SquareE1), 5)
	assert.Len(t, sig.KingMoves(SquareD4), 8)
	assert.Equal(t, []Square{SquareD3, SquareF3}, sig.PawnTakes(White, SquareE2))
	assert.Equal(t, []Square{SquareD6, SquareF6}, sig.PawnTakes(Black, SquareE7))
	assert.Empty(t, sig.PawnMoves(White, SquareE1))

	var d, ok = sig.PromotionDistance(White, SquareE2)
	require.True(t, ok)
	assert.Equal(t, 6, d)
	d, ok = sig.PromotionDistance(Black, SquareE2)
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Len(t, sig.Castles(White), 2)
}

func TestGrasshopperChessSetup(t *testing.T) {
	var v = GrasshopperChess()
	assert.Equal(t, "grasshopper", v.Name)
	var sig = v.Signature()
	assert.Equal(t, []PieceKind{Grasshopper, Knight, Bishop, Rook, Queen}, sig.Promotions(White, SquareE8))
	assert.Equal(t, []PieceKind{Grasshopper, Knight, Bishop, Rook, Queen}, sig.Promotions(Black, SquareA1))

	var b = v.NewGame()
	var p, ok = b.Square(SquareC2)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Grasshopper, Team: White}, p)
	p, ok = b.Square(SquareF7)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Grasshopper, Team: Black}, p)
	p, ok = b.Square(SquareD3)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: Pawn, Team: White}, p)

	var d, found = sig.PromotionDistance(White, SquareD3)
	require.True(t, found)
	assert.Equal(t, 5, d)
}

func TestSquareNames(t *testing.T) {
	var v = Classical()
	assert.Equal(t, "e4", v.SquareName(SquareE4))
	var sq, err = v.ParseSquare("h8")
	require.NoError(t, err)
	assert.Equal(t, SquareH8, sq)
	_, err = v.ParseSquare("i1")
	assert.Error(t, err)
	_, err = v.ParseSquare("e")
	assert.Error(t, err)
	assert.Equal(t, 4, File(SquareE4))
	assert.Equal(t, 3, Rank(SquareE4))
	assert.Equal(t, SquareE4, MakeSquare(4, 3))

	var w = Wormhole()
	for i := 0; i < w.Signature().Num(); i++ {
		var sq, err = w.ParseSquare(w.SquareName(Square(i)))
		require.NoError(t, err)
		assert.Equal(t, Square(i), sq)
	}
}

func TestFindMove(t *testing.T) {
	var v, b, err = ClassicalFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	var moves = GenerateLegalMoves(b).Moves
	idx, err := v.FindMove(moves, "b7b8r")
	require.NoError(t, err)
	assert.Equal(t, Rook, moves[idx].ToPiece.Kind)
	assert.Equal(t, "b7-b8=R", v.MoveName(moves[idx]))
	_, err = v.FindMove(moves, "e1e3")
	assert.Error(t, err)
}

func TestClassicalFromFEN(t *testing.T) {
	var _, b, err = ClassicalFromFEN("r3k2r/8/8/8/4Pp2/8/8/R3K2R b Qk e3 0 1")
	require.NoError(t, err)
	assert.Equal(t, Black, b.Turn())

	var piece = func(sq Square) Piece {
		var p, ok = b.Square(sq)
		require.True(t, ok)
		return p
	}
	assert.False(t, piece(SquareE1).Moved)
	assert.False(t, piece(SquareA1).Moved)
	assert.True(t, piece(SquareH1).Moved)
	assert.False(t, piece(SquareE8).Moved)
	assert.True(t, piece(SquareA8).Moved)
	assert.False(t, piece(SquareH8).Moved)
	assert.Equal(t, Passant{Active: true, Ply: -1, Skipped: SquareE3}, piece(SquareE4).Passant)

	_, _, err = ClassicalFromFEN("not a fen")
	assert.Error(t, err)
}
