package variants

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
)

//https://www.chessprogramming.org/Perft_Results
func TestPerft(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		nodes int
	}{
		{
			fen:   InitialPositionFEN,
			depth: 3,
			nodes: 8902,
		},
		{
			fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			depth: 2,
			nodes: 2039,
		},
		{
			fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			depth: 3,
			nodes: 2812,
		},
		{
			fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
			depth: 2,
			nodes: 264,
		},
		{
			fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			depth: 2,
			nodes: 1486,
		},
		{
			fen:   "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
			depth: 2,
			nodes: 2079,
		},
	}
	for _, test := range tests {
		var _, b, err = ClassicalFromFEN(test.fen)
		require.NoError(t, err)
		var before = b.Clone()
		assert.Equal(t, test.nodes, Perft(b, test.depth), test.fen)
		assert.True(t, before.Equal(b), test.fen)
		assert.Equal(t, before.MoveNumber(), b.MoveNumber())
		assert.Empty(t, b.History())
	}
}

// Move counts of every position along random games agree with dragontoothmg.
func TestMoveCountsMatchDragontooth(t *testing.T) {
	var fens = []string{
		InitialPositionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		var _, b, err = ClassicalFromFEN(fen)
		require.NoError(t, err)
		var oracle = dragontoothmg.ParseFen(fen)
		assert.Equal(t, dragontoothPerft(&oracle, 2), Perft(b, 2), fen)

		// walk the first legal move of each position in both generators
		for ply := 0; ply < 20; ply++ {
			var moves = GenerateLegalMoves(b).Moves
			var oracleMoves = oracle.GenerateLegalMoves()
			require.Equal(t, len(oracleMoves), len(moves), "%v after %d plies", fen, ply)
			if len(moves) == 0 {
				break
			}
			var m = oracleMoves[ply%len(oracleMoves)]
			var idx = findOracleMove(t, moves, m)
			b.MakeMove(moves[idx])
			oracle.Apply(m)
		}
	}
}

func findOracleMove(t *testing.T, moves []Move, m dragontoothmg.Move) int {
	for i, move := range moves {
		if int(move.From) != int(m.From()) || int(move.To) != int(m.To()) {
			continue
		}
		if m.Promote() != dragontoothmg.Nothing && move.ToPiece.Kind != promotionKind(m.Promote()) {
			continue
		}
		return i
	}
	t.Fatalf("move %v not generated", m.String())
	return -1
}

func promotionKind(p dragontoothmg.Piece) PieceKind {
	switch p {
	case dragontoothmg.Knight:
		return Knight
	case dragontoothmg.Bishop:
		return Bishop
	case dragontoothmg.Rook:
		return Rook
	}
	return Queen
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) int {
	var moves = b.GenerateLegalMoves()
	if depth <= 1 {
		return len(moves)
	}
	var result = 0
	for _, m := range moves {
		var unapply = b.Apply(m)
		result += dragontoothPerft(b, depth-1)
		unapply()
	}
	return result
}
