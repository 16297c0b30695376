package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

func boardFromFEN(t *testing.T, fen string) *Board {
	var _, b, err = variants.ClassicalFromFEN(fen)
	require.NoError(t, err)
	return b
}

func TestInitialPositionData(t *testing.T) {
	var bd = newBoardData(variants.Classical().NewGame())
	assert.False(t, bd.IsCheck())
	assert.False(t, bd.IsTerminal())
	assert.Equal(t, 20, bd.NumMoves())
	assert.Equal(t, Heuristic(0), bd.Evaluation())
}

func TestCheckmateData(t *testing.T) {
	var bd = newBoardData(boardFromFEN(t, "4r2k/8/8/8/8/8/3P1P2/3RKR2 w - - 0 1"))
	assert.True(t, bd.IsCheck())
	assert.True(t, bd.IsTerminal())
	assert.Equal(t, Lost(0), bd.Evaluation())
	assert.Empty(t, bd.Moves())
}

func TestStalemateData(t *testing.T) {
	var bd = newBoardData(boardFromFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	assert.False(t, bd.IsCheck())
	assert.True(t, bd.IsTerminal())
	assert.True(t, bd.Evaluation().IsDraw())
}

func TestEvaluationPerspective(t *testing.T) {
	var white = newBoardData(boardFromFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")).Evaluation()
	var black = newBoardData(boardFromFEN(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")).Evaluation()
	assert.True(t, Heuristic(0).Less(white))
	assert.Equal(t, white.Neg(), black)
}

func TestEvaluationSymmetric(t *testing.T) {
	var bd = newBoardData(boardFromFEN(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2"))
	assert.Equal(t, Heuristic(0), bd.Evaluation())
}

func TestPawnAdvanceBonus(t *testing.T) {
	var near = newBoardData(boardFromFEN(t, "4k3/P7/8/8/8/8/8/4K3 b - - 0 1")).Evaluation()
	var far = newBoardData(boardFromFEN(t, "4k3/8/8/8/8/8/P7/4K3 b - - 0 1")).Evaluation()
	assert.True(t, near.Less(far), "black sees a pawn about to promote as worse")
}

func TestMaterialGain(t *testing.T) {
	var b = boardFromFEN(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var lm = GenerateLegalMoves(b)
	for _, m := range lm.Moves {
		if m.Piece.Kind != Pawn || m.ToPiece.Kind != Queen {
			continue
		}
		if m.IsCapture() {
			assert.Equal(t, int64(10+16)*materialScale, materialGain(m))
		} else {
			assert.Equal(t, int64(16)*materialScale, materialGain(m))
		}
	}
}
