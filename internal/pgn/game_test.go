package pgn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var g = &Game{
		Tags: []Tag{
			{Key: "Variant", Value: "wormhole"},
			{Key: "White", Value: "A"},
		},
		Moves:  []string{"e2-e4", "e7-e5", "d1-h5"},
		Result: GameResultDraw,
	}
	var sb strings.Builder
	require.NoError(t, Write(&sb, g))
	assert.Equal(t,
		"[Variant \"wormhole\"]\n[White \"A\"]\n[Result \"1/2-1/2\"]\n\n1. e2-e4 e7-e5 2. d1-h5 1/2-1/2\n\n",
		sb.String())

	var value, ok = g.TagValue("White")
	assert.True(t, ok)
	assert.Equal(t, "A", value)
}

func TestWriteWrapsLongGames(t *testing.T) {
	var g = &Game{}
	for i := 0; i < 100; i++ {
		g.Moves = append(g.Moves, "a1-a2")
	}
	var sb strings.Builder
	require.NoError(t, Write(&sb, g))
	var lines = strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Greater(t, len(lines), 3)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), lineWidth)
	}
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], GameResultNone))
	assert.Equal(t, "[Result \"*\"]", lines[0])
}
