package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOrder(t *testing.T) {
	// ascending
	var scores = []Score{
		Lost(2),
		Lost(5),
		Heuristic(-1000),
		Heuristic(-1),
		Heuristic(1),
		Heuristic(7000),
		Won(9),
		Won(3),
	}
	for i := range scores {
		for j := range scores {
			var expected = compareInt(int64(i), int64(j))
			assert.Equal(t, expected, Compare(scores[i], scores[j]), "%v vs %v", scores[i], scores[j])
		}
	}
}

func TestDrawIsNeutral(t *testing.T) {
	assert.Equal(t, 0, Compare(Draw(3), Heuristic(0)))
	assert.Equal(t, 0, Compare(Draw(3), Draw(10)))
	assert.True(t, Draw(4).Less(Heuristic(1)))
	assert.True(t, Heuristic(-1).Less(Draw(4)))
	assert.True(t, Lost(100).Less(Draw(1)))
	assert.True(t, Draw(1).Less(Won(100)))
	assert.Equal(t, 4, Draw(4).Ply())
}

func TestCompareIsTransitive(t *testing.T) {
	var scores = []Score{Lost(2), Lost(5), Heuristic(-1), Draw(2), Heuristic(0), Draw(7), Heuristic(1), Won(5), Won(2)}
	for _, a := range scores {
		for _, b := range scores {
			for _, c := range scores {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "%v <= %v <= %v", a, b, c)
				}
			}
		}
	}
}

func TestScoreNeg(t *testing.T) {
	assert.Equal(t, Heuristic(-5), Heuristic(5).Neg())
	assert.Equal(t, Won(3), Lost(3).Neg())
	assert.Equal(t, Lost(3), Won(3).Neg())
	assert.Equal(t, Draw(3), Draw(3).Neg())

	var scores = []Score{Lost(1), Heuristic(-4), Draw(2), Heuristic(4), Won(6)}
	for _, a := range scores {
		for _, b := range scores {
			assert.Equal(t, Compare(a, b), Compare(b.Neg(), a.Neg()))
		}
	}
}

func TestAddHeuristic(t *testing.T) {
	assert.Equal(t, Heuristic(250), Heuristic(50).AddHeuristic(200))
	assert.Equal(t, Won(2), Won(2).AddHeuristic(200))
	assert.Equal(t, Draw(2), Draw(2).AddHeuristic(200))
}
