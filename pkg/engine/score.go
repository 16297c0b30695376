package engine

import (
	"fmt"
)

type scoreKind int8

const (
	scoreLost scoreKind = iota
	scoreHeuristic
	scoreDraw
	scoreWon
)

// Score is a position value from the point of view of the side to move.
// Lost and Won carry the move number at which the game ends.
type Score struct {
	kind  scoreKind
	value int64
	ply   int
}

func Heuristic(v int64) Score { return Score{kind: scoreHeuristic, value: v} }
func Draw(ply int) Score { return Score{kind: scoreDraw, ply: ply} }
func Lost(ply int) Score { return Score{kind: scoreLost, ply: ply} }
func Won(ply int) Score { return Score{kind: scoreWon, ply: ply} }

func (s Score) IsHeuristic() bool { return s.kind == scoreHeuristic }
func (s Score) IsDraw() bool { return s.kind == scoreDraw }
func (s Score) IsLost() bool { return s.kind == scoreLost }
func (s Score) IsWon() bool { return s.kind == scoreWon }

// Value is the heuristic value; draws count as zero.
func (s Score) Value() int64 {
	if s.kind == scoreHeuristic {
		return s.value
	}
	return 0
}

func (s Score) Ply() int {
	return s.ply
}

// Compare orders scores: losses below everything, sooner losses lower;
// wins above everything, sooner wins higher. A draw compares equal to
// Heuristic(0) and to every other draw.
func Compare(a, b Score) int {
	switch {
	case a.kind == scoreLost && b.kind == scoreLost:
		return compareInt(int64(a.ply), int64(b.ply))
	case a.kind == scoreWon && b.kind == scoreWon:
		return compareInt(int64(b.ply), int64(a.ply))
	case a.kind == scoreLost:
		return -1
	case b.kind == scoreLost:
		return 1
	case a.kind == scoreWon:
		return 1
	case b.kind == scoreWon:
		return -1
	}
	return compareInt(a.Value(), b.Value())
}

func compareInt(a, b int64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (s Score) Less(other Score) bool {
	return Compare(s, other) < 0
}

func (s Score) Neg() Score {
	switch s.kind {
	case scoreHeuristic:
		return Heuristic(-s.value)
	case scoreLost:
		return Won(s.ply)
	case scoreWon:
		return Lost(s.ply)
	}
	return s
}

func (s Score) AddHeuristic(offset int64) Score {
	if s.kind == scoreHeuristic {
		s.value += offset
	}
	return s
}

func (s Score) String() string {
	switch s.kind {
	case scoreLost:
		return fmt.Sprintf("lost@%d", s.ply)
	case scoreWon:
		return fmt.Sprintf("won@%d", s.ply)
	case scoreDraw:
		return fmt.Sprintf("draw@%d", s.ply)
	}
	return fmt.Sprintf("%+.2f", float64(s.value)/2000)
}
