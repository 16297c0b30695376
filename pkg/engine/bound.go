package engine

import "sync"

// LowerBound is either a finite score or minus infinity.
type LowerBound struct {
	finite bool
	score  Score
}

// UpperBound is either a finite score or plus infinity.
type UpperBound struct {
	finite bool
	score  Score
}

var (
	NegInf = LowerBound{}
	PosInf = UpperBound{}
)

func AtLeast(s Score) LowerBound { return LowerBound{finite: true, score: s} }
func AtMost(s Score) UpperBound { return UpperBound{finite: true, score: s} }

func (lb LowerBound) Finite() (Score, bool) { return lb.score, lb.finite }
func (ub UpperBound) Finite() (Score, bool) { return ub.score, ub.finite }

func (lb LowerBound) Neg() UpperBound {
	if !lb.finite {
		return PosInf
	}
	return AtMost(lb.score.Neg())
}

func (ub UpperBound) Neg() LowerBound {
	if !ub.finite {
		return NegInf
	}
	return AtLeast(ub.score.Neg())
}

// Admits reports lb <= s.
func (lb LowerBound) Admits(s Score) bool {
	return !lb.finite || Compare(lb.score, s) <= 0
}

// Admits reports s <= ub.
func (ub UpperBound) Admits(s Score) bool {
	return !ub.finite || Compare(s, ub.score) <= 0
}

func maxLower(a, b LowerBound) LowerBound {
	if !a.finite {
		return b
	}
	if !b.finite || Compare(b.score, a.score) <= 0 {
		return a
	}
	return b
}

type boundCell struct {
	mu    sync.Mutex
	bound LowerBound
}

func (c *boundCell) load() LowerBound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bound
}

func (c *boundCell) raise(s Score) {
	c.mu.Lock()
	c.bound = maxLower(c.bound, AtLeast(s))
	c.mu.Unlock()
}

// sharedBound is the chain of lower bounds established by a node and its
// ancestors of the same side. Cells may be shared between goroutines; the
// effective bound is the best of them.
type sharedBound struct {
	cells []*boundCell
}

func (sb sharedBound) lower() LowerBound {
	var result = NegInf
	for _, c := range sb.cells {
		result = maxLower(result, c.load())
	}
	return result
}

// upper is the bound seen by the opposite side.
func (sb sharedBound) upper() UpperBound {
	return sb.lower().Neg()
}

// push returns a copy of the chain extended with a fresh cell.
func (sb sharedBound) push() sharedBound {
	var cells = make([]*boundCell, len(sb.cells), len(sb.cells)+1)
	copy(cells, sb.cells)
	return sharedBound{cells: append(cells, &boundCell{})}
}

// refine raises the newest cell only.
func (sb sharedBound) refine(s Score) {
	if len(sb.cells) != 0 {
		sb.cells[len(sb.cells)-1].raise(s)
	}
}
