// Package line implements the per-line constraint solver: pure functions
// from (description, current line) to the strongest deducible refinement,
// per spec.md §4.2. Five interchangeable algorithms are provided behind one
// Solver interface, plus the per-algorithm cache and blotted-block
// expansion shared by all of them.
package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// Line is one row or column: its clue plus its current cell candidate sets.
// Line is a value type, matching clue.Clue's "pure function" contract —
// solvers never mutate their input.
type Line struct {
	Clue  clue.Clue
	Cells []cell.Mask
}

// Len returns the number of cells in the line.
func (l Line) Len() int {
	return len(l.Cells)
}

// Clone returns an independent copy of the line's cell slice, sharing the
// same Clue (Clue is immutable once built).
func (l Line) Clone() Line {
	cells := make([]cell.Mask, len(l.Cells))
	copy(cells, l.Cells)
	return Line{Clue: l.Clue, Cells: cells}
}

// IsComplete reports whether every cell in the line is solved.
func (l Line) IsComplete() bool {
	for _, c := range l.Cells {
		if !c.IsSolved() {
			return false
		}
	}
	return true
}

// Equal reports whether two lines have identical cell candidate sets.
func (l Line) Equal(other Line) bool {
	if len(l.Cells) != len(other.Cells) {
		return false
	}
	for i := range l.Cells {
		if l.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether l is a pointwise refinement of other — the
// monotonicity property from spec.md §8.
func (l Line) IsSubsetOf(other Line) bool {
	for i := range l.Cells {
		if !l.Cells[i].IsSubsetOf(other.Cells[i]) {
			return false
		}
	}
	return true
}
