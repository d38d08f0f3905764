package board

import "github.com/kpitt/nonogram/internal/cell"

// Solution is an immutable snapshot of a fully-solved grid (spec.md §3).
type Solution struct {
	Cells [][]cell.Mask
}

// Equal reports whether two solutions are cell-wise identical.
func (s Solution) Equal(other Solution) bool {
	if len(s.Cells) != len(other.Cells) {
		return false
	}
	for i := range s.Cells {
		if len(s.Cells[i]) != len(other.Cells[i]) {
			return false
		}
		for j := range s.Cells[i] {
			if s.Cells[i][j] != other.Cells[i][j] {
				return false
			}
		}
	}
	return true
}

func (b *Board) snapshotSolution() Solution {
	cells := make([][]cell.Mask, b.Height)
	for i := range cells {
		cells[i] = make([]cell.Mask, b.Width)
		copy(cells[i], b.cells[i])
	}
	return Solution{Cells: cells}
}

// AddSolution records the current (assumed complete) board state as a
// solution, per spec.md §4.4.3: duplicates are suppressed by cell-wise
// comparison, and a match is moved to the front of the list to accelerate
// repeated matches. Reports whether a new solution was recorded.
func (b *Board) AddSolution() bool {
	candidate := b.snapshotSolution()
	for i, s := range b.solutions {
		if s.Equal(candidate) {
			if i != 0 {
				b.solutions[i], b.solutions[0] = b.solutions[0], b.solutions[i]
			}
			return false
		}
	}

	b.solutions = append(b.solutions, candidate)
	if b.OnSolutionFound != nil {
		b.OnSolutionFound(candidate)
	}
	return true
}

// Solutions returns every distinct solution recorded so far.
func (b *Board) Solutions() []Solution {
	return b.solutions
}
