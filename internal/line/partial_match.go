package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// partialMatchSolver implements spec.md §4.2(a): for each unsolved cell,
// tentatively fix each candidate color and test whether the automaton can
// still accept some completion. Clarity-first; O(N²·S) per line.
type partialMatchSolver struct{}

func (partialMatchSolver) solveConcrete(c clue.Clue, in Line) (Line, error) {
	aut := NewAutomaton(c)
	out := in.Clone()

	for i, candidates := range in.Cells {
		if candidates.IsSolved() {
			continue
		}
		var allowed cell.Mask
		for _, color := range candidates.Members() {
			if aut.canComplete(in.Cells, i, color) {
				allowed |= color
			}
		}
		if allowed == 0 {
			return Line{}, contradiction(c, in)
		}
		out.Cells[i] = allowed
	}

	out.Clue = c
	return out, nil
}
