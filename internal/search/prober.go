package search

import (
	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/line"
	"github.com/kpitt/nonogram/internal/propagate"
)

type probeKey struct {
	row, col int
	color    cell.Mask
}

// prober implements spec.md §4.4.1: for every unsolved cell with two or
// more candidates, try each candidate under restricted contradiction-mode
// propagation; a candidate that contradicts is eliminated for real.
// Surviving candidates record how many cells their assumption solved, for
// DFS's scoring function.
type prober struct {
	b       *board.Board
	methods []line.Method
	rates   map[probeKey]int
}

func newProber(b *board.Board, methods []line.Method) *prober {
	return &prober{b: b, methods: methods, rates: make(map[probeKey]int)}
}

// run sweeps probe jobs to a fixed point: repeatedly picking the
// highest-priority pending cell, probing it, and re-queuing whatever cells
// its eliminations may have touched, until nothing is left pending (spec.md
// §4.4.1: "continues until no contradictions are found in a full sweep").
// Returns ErrBoardContradiction if any cell's candidate set is emptied.
func (pr *prober) run() error {
	pending := pr.pendingCells()
	for len(pending) > 0 {
		pos := pickHighestPriority(pending, func(p cellPos) float64 {
			return float64(solvedNeighbours(pr.b, p.row, p.col)) +
				lineSolvedRate(pr.b, p.row, true) +
				lineSolvedRate(pr.b, p.col, false)
		})
		pending = removePos(pending, pos)

		touched, err := pr.probeCell(pos.row, pos.col)
		if err != nil {
			return err
		}
		pending = append(pending, touched...)
	}
	return nil
}

func (pr *prober) pendingCells() []cellPos {
	var out []cellPos
	for i := 0; i < pr.b.Height; i++ {
		for j := 0; j < pr.b.Width; j++ {
			if pr.b.Cell(i, j).Count() >= 2 {
				out = append(out, cellPos{i, j})
			}
		}
	}
	return out
}

// probeCell implements spec.md §4.4.1 steps 1-2 for one cell, trying every
// candidate still present when each one is probed (an earlier candidate in
// the same call may have already narrowed this cell).
func (pr *prober) probeCell(row, col int) ([]cellPos, error) {
	if pr.b.Cell(row, col).IsSolved() {
		return nil, nil
	}

	var touched []cellPos
	for _, c := range pr.b.Cell(row, col).Members() {
		if !pr.b.Cell(row, col).Contains(c) {
			continue // eliminated by a previous iteration of this same loop
		}

		before := pr.countSolved()
		var contradicted bool
		err := board.WithSnapshot(pr.b, func() error {
			pr.b.SetCell(row, col, c)
			perr := propagate.Run(pr.b, propagate.Options{
				Rows: []int{row}, Columns: []int{col},
				ContradictionMode: true, Methods: pr.methods,
			})
			if perr != nil {
				contradicted = true
				return nil
			}
			if pr.b.IsSolved() {
				pr.b.AddSolution()
			}
			pr.rates[probeKey{row, col, c}] = pr.countSolved() - before
			return nil
		})
		if err != nil {
			// board.WithSnapshot never returns an error here (the closure
			// always returns nil), but guard defensively.
			return nil, err
		}

		if contradicted {
			narrowed, uerr := cell.Unset(pr.b.Cell(row, col), c)
			if uerr != nil {
				return nil, ErrBoardContradiction
			}
			pr.b.SetCell(row, col, narrowed)

			more, rerr := pr.recommit(row, col)
			if rerr != nil {
				return nil, rerr
			}
			touched = append(touched, more...)
		}
	}
	return touched, nil
}

// recommit re-runs real (non-speculative) propagation from (row, col) after
// a candidate has been permanently eliminated, per spec.md §4.4.1's
// "optionally rerun propagation from P to amortize gains." Cells in any row
// or column that changed are returned for re-probing; the board's own
// OnRowUpdate/OnColumnUpdate hooks are borrowed for this, temporarily
// wrapped rather than replaced.
func (pr *prober) recommit(row, col int) ([]cellPos, error) {
	seen := make(map[cellPos]bool)
	var touched []cellPos

	prevRow, prevCol := pr.b.OnRowUpdate, pr.b.OnColumnUpdate
	pr.b.OnRowUpdate = func(i int) {
		for j := 0; j < pr.b.Width; j++ {
			if pos := (cellPos{i, j}); !seen[pos] {
				seen[pos] = true
				touched = append(touched, pos)
			}
		}
		if prevRow != nil {
			prevRow(i)
		}
	}
	pr.b.OnColumnUpdate = func(j int) {
		for i := 0; i < pr.b.Height; i++ {
			if pos := (cellPos{i, j}); !seen[pos] {
				seen[pos] = true
				touched = append(touched, pos)
			}
		}
		if prevCol != nil {
			prevCol(j)
		}
	}
	defer func() {
		pr.b.OnRowUpdate = prevRow
		pr.b.OnColumnUpdate = prevCol
	}()

	if err := propagate.Run(pr.b, propagate.Options{
		Rows: []int{row}, Columns: []int{col},
		ContradictionMode: true, Methods: pr.methods,
	}); err != nil {
		return nil, ErrBoardContradiction
	}

	out := touched[:0]
	for _, pos := range touched {
		if !pr.b.Cell(pos.row, pos.col).IsSolved() {
			out = append(out, pos)
		}
	}
	return out, nil
}

func (pr *prober) countSolved() int {
	n := 0
	for i := 0; i < pr.b.Height; i++ {
		for j := 0; j < pr.b.Width; j++ {
			if pr.b.Cell(i, j).IsSolved() {
				n++
			}
		}
	}
	return n
}

func pickHighestPriority(pending []cellPos, priority func(cellPos) float64) cellPos {
	best := pending[0]
	bestScore := priority(best)
	for _, pos := range pending[1:] {
		if s := priority(pos); s > bestScore {
			best, bestScore = pos, s
		}
	}
	return best
}

func removePos(list []cellPos, pos cellPos) []cellPos {
	for i, p := range list {
		if p == pos {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
