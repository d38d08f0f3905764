// Package board holds the 2-D cell grid, its row/column descriptions, the
// solutions accumulated during search, and the observer hooks through which
// external renderers watch progress.
package board

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
	"github.com/kpitt/nonogram/internal/line"
)

// Board is a rectangle of cells plus one Clue per row and per column.
// Callbacks are plain, non-owning function fields (see DESIGN.md "Cyclic
// references and observer hooks"): the board never holds a reference back
// to whatever registered them.
type Board struct {
	Width, Height int
	Palette       *cell.Palette

	RowClues []clue.Clue
	ColClues []clue.Clue

	cells [][]cell.Mask

	solutions []Solution

	OnRowUpdate     func(i int)
	OnColumnUpdate  func(j int)
	OnRoundComplete func()
	OnSolutionFound func(Solution)
}

// New builds a board from its row and column descriptions, validating
// spec.md §3's board invariants (ii) fit and (i) per-color sum equality.
// Every cell starts holding the palette's full candidate set.
func New(rowClues, colClues []clue.Clue, p *cell.Palette) (*Board, error) {
	height, width := len(rowClues), len(colClues)

	for i, c := range rowClues {
		if !c.Fits(width) {
			return nil, &clue.DescriptionError{Axis: "row", Index: i, Err: clue.ErrDoesNotFit}
		}
	}
	for j, c := range colClues {
		if !c.Fits(height) {
			return nil, &clue.DescriptionError{Axis: "column", Index: j, Err: clue.ErrDoesNotFit}
		}
	}
	if err := checkColorSums(rowClues, colClues); err != nil {
		return nil, err
	}

	cells := make([][]cell.Mask, height)
	for i := range cells {
		cells[i] = make([]cell.Mask, width)
		for j := range cells[i] {
			cells[i][j] = p.Full()
		}
	}

	return &Board{
		Width: width, Height: height, Palette: p,
		RowClues: rowClues, ColClues: colClues,
		cells: cells,
	}, nil
}

// checkColorSums validates spec.md §3 invariant (i): "sum of block sizes
// across rows equals the sum across columns, per color." A blotted block's
// contribution is unknown until it is placed (clue.Clue.TotalByColor omits
// it), so the check is skipped entirely when either side has any blotted
// block — there is nothing concrete to compare yet.
func checkColorSums(rowClues, colClues []clue.Clue) error {
	rowTotals := make(map[cell.Mask]int)
	for _, c := range rowClues {
		if c.HasBlotted() {
			return nil
		}
		for color, n := range c.TotalByColor() {
			rowTotals[color] += n
		}
	}
	colTotals := make(map[cell.Mask]int)
	for _, c := range colClues {
		if c.HasBlotted() {
			return nil
		}
		for color, n := range c.TotalByColor() {
			colTotals[color] += n
		}
	}

	if len(rowTotals) != len(colTotals) {
		return clue.ErrSumMismatch
	}
	for color, n := range rowTotals {
		if colTotals[color] != n {
			return clue.ErrSumMismatch
		}
	}
	return nil
}

// Row returns a copy of row i as a Line.
func (b *Board) Row(i int) line.Line {
	cells := make([]cell.Mask, b.Width)
	copy(cells, b.cells[i])
	return line.Line{Clue: b.RowClues[i], Cells: cells}
}

// Col returns a copy of column j as a Line.
func (b *Board) Col(j int) line.Line {
	cells := make([]cell.Mask, b.Height)
	for i := range cells {
		cells[i] = b.cells[i][j]
	}
	return line.Line{Clue: b.ColClues[j], Cells: cells}
}

// SetRow writes l's cells into row i, returning the column indexes that
// actually changed — the crossing lines the propagation engine must
// re-enqueue (spec.md §4.3 step 4). Fires OnRowUpdate if anything changed.
func (b *Board) SetRow(i int, l line.Line) []int {
	var changed []int
	for j, m := range l.Cells {
		if m != b.cells[i][j] {
			b.cells[i][j] = m
			changed = append(changed, j)
		}
	}
	if len(changed) > 0 && b.OnRowUpdate != nil {
		b.OnRowUpdate(i)
	}
	return changed
}

// SetCol is SetRow's mirror image for column j.
func (b *Board) SetCol(j int, l line.Line) []int {
	var changed []int
	for i, m := range l.Cells {
		if m != b.cells[i][j] {
			b.cells[i][j] = m
			changed = append(changed, i)
		}
	}
	if len(changed) > 0 && b.OnColumnUpdate != nil {
		b.OnColumnUpdate(j)
	}
	return changed
}

// Cell returns the current candidate mask at (i, j).
func (b *Board) Cell(i, j int) cell.Mask {
	return b.cells[i][j]
}

// SetCell forces (i, j) to m directly, without going through a line solver.
// Used by probing/DFS to commit a single candidate before re-propagating.
func (b *Board) SetCell(i, j int, m cell.Mask) {
	b.cells[i][j] = m
}

// IsSolved reports whether every cell on the board is solved.
func (b *Board) IsSolved() bool {
	for i := range b.cells {
		for _, m := range b.cells[i] {
			if !m.IsSolved() {
				return false
			}
		}
	}
	return true
}

// SolutionRate returns the fraction of cells currently solved (spec.md §7:
// "the board's solution_rate").
func (b *Board) SolutionRate() float64 {
	total := b.Width * b.Height
	if total == 0 {
		return 1
	}
	solved := 0
	for i := range b.cells {
		for _, m := range b.cells[i] {
			if m.IsSolved() {
				solved++
			}
		}
	}
	return float64(solved) / float64(total)
}
