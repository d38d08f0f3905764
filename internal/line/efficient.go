package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// efficientSolver implements spec.md §4.2(d) in full: the Yu/Lin/Shih
// `fix(i, j)` table, filled bottom-up (increasing i) rather than bgu.go's
// top-down recursion — each position's two sub-cases ("S[i] is a space" /
// "S[i] is the last cell of block j") are read directly out of
// already-filled rows instead of recursing.
//
// As with bguSolver, once feasibility is confirmed the same table — plus
// its mirror image over the reversed line — drives painting directly via
// paintFromDP (dp_common.go), rather than delegating to a different
// solver's automaton pass.
type efficientSolver struct{}

// efficientFits adapts the bottom-up fix(i,j) array to the fitsTable
// interface so paintFromDP can drive painting from it exactly as it does
// from bguMemo's top-down table.
type efficientFits struct {
	fix [][]bool // fix[j][i]
}

func (e efficientFits) fits(i, j int) bool {
	if i < 0 {
		return false
	}
	return e.fix[j][i]
}

// buildFixTable fills the fix(i, j) table bottom-up for clue c against
// cells: fix[j][i] holds fix(i, j). fix(i, j) reads fix(i-1, j) and
// fix(p, j-1) for some p < i, so rows are filled in increasing j; the whole
// k×n table is kept because paintFromDP queries arbitrary entries.
func buildFixTable(c clue.Clue, cells []cell.Mask, dims lineDims) [][]bool {
	fix := make([][]bool, dims.k)
	for j := range fix {
		fix[j] = make([]bool, dims.n)
	}

	for j := 0; j < dims.k; j++ {
		for i := 0; i < dims.n; i++ {
			var result bool

			// Sub-case: S[i] is a space following an already-complete fit
			// of blocks[0..j].
			if i > 0 && cells[i].Contains(cell.Space) && fix[j][i-1] {
				result = true
			}

			// Sub-case: S[i] is the last cell of block j.
			if !result {
				if start, ok := dims.blockEndsAt(i, j); ok {
					gap := requiredGap(c, j)
					boundary := start - 1 - gap
					gapOK := gap == 0 || (boundary+1 >= 0 && cells[boundary+1].Contains(cell.Space))
					if gapOK {
						if j == 0 {
							result = boundary < 0 || prefixSpaceOK(cells, boundary)
						} else if boundary >= 0 {
							result = fix[j-1][boundary]
						}
					}
				}
			}

			fix[j][i] = result
		}
	}

	return fix
}

func (efficientSolver) solveConcrete(c clue.Clue, in Line) (Line, error) {
	dims := newLineDims(c, in.Cells)

	if dims.k == 0 {
		if !prefixSpaceOK(in.Cells, dims.n-1) {
			return Line{}, contradiction(c, in)
		}
		out := in.Clone()
		out.Clue = c
		for i := range out.Cells {
			out.Cells[i] = cell.Space
		}
		return out, nil
	}

	fix := buildFixTable(c, in.Cells, dims)
	if !fix[dims.k-1][dims.n-1] {
		return Line{}, contradiction(c, in)
	}

	rc := reverseClue(c)
	rcells := reverseCells(in.Cells)
	rdims := newLineDims(rc, rcells)
	rfix := buildFixTable(rc, rcells, rdims)

	return paintFromDP(c, in, efficientFits{fix: fix}, efficientFits{fix: rfix})
}
