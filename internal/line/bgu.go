package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// bguSolver implements spec.md §4.2(c) in full: a top-down memoized
// `fits(i, j)` ("prefix of length i+1 can accommodate the first j+1
// blocks") confirms a completion exists, and that same table — together
// with its mirror image computed over the reversed line — drives painting
// directly (see paintFromDP in dp_common.go): a cell admits a color iff
// some placement of the owning block, consistent with both the forward
// prefix and the backward suffix, covers it.
type bguSolver struct{}

type bguMemo struct {
	dims  lineDims
	cache map[[2]int]int8 // 0 unknown, 1 true, -1 false
}

func (bguSolver) solveConcrete(c clue.Clue, in Line) (Line, error) {
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

	fwd := &bguMemo{dims: dims, cache: make(map[[2]int]int8)}
	if !fwd.fits(dims.n-1, dims.k-1) {
		return Line{}, contradiction(c, in)
	}

	rc := reverseClue(c)
	rcells := reverseCells(in.Cells)
	bwd := &bguMemo{dims: newLineDims(rc, rcells), cache: make(map[[2]int]int8)}

	return paintFromDP(c, in, fwd, bwd)
}

// fits(i, j) is true iff blocks[0..j] pack into cells[0..i] with the last
// placed block ending at or before i and every cell after it (up to i)
// compatible with Space.
func (m *bguMemo) fits(i, j int) bool {
	if i < 0 {
		return false
	}
	if j < 0 {
		return prefixSpaceOK(m.dims.cells, i)
	}

	key := [2]int{i, j}
	if v, ok := m.cache[key]; ok {
		return v == 1
	}

	result := false
	// Sub-case A: cell i is a trailing space after blocks[0..j] already fit
	// within a shorter prefix.
	if m.dims.cells[i].Contains(cell.Space) && m.fits(i-1, j) {
		result = true
	}
	// Sub-case B: cell i is the last cell of block j.
	if !result {
		if start, ok := m.dims.blockEndsAt(i, j); ok {
			gap := requiredGap(m.dims.clue, j)
			boundary := start - 1 - gap
			if gap == 0 || (boundary+1 >= 0 && m.dims.cells[boundary+1].Contains(cell.Space)) {
				if j == 0 {
					result = boundary < 0 || prefixSpaceOK(m.dims.cells, boundary)
				} else {
					result = m.fits(boundary, j-1)
				}
			}
		}
	}

	if result {
		m.cache[key] = 1
	} else {
		m.cache[key] = -1
	}
	return result
}
