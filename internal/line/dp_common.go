package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// requiredGap returns the minimum number of space cells required between
// consecutive blocks j-1 and j of a clue: 1 if same color (spec.md §3:
// "two consecutive blocks of the same color must be separated by at least
// one space cell"), 0 otherwise.
func requiredGap(c clue.Clue, j int) int {
	if j == 0 {
		return 0
	}
	if c.Blocks[j-1].Color == c.Blocks[j].Color {
		return 1
	}
	return 0
}

// prefixSpaceOK reports whether cells[0..upTo] (inclusive) are all
// compatible with Space. upTo == -1 is the (trivially true) empty prefix.
func prefixSpaceOK(cells []cell.Mask, upTo int) bool {
	for i := 0; i <= upTo; i++ {
		if !cells[i].Contains(cell.Space) {
			return false
		}
	}
	return true
}

// lineDims bundles a clue with the cells it's being matched against, plus
// their lengths, so bgu.go and efficient.go's fits(i,j)/fix(i,j) tables
// (top-down and bottom-up respectively, per spec.md §4.2(c)/(d)) share one
// definition of block-placement feasibility.
type lineDims struct {
	clue  clue.Clue
	cells []cell.Mask
	n     int
	k     int
}

func newLineDims(c clue.Clue, cells []cell.Mask) lineDims {
	return lineDims{clue: c, cells: cells, n: len(cells), k: len(c.Blocks)}
}

// blockEndsAt reports whether block j can end exactly at position i: its fixed
// size pins the start position deterministically, so this is O(size_j).
func (d lineDims) blockEndsAt(i, j int) (start int, ok bool) {
	b := d.clue.Blocks[j]
	size := b.Size.Value()
	start = i - size + 1
	if start < 0 {
		return 0, false
	}
	for p := start; p <= i; p++ {
		if !d.cells[p].Contains(b.Color) {
			return 0, false
		}
	}
	return start, true
}

// suffixSpaceOK reports whether cells[from:] are all compatible with Space.
// from == len(cells) is the trivially-true empty suffix.
func suffixSpaceOK(cells []cell.Mask, from int) bool {
	for i := from; i < len(cells); i++ {
		if !cells[i].Contains(cell.Space) {
			return false
		}
	}
	return true
}

// reverseClue returns c with its blocks in reverse order, same sizes and
// colors. Packing reverseClue(c) into reverseCells(cells) is equivalent to
// packing c into cells read back to front — the mirror-image problem that
// bgu.go and efficient.go solve to get a backward fits table alongside
// their forward one.
func reverseClue(c clue.Clue) clue.Clue {
	blocks := make([]clue.Block, len(c.Blocks))
	for i, b := range c.Blocks {
		blocks[len(blocks)-1-i] = b
	}
	rc, _ := clue.New(blocks)
	return rc
}

// reverseCells returns cells in reverse order.
func reverseCells(cells []cell.Mask) []cell.Mask {
	out := make([]cell.Mask, len(cells))
	for i, m := range cells {
		out[len(out)-1-i] = m
	}
	return out
}

// fitsTable is satisfied by bguMemo's top-down fits(i,j) and by
// efficientFits' bottom-up fix(i,j) array, letting paintFromDP drive
// painting identically from either representation.
type fitsTable interface {
	fits(i, j int) bool
}

// paintFromDP derives the tight painted line directly from a forward
// fits(i,j) table (blocks[0..j] pack into cells[0..i]) and the same table
// computed over the reversed line, rather than delegating to the automaton
// pass: a cell admits a block's color iff some placement of that block —
// consistent with both the forward prefix and the backward suffix — covers
// it, and admits Space iff some split between consecutive blocks leaves it
// uncovered. Shared by bguSolver and efficientSolver, whose tables differ
// only in how fits(i,j) is computed (top-down memo vs. bottom-up array).
func paintFromDP(c clue.Clue, in Line, fwd, bwd fitsTable) (Line, error) {
	cells := in.Cells
	n := len(cells)
	k := len(c.Blocks)
	dims := newLineDims(c, cells)

	// prefixBlockOK/suffixBlockOK gate a candidate placement of block j
	// itself: they check the single mandatory gap cell adjoining it (if
	// any) explicitly, since that cell falls outside the window the fits
	// table was asked about.
	prefixBlockOK := func(j, start int) bool {
		if j == 0 {
			return prefixSpaceOK(cells, start-1)
		}
		gap := requiredGap(c, j)
		boundary := start - 1 - gap
		if gap == 1 && !(boundary+1 >= 0 && cells[boundary+1].Contains(cell.Space)) {
			return false
		}
		return fwd.fits(boundary, j-1)
	}
	suffixBlockOK := func(j, end int) bool {
		if j == k-1 {
			return suffixSpaceOK(cells, end+1)
		}
		gap := requiredGap(c, j+1)
		if gap == 1 && !(end+1 < n && cells[end+1].Contains(cell.Space)) {
			return false
		}
		from := end + 1 + gap
		return bwd.fits(n-1-from, k-1-(j+1))
	}
	// prefixPlainOK/suffixPlainOK gate a candidate Space at some position:
	// no adjoining block starts there, so no gap cell needs checking.
	prefixPlainOK := func(j, p int) bool {
		if j == 0 {
			return prefixSpaceOK(cells, p-1)
		}
		return fwd.fits(p-1, j-1)
	}
	suffixPlainOK := func(j, from int) bool {
		if j == k {
			return suffixSpaceOK(cells, from)
		}
		return bwd.fits(n-1-from, k-1-j)
	}

	painted := make([]cell.Mask, n)
	for j, b := range c.Blocks {
		size := b.Size.Value()
		for end := size - 1; end < n; end++ {
			start, ok := dims.blockEndsAt(end, j)
			if !ok {
				continue
			}
			if !prefixBlockOK(j, start) || !suffixBlockOK(j, end) {
				continue
			}
			for p := start; p <= end; p++ {
				painted[p] |= b.Color
			}
		}
	}

	for p := 0; p < n; p++ {
		if !cells[p].Contains(cell.Space) {
			continue
		}
		for j := 0; j <= k; j++ {
			if prefixPlainOK(j, p) && suffixPlainOK(j, p+1) {
				painted[p] |= cell.Space
				break
			}
		}
	}

	for _, m := range painted {
		if m == 0 {
			return Line{}, contradiction(c, in)
		}
	}

	out := in.Clone()
	out.Clue = c
	out.Cells = painted
	return out, nil
}
