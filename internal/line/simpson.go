package line

import (
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// simpsonSolver implements spec.md §4.2(e): the two extremal (leftmost,
// rightmost) placements of all blocks consistent with the current
// candidates. Where a block's leftmost and rightmost placement ranges
// overlap, that overlap is forced box of the block's color; cells outside
// every block's [leftmost, rightmost] span are forced space.
//
// Fast but incomplete — sound, not necessarily tight (spec.md §8 exempts
// Simpson from the tightness property). Meant to be chained before a
// complete solver, never substituted for one (spec.md §9 Open Questions).
type simpsonSolver struct{}

func (simpsonSolver) solveConcrete(c clue.Clue, in Line) (Line, error) {
	n := in.Len()

	left, ok := placeLeftmost(c, in.Cells)
	if !ok {
		return Line{}, contradiction(c, in)
	}
	right, ok := placeRightmost(c, in.Cells)
	if !ok {
		return Line{}, contradiction(c, in)
	}

	out := in.Clone()
	out.Clue = c

	covered := make([]bool, n) // covered by some block's [leftmost, rightmost] span
	for i, b := range c.Blocks {
		size := b.Size.Value()
		loStart, hiStart := left[i], right[i]
		for j := loStart; j < hiStart+size; j++ {
			covered[j] = true
		}
		// Overlap between the leftmost and rightmost placement of this
		// block is forced to be box of its color in every valid completion.
		overlapStart, overlapEnd := hiStart, loStart+size
		for j := overlapStart; j < overlapEnd; j++ {
			out.Cells[j] &= b.Color
		}
	}
	for j := 0; j < n; j++ {
		if !covered[j] {
			out.Cells[j] &= cell.Space
		}
	}

	for _, m := range out.Cells {
		if m == 0 {
			return Line{}, contradiction(c, in)
		}
	}
	return out, nil
}

// placeLeftmost returns, for each block, the leftmost start position
// consistent with candidates, in increasing order with the mandatory gap
// between same-colored consecutive blocks.
func placeLeftmost(c clue.Clue, cells []cell.Mask) ([]int, bool) {
	n := len(cells)
	starts := make([]int, len(c.Blocks))
	pos := 0
	for i, b := range c.Blocks {
		if i > 0 {
			gap := 0
			if c.Blocks[i-1].Color == b.Color {
				gap = 1
			}
			pos = starts[i-1] + c.Blocks[i-1].Size.Value() + gap
		}
		size := b.Size.Value()
		for {
			if pos+size > n {
				return nil, false
			}
			if fits(cells, pos, size, b.Color) {
				break
			}
			pos++
		}
		starts[i] = pos
		pos += size
	}
	return starts, true
}

// placeRightmost is the mirror image of placeLeftmost, scanning from the
// end of the line backward.
func placeRightmost(c clue.Clue, cells []cell.Mask) ([]int, bool) {
	n := len(cells)
	starts := make([]int, len(c.Blocks))
	pos := n // exclusive end bound for the current block
	for i := len(c.Blocks) - 1; i >= 0; i-- {
		b := c.Blocks[i]
		if i < len(c.Blocks)-1 {
			gap := 0
			if c.Blocks[i+1].Color == b.Color {
				gap = 1
			}
			pos = starts[i+1] - gap
		}
		size := b.Size.Value()
		end := pos
		for {
			start := end - size
			if start < 0 {
				return nil, false
			}
			if fits(cells, start, size, b.Color) {
				starts[i] = start
				pos = start
				break
			}
			end--
		}
	}
	return starts, true
}

func fits(cells []cell.Mask, start, size int, color cell.Mask) bool {
	for k := 0; k < size; k++ {
		if !cells[start+k].Contains(color) {
			return false
		}
	}
	return true
}
