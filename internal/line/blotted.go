package line

import "github.com/kpitt/nonogram/internal/clue"

// expandBlotted enumerates every concrete-size assignment for a clue's
// blotted blocks that fits within length, bounded by the line's slack, per
// spec.md §4.2(c): "enumerating all combinations of concrete sizes for the
// blotted blocks that fit the line's slack." This is factored out of the
// BGU solver (where spec.md places it) so every one of the five algorithms
// gets correct, uniform blotted-block support instead of re-implementing
// the same enumeration five times — see DESIGN.md.
//
// Each returned Clue has every block concrete; callers union the per-
// candidate results across all returned clues (and fail only if every
// combination is rejected).
func expandBlotted(c clue.Clue, length int) []clue.Clue {
	blottedIdx := make([]int, 0)
	for i, b := range c.Blocks {
		if b.Size.IsBlotted() {
			blottedIdx = append(blottedIdx, i)
		}
	}
	if len(blottedIdx) == 0 {
		return []clue.Clue{c}
	}

	// Slack available to distribute among blotted blocks: each blotted
	// block already contributes 1 to MinLength, so a blotted block's
	// concrete size ranges from 1 to 1+totalSlack, bounded further by not
	// exceeding what's left after every other blotted block takes its
	// minimum of 1.
	totalSlack := c.Slack(length)
	if totalSlack < 0 {
		return nil
	}

	var results []clue.Clue
	sizes := make([]int, len(blottedIdx))
	for i := range sizes {
		sizes[i] = 1
	}

	var assign func(pos int, remaining int)
	assign = func(pos int, remaining int) {
		if pos == len(blottedIdx) {
			blocks := make([]clue.Block, len(c.Blocks))
			copy(blocks, c.Blocks)
			for i, idx := range blottedIdx {
				blocks[idx] = clue.Block{Size: clue.Fixed(sizes[i]), Color: c.Blocks[idx].Color}
			}
			candidate, err := clue.New(blocks)
			if err == nil && candidate.Fits(length) {
				results = append(results, candidate)
			}
			return
		}
		for extra := 0; extra <= remaining; extra++ {
			sizes[pos] = 1 + extra
			assign(pos+1, remaining-extra)
		}
	}
	assign(0, totalSlack)

	return results
}
