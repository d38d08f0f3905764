package search

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/set"
)

type commitment struct {
	row, col int
	color    cell.Mask
}

// dfs implements spec.md §4.4.2: depth-first search on top of probing,
// picking the most-promising (cell, color) pair at each node, grounded on
// the cover/recurse/uncover shape of the teacher's Dancing Links search
// (see DESIGN.md) but scored instead of chosen by minimum-remaining-values.
type dfs struct {
	b  *board.Board
	pr *prober

	ctx          context.Context
	maxSolutions int
	depthLimit   int
	hasDeadline  bool
	deadline     time.Time

	path     []commitment
	explored *set.Set[string]

	timedOut bool
	depthHit bool
}

func newDFS(b *board.Board, opts Options, pr *prober) *dfs {
	depthLimit := opts.MaxDepth
	if depthLimit <= 0 {
		depthLimit = 400
	}
	d := &dfs{
		b: b, pr: pr,
		ctx:          opts.Context,
		maxSolutions: opts.MaxSolutions,
		depthLimit:   depthLimit,
		explored:     set.NewSet[string](),
	}
	if opts.Timeout > 0 {
		d.hasDeadline = true
		d.deadline = time.Now().Add(opts.Timeout)
	}
	return d
}

// limited reports whether a termination limit (rather than plain
// exhaustion) ended the search.
func (d *dfs) limited() bool {
	return d.timedOut || d.depthHit
}

func (d *dfs) checkTimeout() bool {
	if d.timedOut {
		return true
	}
	if d.hasDeadline && time.Now().After(d.deadline) {
		d.timedOut = true
		return true
	}
	if d.ctx != nil && d.ctx.Err() != nil {
		d.timedOut = true
		return true
	}
	return false
}

func (d *dfs) solutionsCapped() bool {
	return d.maxSolutions > 0 && len(d.b.Solutions()) >= d.maxSolutions
}

func (d *dfs) run() {
	d.step()
}

// step is one node of the DFS walk (spec.md §4.4.2).
func (d *dfs) step() {
	if d.checkTimeout() || d.solutionsCapped() {
		return
	}
	if len(d.path) >= d.depthLimit {
		d.depthHit = true
		return
	}
	if d.b.IsSolved() {
		d.b.AddSolution()
		return
	}

	row, col, ok := d.pickCell()
	if !ok {
		return
	}

	for _, c := range d.rankedColors(row, col) {
		if d.checkTimeout() || d.solutionsCapped() {
			return
		}
		if !d.b.Cell(row, col).Contains(c) {
			continue // already eliminated by logical learning from a sibling
		}

		candidatePath := append(append([]commitment{}, d.path...), commitment{row, col, c})
		key := pathKey(candidatePath)
		if d.explored.Contains(key) {
			continue
		}
		d.explored.Add(key)

		contradicted := false
		_ = board.WithSnapshot(d.b, func() error {
			d.b.SetCell(row, col, c)
			d.path = candidatePath
			if err := d.pr.run(); err != nil {
				contradicted = true
			} else {
				d.step()
			}
			d.path = d.path[:len(d.path)-1]
			return nil
		})

		if contradicted {
			// Logical learning (spec.md §4.4.2): a child failure strengthens
			// the parent by permanently removing the color that caused it.
			narrowed, uerr := cell.Unset(d.b.Cell(row, col), c)
			if uerr != nil {
				return // (row, col) has no candidates left: dead end here
			}
			d.b.SetCell(row, col, narrowed)
			if err := d.pr.run(); err != nil {
				return // the narrowing alone makes this context infeasible
			}
		}
	}
}

// pickCell selects the unsolved cell whose best candidate score is highest
// across the whole board.
func (d *dfs) pickCell() (row, col int, ok bool) {
	best := math.Inf(-1)
	for i := 0; i < d.b.Height; i++ {
		for j := 0; j < d.b.Width; j++ {
			m := d.b.Cell(i, j)
			if m.IsSolved() {
				continue
			}
			for _, c := range m.Members() {
				if s := d.score(i, j, c); s > best {
					best, row, col, ok = s, i, j, true
				}
			}
		}
	}
	return row, col, ok
}

// rankedColors orders a cell's remaining candidates by descending score, so
// the DFS walk tries its best guess first.
func (d *dfs) rankedColors(row, col int) []cell.Mask {
	members := d.b.Cell(row, col).Members()
	sort.Slice(members, func(i, j int) bool {
		return d.score(row, col, members[i]) > d.score(row, col, members[j])
	})
	return members
}

// score implements spec.md §4.4.2: score(P, c) = cells_solved_by_assuming(P
// = c) + bias_for_adjustment. cells_solved_by_assuming comes from the last
// probe's recorded rate; bias favors cells with few remaining candidates
// (few-colors-first) and cells in already well-progressed rows/columns.
func (d *dfs) score(row, col int, c cell.Mask) float64 {
	rate := d.pr.rates[probeKey{row, col, c}]
	fewColorsFirst := 1.0 / float64(d.b.Cell(row, col).Count())
	bias := fewColorsFirst + lineSolvedRate(d.b, row, true) + lineSolvedRate(d.b, col, false)
	return float64(rate) + bias
}

// pathKey canonicalizes a set of (cell, color) commitments, order
// independent, so permutations of the same commitment set are recognized
// as already explored (spec.md §4.4.2).
func pathKey(path []commitment) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = strconv.Itoa(c.row) + "," + strconv.Itoa(c.col) + "," + strconv.Itoa(int(c.color))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
