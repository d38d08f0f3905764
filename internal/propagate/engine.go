// Package propagate schedules line-solving across a board's rows and
// columns to a fixed point, per spec.md §4.3.
package propagate

import (
	"fmt"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/line"
)

// Options configures one Run call. Rows/Columns restrict the initial seed
// to a subset of indexes (spec.md §4.3: "the driver may pass a subset...
// used to localize work after a single-cell change"); nil means every
// index. Methods chains several algorithms, each run to a fixed point
// before the next starts (spec.md §6: "chaining a fast incomplete pass
// before a complete one is encouraged"); a nil/empty Methods defaults to
// the tight reverse-tracking solver alone.
type Options struct {
	Rows              []int
	Columns           []int
	ContradictionMode bool
	Methods           []line.Method
}

// Run drives propagation to a fixed point for every method in opts.Methods,
// in order. It returns the line solver's contradiction, wrapped with the
// axis/index that produced it, the first time one occurs.
func Run(b *board.Board, opts Options) error {
	methods := opts.Methods
	if len(methods) == 0 {
		methods = []line.Method{line.ReverseTracking}
	}

	for _, m := range methods {
		if err := runMethod(b, m, opts); err != nil {
			return err
		}
	}
	return nil
}

func runMethod(b *board.Board, method line.Method, opts Options) error {
	q := newQueue()
	seed(q, b, opts)

	for {
		j, ok := q.dequeue()
		if !ok {
			if b.OnRoundComplete != nil {
				b.OnRoundComplete()
			}
			return nil
		}
		if err := processJob(b, q, j, method, opts.ContradictionMode); err != nil {
			return err
		}
	}
}

func seed(q *queue, b *board.Board, opts Options) {
	rows := opts.Rows
	if rows == nil {
		rows = allIndexes(b.Height)
	}
	cols := opts.Columns
	if cols == nil {
		cols = allIndexes(b.Width)
	}
	for _, i := range rows {
		q.enqueue(jobKey{Row, i}, 0)
	}
	for _, j := range cols {
		q.enqueue(jobKey{Column, j}, 0)
	}
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// processJob implements spec.md §4.3 steps 2-4 for one popped job.
func processJob(b *board.Board, q *queue, j *job, method line.Method, contradictionMode bool) error {
	var current line.Line
	if j.key.axis == Row {
		current = b.Row(j.key.index)
	} else {
		current = b.Col(j.key.index)
	}

	if !contradictionMode && current.IsComplete() {
		// Trusted mode: a fully-solved line is skipped without revalidation.
		return nil
	}

	refined, err := line.Solve(method, current.Clue, current)
	if err != nil {
		return fmt.Errorf("propagate: %s %d: %w", axisName(j.key.axis), j.key.index, err)
	}

	var changed []int
	if j.key.axis == Row {
		changed = b.SetRow(j.key.index, refined)
	} else {
		changed = b.SetCol(j.key.index, refined)
	}

	childPriority := j.priority - 1
	for _, idx := range changed {
		cross := jobKey{axis: crossAxis(j.key.axis), index: idx}
		q.enqueue(cross, childPriority)
	}
	return nil
}

func crossAxis(a Axis) Axis {
	if a == Row {
		return Column
	}
	return Row
}

func axisName(a Axis) string {
	if a == Row {
		return "row"
	}
	return "column"
}
