// Package search drives a board to its solution set: root propagation,
// root probing, and depth-first search with logical learning, per spec.md
// §4.4-§4.5.
package search

import (
	"context"
	"time"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/line"
	"github.com/kpitt/nonogram/internal/propagate"
)

// Options configures one Search call. A zero Options runs with no solution
// cap, no timeout, the default DFS depth ceiling of 400, and the default
// line-solver chain.
type Options struct {
	MaxSolutions int
	Timeout      time.Duration
	MaxDepth     int
	Methods      []line.Method
	Context      context.Context
}

func (o Options) methods() []line.Method {
	if len(o.Methods) > 0 {
		return o.Methods
	}
	return []line.Method{line.PartialMatch, line.ReverseTracking}
}

// Result reports what Search found.
type Result struct {
	Solutions    []board.Solution
	SolutionRate float64
	Limited      bool // a timeout or depth ceiling cut the search short
}

// Search solves b in place, per spec.md §4.4-§4.5:
//
//  1. Propagate to a fixed point. A contradiction here means the puzzle was
//     already infeasible before any guess was made: ErrUnsolvable.
//  2. Probe every ambiguous cell. A contradiction here is likewise a
//     root-level failure: ErrUnsolvable.
//  3. If still unsolved, fall back to DFS with logical learning. DFS itself
//     never raises a contradiction to this level — a branch simply fails
//     and the walk backtracks.
//
// Apart from the root-level failures of steps 1 and 2, Search returns
// ErrUnsolvable only when the DFS walk recorded no solution and no limit
// (timeout or depth) cut it short.
func Search(b *board.Board, opts Options) (Result, error) {
	methods := opts.methods()

	if err := propagate.Run(b, propagate.Options{Methods: methods, ContradictionMode: true}); err != nil {
		return Result{}, ErrUnsolvable
	}
	if b.IsSolved() {
		b.AddSolution()
		return resultOf(b, false), nil
	}

	pr := newProber(b, methods)
	if err := pr.run(); err != nil {
		return Result{}, ErrUnsolvable
	}
	if b.IsSolved() {
		b.AddSolution()
		return resultOf(b, false), nil
	}

	d := newDFS(b, opts, pr)
	d.run()

	if len(b.Solutions()) == 0 && !d.limited() {
		return Result{}, ErrUnsolvable
	}
	return resultOf(b, d.limited()), nil
}

func resultOf(b *board.Board, limited bool) Result {
	return Result{
		Solutions:    b.Solutions(),
		SolutionRate: b.SolutionRate(),
		Limited:      limited,
	}
}
