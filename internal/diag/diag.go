// Package diag prints solver progress, grounded on the teacher's
// solver/print.go color.Yellow conventions. Its functions are wired as a
// board's observer hooks (spec.md §6) by collaborators that want visible
// progress; cmd/nonogram wires them via Wire when run with -v.
package diag

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/kpitt/nonogram/internal/board"
)

func Progress(format string, a ...any) {
	color.Yellow(format, a...)
}

// RowUpdate reports a row whose candidates narrowed.
func RowUpdate(i int) {
	Progress("row %d updated", i)
}

// ColumnUpdate reports a column whose candidates narrowed.
func ColumnUpdate(j int) {
	Progress("column %d updated", j)
}

// RoundComplete reports a propagation pass reaching its fixed point.
func RoundComplete() {
	Progress("propagation round complete")
}

// SolutionFound reports a newly recorded solution.
func SolutionFound(board.Solution) {
	fmt.Fprintln(os.Stderr, "solution found")
}

// Wire attaches RowUpdate/ColumnUpdate/RoundComplete/SolutionFound to b's
// observer hooks, preserving whatever hooks b already had.
func Wire(b *board.Board) {
	prevRow, prevCol := b.OnRowUpdate, b.OnColumnUpdate
	prevRound, prevSolution := b.OnRoundComplete, b.OnSolutionFound

	b.OnRowUpdate = func(i int) {
		RowUpdate(i)
		if prevRow != nil {
			prevRow(i)
		}
	}
	b.OnColumnUpdate = func(j int) {
		ColumnUpdate(j)
		if prevCol != nil {
			prevCol(j)
		}
	}
	b.OnRoundComplete = func() {
		RoundComplete()
		if prevRound != nil {
			prevRound()
		}
	}
	b.OnSolutionFound = func(s board.Solution) {
		SolutionFound(s)
		if prevSolution != nil {
			prevSolution(s)
		}
	}
}
