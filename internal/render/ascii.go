// Package render draws a board to a terminal, grounded on the teacher's
// puzzle.Printer box-drawing layout and fatih/color usage.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

const (
	edge = "│"
)

var (
	unsolvedColor = color.New(color.FgHiBlack)
	clueColor     = color.New(color.Bold, color.FgHiWhite)
)

// ASCII draws b's grid to w: one character cell per board cell, solved
// cells shown as their color's glyph in its RGB (or, for the mono
// palette, plain bold), unsolved cells shown as a dim candidate count.
// Row and column clues are printed alongside the grid as their
// block-size sequence.
func ASCII(w io.Writer, b *board.Board) {
	printColumnClues(w, b)
	printBorder(w, b.Width)

	for i := 0; i < b.Height; i++ {
		printRowClue(w, b, b.RowClues[i])
		fmt.Fprint(w, edge)
		for j := 0; j < b.Width; j++ {
			printCell(w, b, i, j)
			fmt.Fprint(w, edge)
		}
		fmt.Fprintln(w)
	}
	printBorder(w, b.Width)
}

func printCell(w io.Writer, b *board.Board, row, col int) {
	m := b.Cell(row, col)
	if !m.IsSolved() {
		unsolvedColor.Fprintf(w, "%2d", m.Count())
		return
	}

	colorInfo, _ := b.Palette.ByMask(m)
	if m == cell.Space {
		fmt.Fprint(w, "  ")
		return
	}

	glyph := string(colorInfo.Glyph)
	if glyph == "" {
		glyph = "#"
	}
	rgb := colorInfo.RGB
	if rgb == [3]uint8{} {
		color.New(color.Bold).Fprintf(w, " %s", glyph)
		return
	}
	color.RGB(int(rgb[0]), int(rgb[1]), int(rgb[2])).Fprintf(w, " %s", glyph)
}

func printBorder(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("──", width+1))
}

func printRowClue(w io.Writer, b *board.Board, c clue.Clue) {
	clueColor.Fprintf(w, "%-12s", c.String(symbolOf(b)))
}

func printColumnClues(w io.Writer, b *board.Board) {
	clueColor.Fprint(w, "            ")
	for j := 0; j < b.Width; j++ {
		clueColor.Fprintf(w, "%2s", shortClue(b.ColClues[j], symbolOf(b)))
	}
	fmt.Fprintln(w)
}

func symbolOf(b *board.Board) func(cell.Mask) byte {
	return func(m cell.Mask) byte {
		c, ok := b.Palette.ByMask(m)
		if !ok {
			return 0
		}
		return c.Symbol
	}
}

func shortClue(c clue.Clue, sym func(cell.Mask) byte) string {
	s := c.String(sym)
	if len(s) > 2 {
		return s[:2]
	}
	return s
}
