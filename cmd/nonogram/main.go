package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/diag"
	"github.com/kpitt/nonogram/internal/reader"
	"github.com/kpitt/nonogram/internal/render"
	"github.com/kpitt/nonogram/internal/search"
)

func main() {
	verbose := hasFlag("-v")
	b, err := loadBoard(nonFlagArg())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		diag.Wire(b)
	}

	result, err := search.Search(b, search.Options{Timeout: 30 * time.Second})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(result.Solutions) == 0 {
		color.HiWhite("\nNo solution found:")
	} else if len(result.Solutions) == 1 && b.IsSolved() {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\n%d solutions found:", len(result.Solutions))
	}
	render.ASCII(os.Stdout, b)

	if !b.IsSolved() {
		fmt.Printf("\n%s %.1f%%\n", color.HiWhiteString("Solved:"), result.SolutionRate*100)
		if result.Limited {
			fmt.Println(color.HiYellowString("search limit reached before exhausting the puzzle"))
		}
	}
}

func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		if isStdinTTY() {
			fmt.Println("Enter the board as an INI-style [clues] file.")
			fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
		}
		return reader.FromINI(os.Stdin)
	}
	if strings.HasSuffix(path, ".xml") || strings.HasSuffix(path, ".pbn") {
		return reader.FromPBNFile(path)
	}
	return reader.FromINIFile(path)
}

func hasFlag(name string) bool {
	for _, a := range os.Args[1:] {
		if a == name {
			return true
		}
	}
	return false
}

func nonFlagArg() string {
	for _, a := range os.Args[1:] {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
