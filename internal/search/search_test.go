package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
	"github.com/kpitt/nonogram/internal/line"
)

func monoClue(t *testing.T, sizes ...int) clue.Clue {
	t.Helper()
	blocks := make([]clue.Block, len(sizes))
	for i, n := range sizes {
		blocks[i] = clue.Block{Size: clue.Fixed(n), Color: cell.Box}
	}
	c, err := clue.New(blocks)
	require.NoError(t, err)
	return c
}

func monoClueSlice(t *testing.T, lines [][]int) []clue.Clue {
	t.Helper()
	out := make([]clue.Clue, len(lines))
	for i, sizes := range lines {
		out[i] = monoClue(t, sizes...)
	}
	return out
}

// validSolution asserts that a recorded solution matches its row and
// column descriptions exactly (spec.md §8 "solution validity").
func validSolution(t *testing.T, b *board.Board, s board.Solution) {
	t.Helper()
	for i := 0; i < b.Height; i++ {
		l := line.Line{Clue: b.RowClues[i], Cells: s.Cells[i]}
		out, err := line.Solve(line.ReverseTracking, l.Clue, l)
		require.NoError(t, err, "row %d is not a valid completion", i)
		require.Equal(t, l.Cells, out.Cells)
	}
	for j := 0; j < b.Width; j++ {
		col := make([]cell.Mask, b.Height)
		for i := range col {
			col[i] = s.Cells[i][j]
		}
		l := line.Line{Clue: b.ColClues[j], Cells: col}
		out, err := line.Solve(line.ReverseTracking, l.Clue, l)
		require.NoError(t, err, "column %d is not a valid completion", j)
		require.Equal(t, l.Cells, out.Cells)
	}
}

// TestSearchAmbiguousPuzzleFindsBothSolutions is spec.md §8 scenario 4:
// propagation alone cannot finish this puzzle, but unlimited search finds
// exactly its two distinct solutions.
func TestSearchAmbiguousPuzzleFindsBothSolutions(t *testing.T) {
	rowClues := monoClueSlice(t, [][]int{{1, 2}, {1}, {1}, {3}, {2}, {2}})
	colClues := monoClueSlice(t, [][]int{{3}, {1}, {2}, {2}, {1, 1}, {1, 1}})

	b, err := board.New(rowClues, colClues, cell.NewMonoPalette())
	require.NoError(t, err)

	result, err := Search(b, Options{})
	require.NoError(t, err)
	require.Len(t, result.Solutions, 2)
	require.False(t, result.Solutions[0].Equal(result.Solutions[1]))

	for _, s := range result.Solutions {
		validSolution(t, b, s)
	}
}

// TestSearchColoredPuzzleUniqueSolution is spec.md §8 scenario 5: a small
// colored puzzle with a single, exactly determined solution.
func TestSearchColoredPuzzleUniqueSolution(t *testing.T) {
	p, err := cell.NewPalette([]string{"red", "blue"},
		map[string][3]uint8{"red": {255, 0, 0}, "blue": {0, 0, 255}},
		map[string]byte{"red": 'r', "blue": 'b'})
	require.NoError(t, err)

	red, _ := p.ByName("red")
	blue, _ := p.ByName("blue")

	colBlocks := []clue.Block{{Size: clue.Fixed(1), Color: red.ID}, {Size: clue.Fixed(1), Color: blue.ID}}
	colClue, err := clue.New(colBlocks)
	require.NoError(t, err)
	colClues := []clue.Clue{colClue, colClue, colClue}

	row0, err := clue.New([]clue.Block{{Size: clue.Fixed(3), Color: red.ID}})
	require.NoError(t, err)
	row1, err := clue.New(nil)
	require.NoError(t, err)
	row2, err := clue.New([]clue.Block{{Size: clue.Fixed(3), Color: blue.ID}})
	require.NoError(t, err)
	rowClues := []clue.Clue{row0, row1, row2}

	b, err := board.New(rowClues, colClues, p)
	require.NoError(t, err)

	result, err := Search(b, Options{})
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
	require.Equal(t, 1.0, result.SolutionRate)

	sol := result.Solutions[0]
	for j := 0; j < b.Width; j++ {
		require.Equal(t, red.ID, sol.Cells[0][j])
		require.Equal(t, cell.Space, sol.Cells[1][j])
		require.Equal(t, blue.ID, sol.Cells[2][j])
	}
}

func TestSearchAlreadySolvedBoardNeedsNoGuessing(t *testing.T) {
	rowClues := monoClueSlice(t, [][]int{{1}})
	colClues := monoClueSlice(t, [][]int{{1}})
	b, err := board.New(rowClues, colClues, cell.NewMonoPalette())
	require.NoError(t, err)

	result, err := Search(b, Options{})
	require.NoError(t, err)
	require.Len(t, result.Solutions, 1)
	require.False(t, result.Limited)
}

func TestSearchUnsolvablePuzzle(t *testing.T) {
	// A 2x3 board whose row/column box totals balance (4 = 4) but whose
	// lines can't be co-satisfied: row 0's full-row clue forces every cell
	// of row 0 to box, including column 2, which column 2's empty clue
	// forces to space.
	rowClues := []clue.Clue{monoClue(t, 3), monoClue(t, 1)}
	colClues := []clue.Clue{monoClue(t, 2), monoClue(t, 2), mustEmptyClue(t)}
	b, err := board.New(rowClues, colClues, cell.NewMonoPalette())
	require.NoError(t, err)

	_, err = Search(b, Options{})
	require.ErrorIs(t, err, ErrUnsolvable)
}

func mustEmptyClue(t *testing.T) clue.Clue {
	t.Helper()
	c, err := clue.New(nil)
	require.NoError(t, err)
	return c
}
