package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

func fixedClue(t *testing.T, sizes ...int) clue.Clue {
	t.Helper()
	blocks := make([]clue.Block, len(sizes))
	for i, n := range sizes {
		blocks[i] = clue.Block{Size: clue.Fixed(n), Color: cell.Box}
	}
	c, err := clue.New(blocks)
	require.NoError(t, err)
	return c
}

func TestNewRejectsDescriptionThatDoesNotFit(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 5)}
	cols := []clue.Clue{fixedClue(t, 1)}

	_, err := New(rows, cols, p)
	var de *clue.DescriptionError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "row", de.Axis)
}

func TestNewRejectsColorSumMismatch(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1), fixedClue(t, 2)}

	_, err := New(rows, cols, p)
	require.ErrorIs(t, err, clue.ErrSumMismatch)
}

func TestNewEveryCellStartsFull(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}

	b, err := New(rows, cols, p)
	require.NoError(t, err)
	for i := 0; i < b.Height; i++ {
		for j := 0; j < b.Width; j++ {
			require.Equal(t, p.Full(), b.Cell(i, j))
		}
	}
}

func TestSetRowFiresHookOnlyWhenChanged(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 2)}
	cols := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}
	b, err := New(rows, cols, p)
	require.NoError(t, err)

	fired := 0
	b.OnRowUpdate = func(int) { fired++ }

	unchanged := b.Row(0)
	changed := b.SetRow(0, unchanged)
	require.Empty(t, changed)
	require.Equal(t, 0, fired)

	narrowed := unchanged.Clone()
	narrowed.Cells[0] = cell.Box
	changed = b.SetRow(0, narrowed)
	require.Equal(t, []int{0}, changed)
	require.Equal(t, 1, fired)
}

func TestIsSolvedAndSolutionRate(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1), fixedClue(t, 1)}
	b, err := New(rows, cols, p)
	require.NoError(t, err)

	require.False(t, b.IsSolved())
	require.Equal(t, 0.0, b.SolutionRate())

	b.SetCell(0, 0, cell.Box)
	require.InDelta(t, 0.25, b.SolutionRate(), 1e-9)
}

func TestSnapshotRestore(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1)}
	b, err := New(rows, cols, p)
	require.NoError(t, err)

	snap := b.Snapshot()
	b.SetCell(0, 0, cell.Box)
	require.Equal(t, cell.Box, b.Cell(0, 0))

	b.Restore(snap)
	require.Equal(t, p.Full(), b.Cell(0, 0))
}

func TestWithSnapshotRestoresOnError(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1)}
	b, err := New(rows, cols, p)
	require.NoError(t, err)

	before := b.Cell(0, 0)
	err = WithSnapshot(b, func() error {
		b.SetCell(0, 0, cell.Box)
		return errFake
	})
	require.ErrorIs(t, err, errFake)
	require.Equal(t, before, b.Cell(0, 0))
}

var errFake = fakeErr{}

type fakeErr struct{}

func (fakeErr) Error() string { return "fake" }

func TestAddSolutionDeduplicates(t *testing.T) {
	p := cell.NewMonoPalette()
	rows := []clue.Clue{fixedClue(t, 1)}
	cols := []clue.Clue{fixedClue(t, 1)}
	b, err := New(rows, cols, p)
	require.NoError(t, err)
	b.SetCell(0, 0, cell.Box)

	found := 0
	b.OnSolutionFound = func(Solution) { found++ }

	require.True(t, b.AddSolution())
	require.True(t, b.IsSolved())
	require.False(t, b.AddSolution(), "identical solution must be deduplicated")
	require.Len(t, b.Solutions(), 1)
	require.Equal(t, 1, found)
}
