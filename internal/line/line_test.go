package line

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

var allMethods = []Method{
	PartialMatch, ReverseTracking, ReverseTrackingColor,
	Simpson, BGU, BGUColor, Efficient, EfficientColor,
}

func mustClue(t *testing.T, sizes ...int) clue.Clue {
	t.Helper()
	blocks := make([]clue.Block, len(sizes))
	for i, n := range sizes {
		blocks[i] = clue.Block{Size: clue.Fixed(n), Color: cell.Box}
	}
	c, err := clue.New(blocks)
	require.NoError(t, err)
	return c
}

// fromChars builds a Line from '-' (space), '#' (box), and ' ' (unknown).
func fromChars(c clue.Clue, s string) Line {
	unknown := cell.Space | cell.Box
	cells := make([]cell.Mask, len(s))
	for i, ch := range s {
		switch ch {
		case '-':
			cells[i] = cell.Space
		case '#':
			cells[i] = cell.Box
		default:
			cells[i] = unknown
		}
	}
	return Line{Clue: c, Cells: cells}
}

// TestLineSolverCase24CellsAllAlgorithms is the line-solver end-to-end
// scenario: every complete solver must agree on the same fully refined
// output.
func TestLineSolverCase24CellsAllAlgorithms(t *testing.T) {
	c := mustClue(t, 1, 1, 5)
	in := fromChars(c, "---#--         -      # ")

	expected := make([]cell.Mask, 24)
	for i := range expected {
		expected[i] = cell.Space | cell.Box
	}
	for _, i := range []int{0, 1, 2, 4, 5, 15} {
		expected[i] = cell.Space
	}
	expected[3] = cell.Box
	for _, i := range []int{19, 20, 21, 22} {
		expected[i] = cell.Box
	}

	complete := []Method{PartialMatch, ReverseTracking, BGU, Efficient}
	for _, m := range complete {
		out, err := Solve(m, c, in)
		require.NoError(t, err, "method %s", m)
		require.Equal(t, expected, out.Cells, "method %s", m)
	}
}

// TestLineSolverContradiction mirrors spec.md §8 scenario 3's shape: a
// forced cell that cannot be reconciled with any placement of the
// description's blocks.
func TestLineSolverContradiction(t *testing.T) {
	c := mustClue(t, 3)
	in := fromChars(c, "#- ..")
	_, err := Solve(ReverseTracking, c, in)
	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	require.ErrorIs(t, err, ErrNoCompletion)
}

func TestBlottedAllUnknownStaysUnknown(t *testing.T) {
	c, err := clue.New([]clue.Block{{Size: clue.Blotted(), Color: cell.Box}})
	require.NoError(t, err)

	unknown := cell.Space | cell.Box
	in := Line{Clue: c, Cells: []cell.Mask{unknown, unknown, unknown, unknown, unknown}}

	out, err := Solve(ReverseTracking, c, in)
	require.NoError(t, err)
	for _, m := range out.Cells {
		require.Equal(t, unknown, m)
	}
}

func TestMonotonicityNeverWidens(t *testing.T) {
	c := mustClue(t, 2, 3)
	in := fromChars(c, "    ##      ")

	for _, m := range allMethods {
		out, err := Solve(m, c, in)
		require.NoError(t, err)
		require.True(t, out.IsSubsetOf(in), "method %s widened the line", m)
	}
}

func TestIdempotence(t *testing.T) {
	c := mustClue(t, 2, 3)
	in := fromChars(c, "    ##      ")

	once, err := Solve(ReverseTracking, c, in)
	require.NoError(t, err)
	twice, err := Solve(ReverseTracking, c, once)
	require.NoError(t, err)
	require.Equal(t, once.Cells, twice.Cells)
}

func TestContradictionStability(t *testing.T) {
	c := mustClue(t, 3)
	in := fromChars(c, "#- ..")
	_, err := Solve(ReverseTracking, c, in)
	require.Error(t, err)

	narrower := in.Clone()
	narrower.Cells[3] = cell.Space // refines "." at index 3 to a concrete space
	_, err = Solve(ReverseTracking, c, narrower)
	require.Error(t, err, "a refinement of a contradictory line must still contradict")
}

func TestCacheReturnsSameResultOnRepeatedCalls(t *testing.T) {
	c := mustClue(t, 2)
	in := fromChars(c, "    ")

	first, err := Solve(Simpson, c, in)
	require.NoError(t, err)
	second, err := Solve(Simpson, c, in)
	require.NoError(t, err)
	require.Equal(t, first.Cells, second.Cells)
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "partial_match", PartialMatch.String())
	require.Equal(t, "efficient_color", EfficientColor.String())
}
