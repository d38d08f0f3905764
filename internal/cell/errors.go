package cell

import "errors"

// Sentinel errors for the cell algebra. Grounded on the sentinel-error block
// style used throughout the retrieved pack (e.g. katalvlaran-lvlath/tsp's
// types.go): one exported var per failure mode, doc comment on each.
var (
	// ErrEmpty is returned when an operation would remove the last remaining
	// candidate from a cell — spec.md §4.1's "removing the last candidate
	// from a cell is a contradiction".
	ErrEmpty = errors.New("cell: candidate set would become empty")

	// ErrNotCandidate is returned when Set is asked to commit a color that
	// was not already present in the cell's candidate set.
	ErrNotCandidate = errors.New("cell: color is not a current candidate")

	// ErrPaletteTooLarge is returned when NewPalette is given more colors
	// than fit in the bitmask (30 non-space colors, leaving headroom in the
	// 32-bit mask).
	ErrPaletteTooLarge = errors.New("cell: palette exceeds maximum color count")

	// ErrDuplicateColorName is returned when NewPalette is given the same
	// color name twice.
	ErrDuplicateColorName = errors.New("cell: duplicate color name")
)

// Set commits color c as the unique remaining candidate of m. It fails with
// ErrNotCandidate if c was not already a candidate of m.
func Set(m Mask, c Mask) (Mask, error) {
	if !m.Contains(c) {
		return m, ErrNotCandidate
	}
	return c, nil
}

// Unset removes the colors in remove from m's candidate set, failing with
// ErrEmpty if doing so would leave no candidates.
func Unset(m Mask, remove Mask) (Mask, error) {
	narrowed := m &^ remove
	if narrowed == 0 {
		return m, ErrEmpty
	}
	return narrowed, nil
}
