package board

import "github.com/kpitt/nonogram/internal/cell"

// Snapshot is an opaque save point for speculative search (spec.md §3
// "Snapshots support save/restore for speculative search").
type Snapshot struct {
	cells [][]cell.Mask
}

// Snapshot captures the current grid state.
func (b *Board) Snapshot() Snapshot {
	cells := make([][]cell.Mask, b.Height)
	for i := range cells {
		cells[i] = make([]cell.Mask, b.Width)
		copy(cells[i], b.cells[i])
	}
	return Snapshot{cells: cells}
}

// Restore overwrites the current grid with a previously captured Snapshot.
func (b *Board) Restore(s Snapshot) {
	for i := range b.cells {
		copy(b.cells[i], s.cells[i])
	}
}

// WithSnapshot runs fn with the board snapshotted, unconditionally restoring
// the snapshot on every exit path before returning — spec.md §5's "scoped
// resource" discipline for speculative blocks ("the driver takes a
// snapshot, runs work that may raise, and on any exit ... restores the
// snapshot before returning to the parent frame"). fn's error, if any, is
// returned unchanged.
func WithSnapshot(b *Board, fn func() error) error {
	snap := b.Snapshot()
	defer b.Restore(snap)
	return fn()
}
