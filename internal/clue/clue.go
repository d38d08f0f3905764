// Package clue models a block description: the ordered list of (size,
// color) pairs annotating one row or column, per spec.md §3.
package clue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kpitt/nonogram/internal/cell"
)

// Size is a sum type: either a concrete positive block length, or the
// "blotted" sentinel meaning the size itself is unknown. Representing this
// as a tagged struct (rather than a magic integer like 0 or -1) follows
// spec.md §9's "Blotted sizes" design note.
type Size struct {
	value   int
	blotted bool
}

// Fixed returns a concrete block size of n cells. n must be positive.
func Fixed(n int) Size { return Size{value: n} }

// Blotted returns the "size unknown" sentinel.
func Blotted() Size { return Size{blotted: true} }

// IsBlotted reports whether the size is unknown.
func (s Size) IsBlotted() bool { return s.blotted }

// Value returns the concrete size. It panics if called on a blotted size;
// callers must check IsBlotted first.
func (s Size) Value() int {
	if s.blotted {
		panic("clue: Value called on a blotted Size")
	}
	return s.value
}

func (s Size) String() string {
	if s.blotted {
		return "?"
	}
	return strconv.Itoa(s.value)
}

// Block is one (size, color) pair of a description. Color is never Space:
// spec.md §3 requires "color != space" for every block.
type Block struct {
	Size  Size
	Color cell.Mask
}

// Clue is the normalized, ordered sequence of blocks for one line, together
// with precomputed metadata used pervasively by the line solvers.
type Clue struct {
	Blocks []Block

	// minLength is the minimum number of cells this clue can possibly
	// occupy: sum of block sizes (blotted blocks count as 1) plus one
	// mandatory space between consecutive same-color blocks.
	minLength int
}

// New builds a Clue from a raw block list, rejecting any block colored Space
// and any fixed size that is not positive. Adjacent same-color blocks are
// kept as separate blocks, and the mandatory space between them is counted
// in MinLength.
func New(blocks []Block) (Clue, error) {
	for _, b := range blocks {
		if b.Color == cell.Space {
			return Clue{}, ErrSpaceColoredBlock
		}
		if !b.Size.IsBlotted() && b.Size.Value() <= 0 {
			return Clue{}, ErrNonPositiveSize
		}
	}

	c := Clue{Blocks: blocks}
	c.minLength = c.computeMinLength()
	return c, nil
}

func (c Clue) computeMinLength() int {
	total := 0
	for i, b := range c.Blocks {
		if b.Size.IsBlotted() {
			total += 1
		} else {
			total += b.Size.Value()
		}
		if i > 0 && c.Blocks[i-1].Color == b.Color {
			total += 1 // mandatory separating space
		}
	}
	return total
}

// MinLength returns the fewest cells this clue can occupy.
func (c Clue) MinLength() int {
	return c.minLength
}

// Fits reports whether the clue can be satisfied within a line of the given
// length — spec.md §3 board invariant (ii).
func (c Clue) Fits(length int) bool {
	return c.minLength <= length
}

// Slack returns length - MinLength, the number of "free" space cells that
// can be distributed between and around blocks. Negative if the clue does
// not fit.
func (c Clue) Slack(length int) int {
	return length - c.minLength
}

// TotalByColor sums the (concrete) block sizes by color. Blotted blocks are
// omitted, since their contribution is unknown until the block is placed;
// callers computing spec.md §3 invariant (i) must special-case boards that
// contain any blotted block.
func (c Clue) TotalByColor() map[cell.Mask]int {
	totals := make(map[cell.Mask]int)
	for _, b := range c.Blocks {
		if b.Size.IsBlotted() {
			continue
		}
		totals[b.Color] += b.Size.Value()
	}
	return totals
}

// HasBlotted reports whether any block in the clue has an unknown size.
func (c Clue) HasBlotted() bool {
	for _, b := range c.Blocks {
		if b.Size.IsBlotted() {
			return true
		}
	}
	return false
}

// String renders the clue in the compact "3 1 2" notation used by the INI
// reader and diagnostics, appending each non-Box block's palette symbol
// after its size (e.g. "3r") when sym is non-nil.
func (c Clue) String(sym func(cell.Mask) byte) string {
	parts := make([]string, len(c.Blocks))
	for i, b := range c.Blocks {
		s := b.Size.String()
		if sym != nil {
			if ch := sym(b.Color); ch != 0 && b.Color != cell.Box {
				s += string(ch)
			}
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

func (c Clue) GoString() string {
	return fmt.Sprintf("clue.Clue%v", c.Blocks)
}
