// Package cell implements the candidate-set algebra shared by every other
// package in this module.  A Cell is never an object with mutable fields; it
// is a bitmask, and every "mutation" described in spec.md §3 (set/unset) is
// actually production of a new, narrower mask.
package cell

import "math/bits"

// Mask is a bitmask over a Palette.  Bit 0 is always Space; every painted
// color occupies exactly one higher bit, per spec.md §3 ("ids for non-space
// colors are distinct powers of two").
type Mask uint32

// A Cell is a non-empty set of candidate colors.  The zero value is not a
// valid Cell (it has no candidates); always obtain one from a Palette.
type Cell = Mask

const (
	// Space is the background color, present in every palette.
	Space Mask = 1 << 0
	// Box is the sole non-space color of a two-state (mono) puzzle.
	Box Mask = 1 << 1
)

// Contains reports whether color c is a candidate of cell m.
func (m Mask) Contains(c Mask) bool {
	return m&c != 0
}

// IsSolved reports whether m has exactly one candidate remaining.
func (m Mask) IsSolved() bool {
	return m != 0 && m&(m-1) == 0
}

// Intersect narrows m to the candidates it shares with other. The result is
// never a superset of m: this is the "refinement" operation used throughout
// the line solvers.
func (m Mask) Intersect(other Mask) Mask {
	return m & other
}

// Union widens m to include every candidate in other. Used when merging the
// pointwise results of several valid line completions.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// IsSubsetOf reports whether every candidate in m is also a candidate of
// other — the monotonicity check from spec.md §8.
func (m Mask) IsSubsetOf(other Mask) bool {
	return m&^other == 0
}

// Members enumerates the individual color bits set in m, in ascending order.
func (m Mask) Members() []Mask {
	members := make([]Mask, 0, bits.OnesCount32(uint32(m)))
	for rest := m; rest != 0; {
		lowest := rest & (-rest)
		members = append(members, lowest)
		rest &^= lowest
	}
	return members
}

// Count returns the number of candidates remaining in m.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Color is a single palette entry: a name, a display glyph/symbol, an
// optional RGB triple for renderers, and the stable Mask bit that identifies
// it in a Cell.
type Color struct {
	Name   string
	Symbol byte // token character used in clue/description parsing, e.g. 'r'
	Glyph  rune // glyph used by ASCII renderers
	RGB    [3]uint8
	ID     Mask
}

// Palette is the fixed, ordered set of colors available to a board. Palette
// is immutable once built: spec.md §3 requires it fixed for the puzzle's
// lifetime.
type Palette struct {
	colors   []Color
	byName   map[string]Color
	byMask   map[Mask]Color
	full     Mask // union of every color's ID, the initial candidate set
	monoBox  Mask // Box.ID for two-state palettes, else 0
	isColor  bool
}

// NewMonoPalette returns the two-state {space, box} palette used by
// classic black/white nonograms.
func NewMonoPalette() *Palette {
	p := &Palette{
		byName: make(map[string]Color),
		byMask: make(map[Mask]Color),
	}
	p.addColor(Color{Name: "space", Symbol: '-', Glyph: ' ', ID: Space})
	p.addColor(Color{Name: "box", Symbol: '#', Glyph: '#', ID: Box})
	p.monoBox = Box
	p.isColor = false
	return p
}

// NewPalette builds a colored palette from a name -> (rgb, symbol) mapping,
// in the order given by names, per spec.md §6 ("a color palette mapping
// {name -> (rgb, symbol)}"). The space color is added implicitly.
func NewPalette(names []string, rgb map[string][3]uint8, symbol map[string]byte) (*Palette, error) {
	p := &Palette{
		byName: make(map[string]Color),
		byMask: make(map[Mask]Color),
	}
	p.addColor(Color{Name: "space", Symbol: '-', Glyph: ' ', ID: Space})

	if len(names) > 30 {
		// 32 bits total, one reserved for space; leave one spare bit of
		// headroom rather than mapping right up to the uint32 edge.
		return nil, ErrPaletteTooLarge
	}

	bit := Mask(1) << 1
	for _, name := range names {
		if _, exists := p.byName[name]; exists {
			return nil, ErrDuplicateColorName
		}
		sym := symbol[name]
		if sym == 0 {
			sym = name[0]
		}
		p.addColor(Color{
			Name:   name,
			Symbol: sym,
			Glyph:  rune(sym),
			RGB:    rgb[name],
			ID:     bit,
		})
		bit <<= 1
	}
	p.isColor = true
	return p, nil
}

func (p *Palette) addColor(c Color) {
	p.colors = append(p.colors, c)
	p.byName[c.Name] = c
	p.byMask[c.ID] = c
	p.full |= c.ID
}

// Full returns the initial, unconstrained candidate set: every color in the
// palette.
func (p *Palette) Full() Mask {
	return p.full
}

// IsColor reports whether this is a multi-color palette (as opposed to the
// two-state mono palette).
func (p *Palette) IsColor() bool {
	return p.isColor
}

// ByName looks up a color by its name; ok is false if no such color exists.
func (p *Palette) ByName(name string) (Color, bool) {
	c, ok := p.byName[name]
	return c, ok
}

// BySymbol looks up a color by its single-character token symbol.
func (p *Palette) BySymbol(sym byte) (Color, bool) {
	for _, c := range p.colors {
		if c.Symbol == sym {
			return c, true
		}
	}
	return Color{}, false
}

// ByMask looks up the Color metadata for a single-bit Mask.
func (p *Palette) ByMask(m Mask) (Color, bool) {
	c, ok := p.byMask[m]
	return c, ok
}

