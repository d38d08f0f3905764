package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonoPaletteFullIsSpaceAndBox(t *testing.T) {
	p := NewMonoPalette()
	require.Equal(t, Space|Box, p.Full())
	require.False(t, p.IsColor())
}

func TestContainsAndSolved(t *testing.T) {
	m := Space | Box
	require.True(t, m.Contains(Space))
	require.True(t, m.Contains(Box))
	require.False(t, m.IsSolved())

	require.True(t, Box.IsSolved())
}

func TestIntersectNeverWidens(t *testing.T) {
	m := Space | Box
	narrowed := m.Intersect(Box)
	require.Equal(t, Box, narrowed)
	require.True(t, narrowed.IsSubsetOf(m))
}

func TestUnsetEmptiesToError(t *testing.T) {
	_, err := Unset(Box, Box)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestUnsetNarrows(t *testing.T) {
	m := Space | Box
	narrowed, err := Unset(m, Space)
	require.NoError(t, err)
	require.Equal(t, Box, narrowed)
}

func TestSetRejectsNonCandidate(t *testing.T) {
	_, err := Set(Space, Box)
	require.ErrorIs(t, err, ErrNotCandidate)
}

func TestMembersEnumeratesEachBit(t *testing.T) {
	p, err := NewPalette([]string{"red", "blue", "green"},
		map[string][3]uint8{"red": {255, 0, 0}, "blue": {0, 0, 255}, "green": {0, 255, 0}},
		map[string]byte{"red": 'r', "blue": 'b', "green": 'g'})
	require.NoError(t, err)

	members := p.Full().Members()
	require.Len(t, members, 4) // space + 3 colors
	require.Equal(t, 4, p.Full().Count())
}

func TestNewPaletteRejectsDuplicateNames(t *testing.T) {
	_, err := NewPalette([]string{"red", "red"}, nil, nil)
	require.ErrorIs(t, err, ErrDuplicateColorName)
}

func TestNewPaletteRejectsTooManyColors(t *testing.T) {
	names := make([]string, 31)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	_, err := NewPalette(names, nil, nil)
	require.ErrorIs(t, err, ErrPaletteTooLarge)
}

func TestBySymbolAndByMask(t *testing.T) {
	p := NewMonoPalette()
	c, ok := p.BySymbol('#')
	require.True(t, ok)
	require.Equal(t, Box, c.ID)

	c, ok = p.ByMask(Box)
	require.True(t, ok)
	require.Equal(t, byte('#'), c.Symbol)

	_, ok = p.BySymbol('x')
	require.False(t, ok)
}
