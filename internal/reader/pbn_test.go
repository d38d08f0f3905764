package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const monoPBN = `<?xml version="1.0"?>
<puzzle>
  <clues type="columns">
    <line><count>1</count></line>
    <line><count>1</count></line>
  </clues>
  <clues type="rows">
    <line><count>2</count></line>
  </clues>
</puzzle>`

func TestFromPBNParsesMonoBoard(t *testing.T) {
	b, err := FromPBN(strings.NewReader(monoPBN))
	require.NoError(t, err)
	require.Equal(t, 2, b.Width)
	require.Equal(t, 1, b.Height)
	require.False(t, b.Palette.IsColor())
}

const coloredPBN = `<?xml version="1.0"?>
<puzzle>
  <color name="red" char="r">FF0000</color>
  <color name="blue" char="b">0000FF</color>
  <clues type="columns">
    <line><count color="red">1</count><count color="blue">1</count></line>
    <line><count color="red">1</count><count color="blue">1</count></line>
  </clues>
  <clues type="rows">
    <line><count color="red">2</count></line>
    <line><count color="blue">2</count></line>
  </clues>
</puzzle>`

func TestFromPBNParsesColoredBoard(t *testing.T) {
	b, err := FromPBN(strings.NewReader(coloredPBN))
	require.NoError(t, err)
	require.True(t, b.Palette.IsColor())
	require.Equal(t, 2, b.Width)
	require.Equal(t, 2, b.Height)

	red, ok := b.Palette.ByName("red")
	require.True(t, ok)
	require.Equal(t, [3]uint8{0xFF, 0, 0}, red.RGB)
	require.Equal(t, byte('r'), red.Symbol)
}

func TestFromPBNRejectsMissingClues(t *testing.T) {
	_, err := FromPBN(strings.NewReader(`<puzzle></puzzle>`))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestFromPBNFileMissingReturnsErrInputNotFound(t *testing.T) {
	_, err := FromPBNFile("/nonexistent/path/to/board.xml")
	require.ErrorIs(t, err, ErrInputNotFound)
}
