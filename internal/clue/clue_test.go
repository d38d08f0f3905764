package clue

import (
	"testing"

	"github.com/kpitt/nonogram/internal/cell"
	"github.com/stretchr/testify/require"
)

func TestParseStringBareSizes(t *testing.T) {
	tokens, err := ParseString("3 1 2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, Fixed(3), tokens[0].Size)
	require.Equal(t, "", tokens[0].Color)
}

func TestParseStringColoredTokens(t *testing.T) {
	tokens, err := ParseString("1r 1b")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, "r", tokens[0].Color)
	require.Equal(t, "b", tokens[1].Color)
}

func TestParseStringBlotted(t *testing.T) {
	tokens, err := ParseString("?")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.True(t, tokens[0].Size.IsBlotted())
}

func TestParseStringRejectsMalformedToken(t *testing.T) {
	_, err := ParseString("abc")
	require.ErrorIs(t, err, ErrBadToken)
}

func TestNewRejectsSpaceColoredBlock(t *testing.T) {
	_, err := New([]Block{{Size: Fixed(1), Color: cell.Space}})
	require.ErrorIs(t, err, ErrSpaceColoredBlock)
}

func TestMinLengthAccountsForMandatorySeparator(t *testing.T) {
	c, err := New([]Block{
		{Size: Fixed(3), Color: cell.Box},
		{Size: Fixed(4), Color: cell.Box},
	})
	require.NoError(t, err)
	require.Equal(t, 8, c.MinLength()) // 3 + 1 + 4
}

func TestMinLengthNoSeparatorBetweenDifferentColors(t *testing.T) {
	red, blue := cell.Mask(1<<2), cell.Mask(1<<3)
	c, err := New([]Block{
		{Size: Fixed(3), Color: red},
		{Size: Fixed(4), Color: blue},
	})
	require.NoError(t, err)
	require.Equal(t, 7, c.MinLength()) // no mandatory gap between colors
}

func TestFitsAndSlack(t *testing.T) {
	c, err := New([]Block{{Size: Fixed(4), Color: cell.Box}, {Size: Fixed(2), Color: cell.Box}})
	require.NoError(t, err)
	require.True(t, c.Fits(8))  // min length 7
	require.False(t, c.Fits(6))
	require.Equal(t, 1, c.Slack(8))
}

func TestNormalizeMonoDefaultsToBox(t *testing.T) {
	p := cell.NewMonoPalette()
	blocks, err := Normalize(FromInts([]int{1, 1, 5}), p)
	require.NoError(t, err)
	for _, b := range blocks {
		require.Equal(t, cell.Box, b.Color)
	}
}

func TestNormalizeColoredRequiresColor(t *testing.T) {
	p, err := cell.NewPalette([]string{"red", "blue"},
		map[string][3]uint8{"red": {255, 0, 0}, "blue": {0, 0, 255}},
		map[string]byte{"red": 'r', "blue": 'b'})
	require.NoError(t, err)

	_, err = Normalize(FromInts([]int{1}), p)
	require.ErrorIs(t, err, ErrUnknownColor)

	tokens, err := ParseString("1r 1b")
	require.NoError(t, err)
	blocks, err := Normalize(tokens, p)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
}
