package clue

import (
	"strconv"
	"strings"

	"github.com/kpitt/nonogram/internal/cell"
)

// Token represents one raw block description before normalization: either a
// bare integer (defaults to the mono Box color), an explicit (size, color)
// pair, or the blotted marker ("?").
type Token struct {
	Size  Size
	Color string // one-character color symbol; empty means "default" (box for mono puzzles)
}

// ParseString splits a whitespace-separated string of block tokens (each
// matching "<size><color-char>?") into Tokens, per spec.md §6: "A token
// matches <size><color-char>?; bare size defaults to color black [box]."
func ParseString(s string) ([]Token, error) {
	fields := strings.Fields(s)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tok, err := parseToken(f)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parseToken(f string) (Token, error) {
	if f == "" {
		return Token{}, ErrEmptyToken
	}
	if f == "?" {
		return Token{Size: Blotted()}, nil
	}

	i := 0
	for i < len(f) && (f[i] >= '0' && f[i] <= '9') {
		i++
	}
	if i == 0 {
		return Token{}, ErrBadToken
	}

	n, err := strconv.Atoi(f[:i])
	if err != nil || n <= 0 {
		return Token{}, ErrBadToken
	}

	colorPart := f[i:]
	if colorPart == "" {
		return Token{Size: Fixed(n)}, nil
	}
	if len(colorPart) != 1 {
		return Token{}, ErrBadToken
	}
	return Token{Size: Fixed(n), Color: colorPart}, nil
}

// Normalize resolves a slice of Tokens against a palette into validated
// Blocks, ready for New. Tokens with an empty Color resolve to cell.Box for
// mono palettes, or are rejected for colored palettes (every block in a
// colored puzzle must name its color explicitly).
func Normalize(tokens []Token, p *cell.Palette) ([]Block, error) {
	blocks := make([]Block, 0, len(tokens))
	for _, t := range tokens {
		var color cell.Mask
		switch {
		case t.Color == "" && !p.IsColor():
			color = cell.Box
		case t.Color == "":
			return nil, ErrUnknownColor
		default:
			c, ok := p.BySymbol(t.Color[0])
			if !ok {
				return nil, ErrUnknownColor
			}
			color = c.ID
		}
		blocks = append(blocks, Block{Size: t.Size, Color: color})
	}
	return blocks, nil
}

// FromInts builds an unnormalized token list from a bare sequence of
// integers, e.g. spec.md §6's "a sequence of integers" input form.
func FromInts(sizes []int) []Token {
	tokens := make([]Token, len(sizes))
	for i, n := range sizes {
		tokens[i] = Token{Size: Fixed(n)}
	}
	return tokens
}

// FromInt builds a single-block token list from a bare integer, e.g.
// spec.md §6's "an integer (single block)" input form. A value of 0
// represents an all-space line (no blocks).
func FromInt(n int) []Token {
	if n == 0 {
		return nil
	}
	return []Token{{Size: Fixed(n)}}
}
