package reader

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// pbnPuzzle mirrors the subset of the PBN XML schema spec.md §6 names: a
// <puzzle> root with <color> elements and <clues type="columns|rows">
// blocks of <line><count color="...">N</count>...</line>.
type pbnPuzzle struct {
	XMLName xml.Name   `xml:"puzzle"`
	Colors  []pbnColor `xml:"color"`
	Clues   []pbnClues `xml:"clues"`
}

type pbnColor struct {
	Name string `xml:"name,attr"`
	Char string `xml:"char,attr"`
	Hex  string `xml:",chardata"`
}

type pbnClues struct {
	Type  string    `xml:"type,attr"`
	Lines []pbnLine `xml:"line"`
}

type pbnLine struct {
	Counts []pbnCount `xml:"count"`
}

type pbnCount struct {
	Color string `xml:"color,attr"`
	Value string `xml:",chardata"`
}

// FromPBNFile opens path and parses it as a PBN XML board file.
func FromPBNFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer f.Close()
	return FromPBN(f)
}

// FromPBN parses a PBN XML board file (spec.md §6).
func FromPBN(r io.Reader) (*board.Board, error) {
	var doc pbnPuzzle
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	palette, err := pbnPalette(doc.Colors)
	if err != nil {
		return nil, err
	}

	var colLines, rowLines []pbnLine
	for _, c := range doc.Clues {
		switch c.Type {
		case "columns":
			colLines = c.Lines
		case "rows":
			rowLines = c.Lines
		}
	}
	if colLines == nil && rowLines == nil {
		return nil, fmt.Errorf("%w: no <clues> columns/rows blocks", ErrMalformedInput)
	}

	colClues, err := pbnCluesOf(colLines, palette)
	if err != nil {
		return nil, err
	}
	rowClues, err := pbnCluesOf(rowLines, palette)
	if err != nil {
		return nil, err
	}

	return board.New(rowClues, colClues, palette)
}

func pbnPalette(colors []pbnColor) (*cell.Palette, error) {
	if len(colors) == 0 {
		return cell.NewMonoPalette(), nil
	}

	names := make([]string, 0, len(colors))
	rgb := make(map[string][3]uint8)
	symbol := make(map[string]byte)
	for _, c := range colors {
		if c.Name == "" || c.Name == "white" || c.Name == "bg" {
			continue // the implicit space color
		}
		triple, err := hexToRGB(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %v", ErrMalformedInput, c.Name, err)
		}
		var sym byte
		if c.Char != "" {
			sym = c.Char[0]
		}
		names = append(names, c.Name)
		rgb[c.Name] = triple
		if sym != 0 {
			symbol[c.Name] = sym
		}
	}
	p, err := cell.NewPalette(names, rgb, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return p, nil
}

func hexToRGB(hex string) ([3]uint8, error) {
	var out [3]uint8
	if len(hex) != 6 {
		if hex == "" {
			return out, nil
		}
		return out, fmt.Errorf("expected 6 hex digits, got %q", hex)
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return out, err
		}
		out[i] = uint8(n)
	}
	return out, nil
}

// pbnCluesOf resolves each <count color="..."> by the color's PBN *name*
// attribute, never its single-char symbol: the two need not agree (a color
// named "black" may use char 'X'), so this bypasses clue.Normalize (which
// resolves clue.Token.Color through Palette.BySymbol for the INI/string
// token forms) and looks blocks up by name directly.
func pbnCluesOf(lines []pbnLine, p *cell.Palette) ([]clue.Clue, error) {
	clues := make([]clue.Clue, len(lines))
	for i, l := range lines {
		blocks := make([]clue.Block, len(l.Counts))
		for j, cnt := range l.Counts {
			n, err := strconv.Atoi(cnt.Value)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: line %d count %d: invalid size %q", ErrMalformedInput, i, j, cnt.Value)
			}
			color, err := pbnResolveColor(cnt.Color, p)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d count %d: %v", ErrMalformedInput, i, j, err)
			}
			blocks[j] = clue.Block{Size: clue.Fixed(n), Color: color}
		}
		c, err := clue.New(blocks)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i, err)
		}
		clues[i] = c
	}
	return clues, nil
}

// pbnResolveColor resolves a <count color="name"> attribute against p. An
// empty name resolves to cell.Box for mono (two-state) puzzles, matching
// spec.md §6: "For mono-color puzzles, color attributes may be omitted."
func pbnResolveColor(name string, p *cell.Palette) (cell.Mask, error) {
	if name == "" {
		if p.IsColor() {
			return 0, clue.ErrUnknownColor
		}
		return cell.Box, nil
	}
	c, ok := p.ByName(name)
	if !ok {
		return 0, clue.ErrUnknownColor
	}
	return c.ID, nil
}
