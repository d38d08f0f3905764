package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpitt/nonogram/internal/board"
	"github.com/kpitt/nonogram/internal/cell"
	"github.com/kpitt/nonogram/internal/clue"
)

// FromINIFile opens path and parses it as an INI-style board file (spec.md
// §6), grounded on the teacher's bufio.Scanner-based PuzzleFromFile.
func FromINIFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer f.Close()
	return FromINI(f)
}

type iniColor struct {
	rgb    [3]uint8
	symbol byte
}

// FromINI parses an INI-style board file: a `[clues]` section with
// `columns` and `rows` keys, each a multi-line value of comma-separated
// block tokens, and an optional `[colors]` section of `name = (rgb)
// symbol` entries. Lines starting with `#` or `;` (leading whitespace
// allowed) are comments.
func FromINI(r io.Reader) (*board.Board, error) {
	scanner := bufio.NewScanner(r)

	section := ""
	currentKey := ""
	var colTokens, rowTokens [][]clue.Token
	colorNames := []string{}
	colorRGB := make(map[string][3]uint8)
	colorSymbol := make(map[string]byte)

	appendLine := func(key, raw string) error {
		tokens, err := clue.ParseString(strings.ReplaceAll(raw, ",", " "))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedInput, key, err)
		}
		switch key {
		case "columns":
			colTokens = append(colTokens, tokens)
		case "rows":
			rowTokens = append(rowTokens, tokens)
		default:
			return fmt.Errorf("%w: unknown clue key %q", ErrMalformedInput, key)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			currentKey = ""
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			currentKey = ""
			continue
		}

		switch section {
		case "clues":
			if key, rest, ok := splitKeyLine(trimmed); ok {
				currentKey = key
				if rest != "" {
					if err := appendLine(key, rest); err != nil {
						return nil, err
					}
				}
				continue
			}
			if currentKey == "" {
				return nil, fmt.Errorf("%w: clue line outside columns/rows", ErrMalformedInput)
			}
			if err := appendLine(currentKey, trimmed); err != nil {
				return nil, err
			}
		case "colors":
			name, rgb, sym, err := parseColorLine(trimmed)
			if err != nil {
				return nil, err
			}
			colorNames = append(colorNames, name)
			colorRGB[name] = rgb
			colorSymbol[name] = sym
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var palette *cell.Palette
	var err error
	if len(colorNames) > 0 {
		palette, err = cell.NewPalette(colorNames, colorRGB, colorSymbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	} else {
		palette = cell.NewMonoPalette()
	}

	rowClues, err := normalizeAll(rowTokens, palette)
	if err != nil {
		return nil, err
	}
	colClues, err := normalizeAll(colTokens, palette)
	if err != nil {
		return nil, err
	}

	b, err := board.New(rowClues, colClues, palette)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func normalizeAll(lines [][]clue.Token, p *cell.Palette) ([]clue.Clue, error) {
	clues := make([]clue.Clue, len(lines))
	for i, tokens := range lines {
		blocks, err := clue.Normalize(tokens, p)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i, err)
		}
		c, err := clue.New(blocks)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, i, err)
		}
		clues[i] = c
	}
	return clues, nil
}

// splitKeyLine reports whether trimmed begins a "columns =" or "rows ="
// key, returning the key and whatever trails the '=' on the same line.
func splitKeyLine(trimmed string) (key, rest string, ok bool) {
	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return "", "", false
	}
	k := strings.TrimSpace(trimmed[:eq])
	if k != "columns" && k != "rows" {
		return "", "", false
	}
	return k, strings.TrimSpace(trimmed[eq+1:]), true
}

// parseColorLine parses one `[colors]` entry: `name = (r,g,b) symbol`.
func parseColorLine(trimmed string) (name string, rgb [3]uint8, symbol byte, err error) {
	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return "", rgb, 0, fmt.Errorf("%w: color entry missing '=': %q", ErrMalformedInput, trimmed)
	}
	name = strings.TrimSpace(trimmed[:eq])
	rest := strings.TrimSpace(trimmed[eq+1:])

	open, close := strings.Index(rest, "("), strings.Index(rest, ")")
	if open < 0 || close < 0 || close < open {
		return "", rgb, 0, fmt.Errorf("%w: color entry missing '(rgb)': %q", ErrMalformedInput, trimmed)
	}
	parts := strings.Split(rest[open+1:close], ",")
	if len(parts) != 3 {
		return "", rgb, 0, fmt.Errorf("%w: color entry needs 3 rgb components: %q", ErrMalformedInput, trimmed)
	}
	for i, p := range parts {
		n, perr := strconv.Atoi(strings.TrimSpace(p))
		if perr != nil || n < 0 || n > 255 {
			return "", rgb, 0, fmt.Errorf("%w: invalid rgb component %q", ErrMalformedInput, p)
		}
		rgb[i] = uint8(n)
	}

	symPart := strings.TrimSpace(rest[close+1:])
	if symPart == "" {
		return "", rgb, 0, fmt.Errorf("%w: color entry missing symbol: %q", ErrMalformedInput, trimmed)
	}
	symbol = symPart[0]
	return name, rgb, symbol, nil
}
