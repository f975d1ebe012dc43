package gridgraph

import (
	"fmt"
	"strings"
)

// stateSymbols is the text alphabet shared by String and Parse.
var stateSymbols = [...]byte{
	Free:    '.',
	Blocked: '#',
	Start:   'S',
	End:     'E',
	Open:    'o',
	Closed:  'x',
	Path:    '*',
}

const symbolSet = ".#SEox*"

// Parse builds a grid from a text map, one row per line:
//
//	'.' free   '#' blocked   'S' start   'E' end
//	'o' open   'x' closed    '*' path
//
// Blank lines and surrounding spaces are ignored. The map must be square.
// If several S (or E) symbols appear, the last one wins, as with SetStart.
// Returns ErrInvalidSize for an empty or non-square map and
// ErrUnknownSymbol for any other character. Widths are counted in runes
// and symbols are checked first, so a stray multi-byte character is
// reported as unknown rather than as a short or long row.
func Parse(text string, cellSize int) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidSize)
	}
	g, err := NewGrid(n, cellSize)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		row := []rune(line)
		for c, ch := range row {
			if !strings.ContainsRune(symbolSet, ch) {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownSymbol, ch, Position{Row: r, Col: c})
			}
		}
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), n)
		}
		for c, ch := range row {
			p := Position{Row: r, Col: c}
			switch ch {
			case '#':
				_ = g.SetBarrier(p)
			case 'S':
				_ = g.SetStart(p)
			case 'E':
				_ = g.SetEnd(p)
			case 'o':
				g.cells[r][c].State = Open
			case 'x':
				g.cells[r][c].State = Closed
			case '*':
				g.cells[r][c].State = Path
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(text string) *Grid {
	g, err := Parse(text, 1)
	if err != nil {
		panic(err)
	}

	return g
}
