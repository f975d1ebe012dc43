// Package gridgraph provides the lattice model searched by astar:
//
//   - Construction and reset of an N×N grid of Free cells
//   - Role mutation (Start, End, Blocked) under the one-Start/one-End rule
//   - Search markings (Open, Closed, Path) that never overwrite roles
//   - 4-directional adjacency, on demand or as a snapshot
//   - Pixel to cell mapping for pointer-driven callers
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid allocates a size×size grid of Free cells.
// cellSize is the pixel edge of one cell and only affects CellAt and PixelOrigin.
// Returns ErrInvalidSize if size ≤ 0 or cellSize ≤ 0.
// Complexity: O(N²) time and memory.
func NewGrid(size, cellSize int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidSize, cellSize)
	}
	cells := make([][]Cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]Cell, size)
		for c := 0; c < size; c++ {
			cells[r][c] = Cell{Pos: Position{Row: r, Col: c}, State: Free}
		}
	}

	return &Grid{size: size, cellSize: cellSize, cells: cells}, nil
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int { return g.size }

// CellSize returns the pixel edge of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether p lies within [0,N)×[0,N).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g *Grid) check(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.size, g.size)
	}

	return nil
}

// Cell returns a copy of the cell at p.
func (g *Grid) Cell(p Position) (Cell, error) {
	if err := g.check(p); err != nil {
		return Cell{}, err
	}

	return g.cells[p.Row][p.Col], nil
}

// State returns the state at p, or Blocked if p is out of bounds.
func (g *Grid) State(p Position) CellState {
	if !g.InBounds(p) {
		return Blocked
	}

	return g.cells[p.Row][p.Col].State
}

// Start returns the current Start position, if any.
func (g *Grid) Start() (Position, bool) {
	if g.start == nil {
		return Position{}, false
	}

	return *g.start, true
}

// End returns the current End position, if any.
func (g *Grid) End() (Position, bool) {
	if g.end == nil {
		return Position{}, false
	}

	return *g.end, true
}

// put overwrites the state at p, vacating the Start or End role if p held it.
func (g *Grid) put(p Position, s CellState) {
	switch g.cells[p.Row][p.Col].State {
	case Start:
		g.start = nil
	case End:
		g.end = nil
	}
	g.cells[p.Row][p.Col].State = s
}

// SetStart makes p the Start cell. A previous Start elsewhere becomes Free.
// If p was the End or a barrier, that role is dropped.
func (g *Grid) SetStart(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	if g.start != nil && *g.start != p {
		g.put(*g.start, Free)
	}
	g.put(p, Start)
	g.start = &p

	return nil
}

// SetEnd makes p the End cell. A previous End elsewhere becomes Free.
// If p was the Start or a barrier, that role is dropped.
func (g *Grid) SetEnd(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	if g.end != nil && *g.end != p {
		g.put(*g.end, Free)
	}
	g.put(p, End)
	g.end = &p

	return nil
}

// SetBarrier blocks p. If p held the Start or End role, the role is vacated.
func (g *Grid) SetBarrier(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.put(p, Blocked)

	return nil
}

// ResetCell returns p to Free, vacating any role it held.
func (g *Grid) ResetCell(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.put(p, Free)

	return nil
}

// Mark records a search transition (Open, Closed or Path) at p.
// Start, End and Blocked cells keep their state; Mark reports false for them.
func (g *Grid) Mark(p Position, s CellState) (bool, error) {
	if err := g.check(p); err != nil {
		return false, err
	}
	if s != Open && s != Closed && s != Path {
		return false, fmt.Errorf("gridgraph: Mark accepts open, closed or path, got %v", s)
	}
	cur := g.cells[p.Row][p.Col].State
	if cur.endpoint() || cur == Blocked || cur == s {
		return false, nil
	}
	g.cells[p.Row][p.Col].State = s

	return true, nil
}

// ClearSearch turns every Open, Closed and Path cell back to Free.
// Roles and barriers are kept.
func (g *Grid) ClearSearch() {
	for r := range g.cells {
		for c := range g.cells[r] {
			switch g.cells[r][c].State {
			case Open, Closed, Path:
				g.cells[r][c].State = Free
			}
		}
	}
}

// Clear returns a new grid of the same size and cell size with every cell Free.
// The receiver is left untouched.
func (g *Grid) Clear() *Grid {
	fresh, _ := NewGrid(g.size, g.cellSize) // sizes already validated

	return fresh
}

// Neighbors returns the in-bounds, non-Blocked cells orthogonally adjacent
// to p, in the order down, up, right, left. It reads the current states
// and never mutates the grid.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	if err := g.check(p); err != nil {
		return nil, err
	}

	return g.neighbors(p, nil), nil
}

func (g *Grid) neighbors(p Position, dst []Position) []Position {
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.InBounds(n) && g.cells[n.Row][n.Col].State.Walkable() {
			dst = append(dst, n)
		}
	}

	return dst
}

// Adjacency is a frozen copy of every cell's neighbor list.
// Later barrier changes on the grid do not affect it.
type Adjacency struct {
	size  int
	lists [][]Position
}

// Adjacency snapshots the neighbor lists of all cells.
// Complexity: O(N²) time and memory.
func (g *Grid) Adjacency() *Adjacency {
	a := &Adjacency{size: g.size, lists: make([][]Position, g.size*g.size)}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			a.lists[r*g.size+c] = g.neighbors(Position{Row: r, Col: c}, make([]Position, 0, 4))
		}
	}

	return a
}

// Of returns the snapshot neighbors of p, or nil if p is out of bounds.
// The returned slice must not be modified.
func (a *Adjacency) Of(p Position) []Position {
	if p.Row < 0 || p.Row >= a.size || p.Col < 0 || p.Col >= a.size {
		return nil
	}

	return a.lists[p.Row*a.size+p.Col]
}

// CoordinatesToCell maps a pixel coordinate to a cell position by integer
// division. Cells are laid out with x along rows and y along columns.
// cellSize must be positive; CoordinatesToCell panics otherwise.
func CoordinatesToCell(px, py, cellSize int) Position {
	return Position{Row: px / cellSize, Col: py / cellSize}
}

// CellAt maps a pixel coordinate to the cell under it.
// Returns ErrOutOfBounds when the pixel falls outside the grid.
func (g *Grid) CellAt(px, py int) (Position, error) {
	if px < 0 || py < 0 {
		return Position{}, fmt.Errorf("%w: pixel (%d,%d)", ErrOutOfBounds, px, py)
	}
	p := CoordinatesToCell(px, py, g.cellSize)
	if err := g.check(p); err != nil {
		return Position{}, err
	}

	return p, nil
}

// PixelOrigin returns the top-left pixel of the cell at p.
func (g *Grid) PixelOrigin(p Position) (x, y int) {
	return p.Row * g.cellSize, p.Col * g.cellSize
}

// String renders the grid one row per line using the Parse alphabet.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := range g.cells {
		for c := range g.cells[r] {
			b.WriteByte(stateSymbols[g.cells[r][c].State])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
