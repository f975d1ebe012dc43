// Package gridgraph defines the cell, position and grid types used by the
// A* search engine in github.com/katalvlaran/gridpath/astar.
package gridgraph

import "fmt"

// CellState is the logical role of a cell. Rendering is left to the caller.
type CellState int

const (
	// Free is an empty, walkable cell.
	Free CellState = iota
	// Blocked is a barrier; it is never a neighbor of anything.
	Blocked
	// Start is the unique search origin.
	Start
	// End is the unique search target.
	End
	// Open marks a cell discovered by a search and waiting in its frontier.
	Open
	// Closed marks a cell a search has already expanded.
	Closed
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Free:    "free",
	Blocked: "blocked",
	Start:   "start",
	End:     "end",
	Open:    "open",
	Closed:  "closed",
	Path:    "path",
}

// String returns the lower-case name of the state.
func (s CellState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("CellState(%d)", int(s))
	}

	return stateNames[s]
}

// Walkable reports whether a cell in this state can be entered.
func (s CellState) Walkable() bool { return s != Blocked }

// endpoint reports whether the state is one of the two search roles.
func (s CellState) endpoint() bool { return s == Start || s == End }

// Position identifies a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is one lattice position with its current state.
// Pos never changes after the grid is built; only State does.
type Cell struct {
	Pos   Position
	State CellState
}

// Grid is an N×N lattice of cells. It records which positions currently
// hold the Start and End roles so that each role has at most one holder.
// cellSize is only used for pixel mapping.
type Grid struct {
	size     int
	cellSize int
	cells    [][]Cell
	start    *Position
	end      *Position
}

// neighborOffsets lists the 4-directional moves in expansion order:
// down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
