// Package gridgraph models a square lattice of cells as a graph for
// shortest-path search.
//
// What:
//
//   - Grid holds N×N cells; each cell has a fixed Position and a mutable CellState.
//   - At most one Start and one End exist at a time; neither can be Blocked.
//   - Adjacency is 4-directional (down, up, right, left), bounds- and barrier-aware.
//   - Adjacency() takes a snapshot of every cell's neighbors for a search run.
//   - CoordinatesToCell maps pixel coordinates to a Position for pointer input.
//
// Why:
//
//   - Interactive path-finding boards: place start, end and walls, then search.
//   - Game maps: reachability (Region) and exact hop distance (Distance).
//
// Complexity:
//
//   - NewGrid, Clear:            O(N²) time and memory.
//   - SetStart/SetEnd/...:       O(1).
//   - Neighbors:                 O(1).
//   - Adjacency:                 O(N²).
//   - Region, Components:        O(N²), Memory: O(N²).
//   - Distance:                  O(N²), Memory: O(N²).
//
// Errors:
//
//   - ErrInvalidSize:   grid size (or parsed map) is not a positive square.
//   - ErrOutOfBounds:   a Position lies outside [0,N)×[0,N).
//   - ErrUnknownSymbol: Parse met a character outside the map alphabet.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. The caller owns it and must
//	not change barriers or endpoints while a search over it is running.
package gridgraph
