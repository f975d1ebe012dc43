// Package astar finds minimum-length paths on a gridgraph.Grid.
//
// Overview:
//
//   - Unit edge weights, 4-directional moves, Manhattan heuristic.
//   - The frontier is a min-heap ordered by (f, insertion sequence), so among
//     equal f-scores the earliest-discovered cell is expanded first and every
//     run on the same input produces the same path.
//   - Each transition (Open, Closed, Path) is written to the grid and handed
//     to observers registered with WithOnStep, letting a UI animate the search
//     without the engine knowing how it is drawn.
//
// State machine of one FindPath call:
//
//	Initialized ──► Expanding ──► Succeeded  (Result.Found = true)
//	                    │
//	                    ├───────► Exhausted  (Result.Found = false)
//	                    │
//	                    └───────► ErrCancelled / ErrExpansionLimit
//
// Options:
//
//   - WithContext(ctx):      cancellation token, checked before every expansion
//                            and again before reporting exhaustion.
//   - WithOnStep(fn):        synchronous transition observer (repeatable).
//   - WithMarkGrid(bool):    write transitions into the grid (default true).
//   - WithMaxExpansions(n):  cap on frontier pops (0 = unlimited).
//   - WithLogger(l):         *slog.Logger for debug records.
//
// Errors (sentinel):
//
//   - ErrNilGrid:              nil grid.
//   - gridgraph.ErrOutOfBounds: start or end outside the grid.
//   - ErrInvalidEndpoints:     start or end Blocked, or unset (Search).
//   - ErrCancelled:            context done; wraps ctx.Err().
//   - ErrExpansionLimit:       WithMaxExpansions reached.
//   - ErrOptionViolation:      invalid option value.
//
// Exhaustion is not an error: an unreachable end yields Found=false.
//
// Example usage:
//
//	g, _ := gridgraph.NewGrid(50, 16)
//	_ = g.SetStart(gridgraph.Position{Row: 0, Col: 0})
//	_ = g.SetEnd(gridgraph.Position{Row: 49, Col: 49})
//	res, err := astar.Search(g, astar.WithOnStep(func(s astar.Step) {
//	    redraw(s.Pos, s.State)
//	}))
//
// Thread safety:
//
//   - A call allocates all of its bookkeeping and shares nothing with other calls.
//   - The grid must not be mutated concurrently with a running search;
//     this is a precondition and is not checked.
package astar
