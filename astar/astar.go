// Package astar implements A* shortest-path search on a gridgraph.Grid with
// unit edge weights and the Manhattan heuristic.
//
// A search moves through Initialized → Expanding → {Succeeded, Exhausted}.
// It can also stop early with ErrCancelled (context done) or
// ErrExpansionLimit (WithMaxExpansions).
//
// Complexity:
//
//   - Time:  O(C log C) where C = N² cells; each cell is pushed at most once
//     per stay in the frontier and every push/pop costs O(log C).
//   - Space: O(C) for the score maps, predecessor map and frontier.
//
// Notes on implementation choices:
//
//   - Adjacency is snapshotted once before expansion; barrier edits made by
//     observers during a run are not seen by that run.
//   - Frontier ties on f are broken by insertion order, so equal inputs give
//     identical paths and identical step sequences.
//   - A cell already in the frontier is not pushed again when its score
//     improves; only its g and f bookkeeping change.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath searches g for a shortest 4-directional path from start to end.
//
// Returns:
//
//   - (*Result, nil) with Found=true and the path when end is reachable.
//   - (*Result, nil) with Found=false once every cell reachable from start
//     has been expanded without meeting end.
//   - (nil, err) otherwise.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and end must be in bounds (gridgraph.ErrOutOfBounds).
//  4. Neither start nor end may be Blocked (ErrInvalidEndpoints).
//
// The grid is owned by the caller and must not be mutated by anyone else
// while the call runs.
func FindPath(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	for _, p := range []gridgraph.Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("astar: endpoint %v: %w", p, gridgraph.ErrOutOfBounds)
		}
		if !g.State(p).Walkable() {
			return nil, fmt.Errorf("%w: %v is blocked", ErrInvalidEndpoints, p)
		}
	}

	r := &runner{
		grid:     g,
		adj:      g.Adjacency(),
		options:  cfg,
		start:    start,
		end:      end,
		cameFrom: make(map[gridgraph.Position]gridgraph.Position),
		gScore:   make(map[gridgraph.Position]int),
		fScore:   make(map[gridgraph.Position]int),
		inOpen:   make(map[gridgraph.Position]bool),
	}
	log := cfg.Logger.With("start", start.String(), "end", end.String())
	log.Debug("astar: search started", "size", g.Size())

	r.init()
	found, err := r.process()
	if err != nil {
		log.Debug("astar: search stopped", "expanded", r.expanded, "error", err)
		return nil, err
	}
	res := &Result{Expanded: r.expanded}
	if found {
		res.Found = true
		res.Path = r.reconstruct()
		res.Cost = len(res.Path) - 1
		log.Debug("astar: path found", "expanded", r.expanded, "length", len(res.Path))
	} else {
		log.Debug("astar: frontier exhausted", "expanded", r.expanded)
	}

	return res, nil
}

// Search runs FindPath between the grid's current Start and End cells.
// Returns ErrInvalidEndpoints if either role is unset.
func Search(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: start is unset", ErrInvalidEndpoints)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("%w: end is unset", ErrInvalidEndpoints)
	}

	return FindPath(g, start, end, opts...)
}

// runner holds the mutable state of a single search; it is discarded
// when FindPath returns.
type runner struct {
	grid    *gridgraph.Grid
	adj     *gridgraph.Adjacency
	options Options
	start   gridgraph.Position
	end     gridgraph.Position

	cameFrom map[gridgraph.Position]gridgraph.Position // predecessor tree; start is never a key
	gScore   map[gridgraph.Position]int                // absent means +∞
	fScore   map[gridgraph.Position]int                // absent means +∞
	open     frontier
	inOpen   map[gridgraph.Position]bool // cells with a live entry in open
	seq      int                         // next insertion sequence
	expanded int
}

// init scores the start cell and pushes it with sequence 0.
func (r *runner) init() {
	r.gScore[r.start] = 0
	r.fScore[r.start] = Manhattan(r.start, r.end)
	heap.Init(&r.open)
	r.push(r.start)
}

func (r *runner) push(p gridgraph.Position) {
	heap.Push(&r.open, &entry{pos: p, f: r.fScore[p], seq: r.seq})
	r.seq++
	r.inOpen[p] = true
}

func (r *runner) g(p gridgraph.Position) int {
	if v, ok := r.gScore[p]; ok {
		return v
	}

	return math.MaxInt
}

// process is the Expanding state. It reports whether end was popped.
//
// Loop termination conditions:
//
//   - end is popped (Succeeded).
//   - The frontier becomes empty (Exhausted).
//   - The context is done or the expansion limit is hit (error).
func (r *runner) process() (bool, error) {
	ctx := r.options.Ctx
	for r.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if limit := r.options.MaxExpansions; limit > 0 && r.expanded >= limit {
			return false, fmt.Errorf("%w: %d", ErrExpansionLimit, limit)
		}

		cur := heap.Pop(&r.open).(*entry).pos
		delete(r.inOpen, cur)
		r.expanded++

		if cur == r.end {
			return true, nil
		}

		r.relax(cur)

		if cur != r.start {
			r.emit(cur, gridgraph.Closed)
		}
	}
	// an observer may cancel during the expansion that drained the frontier
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return false, nil
}

// relax scores each snapshot neighbor of cur through a unit edge and opens
// the ones that improved and are not already waiting in the frontier.
func (r *runner) relax(cur gridgraph.Position) {
	tentative := r.g(cur) + 1
	for _, n := range r.adj.Of(cur) {
		if tentative >= r.g(n) {
			continue
		}
		r.cameFrom[n] = cur
		r.gScore[n] = tentative
		r.fScore[n] = tentative + Manhattan(n, r.end)
		if !r.inOpen[n] {
			r.push(n)
			r.emit(n, gridgraph.Open)
		}
	}
}

// reconstruct walks cameFrom back from end, marks the cells strictly between
// the endpoints as Path (end side first) and returns start → … → end.
func (r *runner) reconstruct() []gridgraph.Position {
	path := []gridgraph.Position{r.end}
	for cur := r.end; ; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		if prev != r.start {
			r.emit(prev, gridgraph.Path)
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// emit applies a transition to the grid (when enabled) and notifies observers.
// The Start and End cells keep their roles and produce no events.
func (r *runner) emit(p gridgraph.Position, s gridgraph.CellState) {
	if p == r.start || p == r.end {
		return
	}
	if r.options.MarkGrid {
		_, _ = r.grid.Mark(p, s) // p comes from the grid's own adjacency
	}
	step := Step{Pos: p, State: s}
	for _, fn := range r.options.OnStep {
		fn(step)
	}
}
