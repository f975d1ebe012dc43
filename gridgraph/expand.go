package gridgraph

import (
	"container/list"
)

// Distance returns the number of unit moves on a shortest 4-directional
// walk from src to dst over walkable cells, using plain breadth-first search.
// ok is false when dst cannot be reached or either endpoint is Blocked.
// It is an exhaustive reference for heuristic searches and ignores
// Open/Closed/Path markings.
//
// Behavior:
//  1. Validate both positions.
//  2. BFS from src; each move costs 1.
//  3. Stop when dst is dequeued.
//
// Complexity: O(N²) time, Memory: O(N²) for distances.
func (g *Grid) Distance(src, dst Position) (dist int, ok bool, err error) {
	if err = g.check(src); err != nil {
		return 0, false, err
	}
	if err = g.check(dst); err != nil {
		return 0, false, err
	}
	if !g.State(src).Walkable() || !g.State(dst).Walkable() {
		return 0, false, nil
	}

	total := g.size * g.size
	depth := make([]int, total)
	for i := range depth {
		depth[i] = -1
	}
	depth[src.Row*g.size+src.Col] = 0

	q := list.New()
	q.PushBack(src)
	nbrs := make([]Position, 0, 4)

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		u := e.Value.(Position)
		du := depth[u.Row*g.size+u.Col]
		if u == dst {
			return du, true, nil
		}
		for _, v := range g.neighbors(u, nbrs[:0]) {
			vi := v.Row*g.size + v.Col
			if depth[vi] < 0 {
				depth[vi] = du + 1
				q.PushBack(v)
			}
		}
	}

	return 0, false, nil
}
