package gridgraph

// Components finds all 4-connected regions of walkable (non-Blocked) cells.
// Regions are returned in row-major order of their first cell; cells within
// a region are in BFS order from that cell.
//
// Time:   O(N²).
// Memory: O(N²) for seen flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, g.size*g.size)
	var comps [][]Position

	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if !g.cells[r][c].State.Walkable() || seen[r*g.size+c] {
				continue
			}
			comps = append(comps, g.flood(Position{Row: r, Col: c}, seen))
		}
	}

	return comps
}

// Region returns the walkable cells reachable from p, p included, in BFS
// order. A Blocked p yields an empty region.
//
// Time:   O(N²).
// Memory: O(N²).
func (g *Grid) Region(p Position) ([]Position, error) {
	if err := g.check(p); err != nil {
		return nil, err
	}
	if !g.State(p).Walkable() {
		return nil, nil
	}

	return g.flood(p, make([]bool, g.size*g.size)), nil
}

// flood collects the component containing src, marking it in seen.
func (g *Grid) flood(src Position, seen []bool) []Position {
	queue := []Position{src}
	seen[src.Row*g.size+src.Col] = true
	nbrs := make([]Position, 0, 4)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.neighbors(u, nbrs[:0]) {
			vi := v.Row*g.size + v.Col
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
