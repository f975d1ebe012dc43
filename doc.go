// Package gridpath finds shortest paths on square grids with A*, the way an
// interactive path-finding board does: place a start, an end and some walls,
// then watch the frontier grow cell by cell.
//
// What is inside?
//
//	gridgraph/ — the lattice: cells, roles (start/end/wall), 4-way adjacency,
//	             pixel→cell mapping, reachability and BFS distance
//	astar/     — the search engine: (f, insertion order) frontier, Manhattan
//	             heuristic, step notifications, cancellation via context
//	metrics/   — Prometheus counters and histograms fed from step notifications
//
// Drawing, input handling and frame pacing stay with the caller; the engine
// only reports transitions (open, closed, path) through a callback.
//
// Quick ASCII example:
//
//	S . . # .        S * * # .
//	. # . # .   →    . # * # .
//	. # . . E        . # * * E
//
//	go get github.com/katalvlaran/gridpath
package gridpath
