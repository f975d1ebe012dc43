// Package astar_test provides runnable examples for the A* engine.
package astar_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleSearch runs a search on a small walled board and prints the path
// together with the final cell markings.
//
//	S start, E end, # wall, * path, x expanded, o still in the frontier.
func ExampleSearch() {
	g := gridgraph.MustParse(`
		S....
		.###.
		...#.
		.#.#.
		.#..E
	`)
	res, err := astar.Search(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost, "expanded:", res.Expanded)
	fmt.Print(g)
	// Output:
	// path: [(0,0) (1,0) (2,0) (2,1) (2,2) (3,2) (4,2) (4,3) (4,4)]
	// cost: 8 expanded: 18
	// Sxxxx
	// *###x
	// ***#x
	// x#*#x
	// x#**E
}

// ExampleFindPath_noPath shows exhaustion: the end is walled off, so the
// result is not found and no error is returned.
func ExampleFindPath_noPath() {
	g := gridgraph.MustParse(`
		.#.
		.#.
		.#.
	`)
	res, err := astar.FindPath(g, gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 0, Col: 2})
	fmt.Println(res.Found, res.Path, err)
	// Output: false [] <nil>
}

// ExampleWithOnStep streams transitions to an observer and stops the search
// from inside it, the way a UI reacts to a quit request.
func ExampleWithOnStep() {
	g, _ := gridgraph.NewGrid(5, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := astar.FindPath(g,
		gridgraph.Position{Row: 0, Col: 0},
		gridgraph.Position{Row: 0, Col: 4},
		astar.WithContext(ctx),
		astar.WithOnStep(func(s astar.Step) {
			fmt.Println(s.Pos, s.State)
			if s.State == gridgraph.Closed {
				cancel()
			}
		}),
	)
	fmt.Println(errors.Is(err, astar.ErrCancelled))
	// Output:
	// (1,0) open
	// (0,1) open
	// (1,1) open
	// (0,2) open
	// (0,1) closed
	// true
}
