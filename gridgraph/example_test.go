// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: building a board
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid demonstrates placing the endpoints and a wall the way a
// pointer-driven board does: pixels are mapped to cells with CellAt.
func ExampleGrid() {
	g, _ := gridgraph.NewGrid(4, 10)

	start, _ := g.CellAt(5, 5)
	end, _ := g.CellAt(35, 35)
	_ = g.SetStart(start)
	_ = g.SetEnd(end)
	for col := 0; col < 3; col++ {
		_ = g.SetBarrier(gridgraph.Position{Row: 2, Col: col})
	}

	fmt.Print(g)
	nbrs, _ := g.Neighbors(start)
	fmt.Println("neighbors of start:", nbrs)
	// Output:
	// S...
	// ....
	// ###.
	// ...E
	// neighbors of start: [(1,0) (0,1)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components lists the walkable regions of a walled map.
func ExampleGrid_Components() {
	g := gridgraph.MustParse(`
		..#.
		..#.
		###.
		....
	`)
	for i, comp := range g.Components() {
		fmt.Printf("region %d: %d cells\n", i, len(comp))
	}
	// Output:
	// region 0: 4 cells
	// region 1: 7 cells
}
