package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// benchGrid builds an n×n board with roughly density of its cells blocked,
// keeping the corners free.
func benchGrid(b *testing.B, n int, density float64) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.NewGrid(n, 1)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Float64() < density {
				_ = g.SetBarrier(gridgraph.Position{Row: r, Col: c})
			}
		}
	}
	_ = g.SetStart(gridgraph.Position{Row: 0, Col: 0})
	_ = g.SetEnd(gridgraph.Position{Row: n - 1, Col: n - 1})

	return g
}

func BenchmarkSearch_Open50(b *testing.B) {
	g := benchGrid(b, 50, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, astar.WithMarkGrid(false)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Cluttered100(b *testing.B) {
	g := benchGrid(b, 100, 0.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, astar.WithMarkGrid(false)); err != nil {
			b.Fatal(err)
		}
	}
}
