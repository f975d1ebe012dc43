package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestParse_RoundTrip(t *testing.T) {
	const m = "S.#\nox*\n..E\n"
	g, err := gridgraph.Parse(m, 8)
	require.NoError(t, err)
	assert.Equal(t, m, g.String())
	assert.Equal(t, 8, g.CellSize())

	s, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, pos{0, 0}, s)
	e, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, pos{2, 2}, e)
}

func TestParse_LastRoleWins(t *testing.T) {
	g, err := gridgraph.Parse("S.\n.S\n", 1)
	require.NoError(t, err)
	assert.Equal(t, "..\n.S\n", g.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "  \n\n", gridgraph.ErrInvalidSize},
		{"NonSquare", "...\n...\n", gridgraph.ErrInvalidSize},
		{"Ragged", "..\n.\n", gridgraph.ErrInvalidSize},
		{"Symbol", ".?\n..\n", gridgraph.ErrUnknownSymbol},
		{"MultiByteSymbol", ".é\n..\n", gridgraph.ErrUnknownSymbol},
		{"MultiByteWideRow", "..é\n..\n", gridgraph.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.text, 1)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { gridgraph.MustParse("") })
}
