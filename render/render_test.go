package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vyevs/ansi"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/render"
)

const junkSquare = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF`

func walk(t *testing.T, text string) (*pipegrid.Grid, *pipegrid.Loop) {
	t.Helper()
	g, err := pipegrid.Parse(text)
	require.NoError(t, err)
	l, err := pipegrid.Walk(g)
	require.NoError(t, err)
	return g, l
}

// TestGrid_Plain draws without colour or box runes.
func TestGrid_Plain(t *testing.T) {
	g, l := walk(t, junkSquare)
	opts := render.DefaultOptions()
	opts.Color = false
	opts.BoxDrawing = false

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, l, opts))
	want := "" +
		".....\n" +
		".S-7.\n" +
		".|I|.\n" +
		".L-J.\n" +
		".....\n"
	require.Equal(t, want, buf.String())
}

// TestGrid_BoxDrawing swaps loop glyphs for box-drawing runes.
func TestGrid_BoxDrawing(t *testing.T) {
	g, l := walk(t, "S-7\n|.|\nL-J")
	opts := render.DefaultOptions()
	opts.Color = false

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, l, opts))
	require.Equal(t, "S─┐\n│I│\n└─┘\n", buf.String())
}

// TestGrid_Color wraps loop and interior cells in colour codes.
func TestGrid_Color(t *testing.T) {
	g, l := walk(t, "S-7\n|.|\nL-J")
	opts := render.DefaultOptions()

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, l, opts))
	out := buf.String()
	require.Equal(t, 8, strings.Count(out, ansi.FGColorName(opts.LoopColor)))
	require.Contains(t, out, ansi.FGColorName(opts.InteriorColor)+"I"+ansi.Clear)
}
