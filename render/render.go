// Package render draws a pipe grid as text with the loop and its interior
// highlighted, optionally coloured with ANSI escape codes.
package render

import (
	"io"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// boxRunes maps pipe glyphs to box-drawing characters.
var boxRunes = map[rune]rune{
	'|': '│',
	'-': '─',
	'L': '└',
	'J': '┘',
	'7': '┐',
	'F': '┌',
}

// Options controls how a grid is drawn.
type Options struct {
	Color         bool   // emit ANSI colour codes
	BoxDrawing    bool   // draw loop pipes with box-drawing runes
	LoopColor     string // ansi colour name for loop cells
	InteriorColor string // ansi colour name for interior cells
	InteriorMark  rune   // drawn in place of interior cells
	OutsideMark   rune   // drawn in place of other non-loop cells
}

// DefaultOptions returns coloured box-drawing output.
func DefaultOptions() Options {
	return Options{
		Color:         true,
		BoxDrawing:    true,
		LoopColor:     "green",
		InteriorColor: "yellow",
		InteriorMark:  'I',
		OutsideMark:   '.',
	}
}

// Grid writes g one row per line. Loop cells keep their pipe shape (Start
// stays 'S'), interior cells become InteriorMark and the rest OutsideMark.
func Grid(w io.Writer, g *pipegrid.Grid, l *pipegrid.Loop, opts Options) error {
	interior := make(map[pipegrid.Coord]bool)
	for _, c := range pipegrid.InteriorCells(g, l) {
		interior[c] = true
	}

	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := pipegrid.Coord{Row: row, Col: col}
			t, _ := g.At(c)
			switch {
			case l.Contains(c):
				writeCell(&b, loopRune(t, opts), opts.LoopColor, opts.Color)
			case interior[c]:
				writeCell(&b, opts.InteriorMark, opts.InteriorColor, opts.Color)
			default:
				b.WriteRune(opts.OutsideMark)
			}
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func loopRune(t pipegrid.Tile, opts Options) rune {
	r := t.Glyph()
	if !opts.BoxDrawing {
		return r
	}
	if box, ok := boxRunes[r]; ok {
		return box
	}
	return r
}

func writeCell(b *strings.Builder, r rune, color string, useColor bool) {
	if !useColor {
		b.WriteRune(r)
		return
	}
	b.WriteString(ansi.FGColorName(color))
	b.WriteRune(r)
	b.WriteString(ansi.Clear)
}
