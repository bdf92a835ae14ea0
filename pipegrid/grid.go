package pipegrid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from rows of glyphs separated by newlines. Surrounding
// whitespace of the text and of each row is ignored.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidTileGlyph.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	g := &Grid{Height: len(lines)}
	for row, line := range lines {
		line = strings.TrimSpace(line)
		col := 0
		for _, r := range line {
			tile, ok := tileFromGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, col %d", ErrInvalidTileGlyph, r, row, col)
			}
			g.tiles = append(g.tiles, tile)
			col++
		}
		if row == 0 {
			g.Width = col
			continue
		}
		if col != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, row, col, g.Width)
		}
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the tile at c; ok is false outside the grid.
func (g *Grid) At(c Coord) (t Tile, ok bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.tiles[g.index(c)], true
}

// index maps c to its row-major position.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, t Tile)) {
	for i, t := range g.tiles {
		fn(g.Coordinate(i), t)
	}
}

// FindStart returns the first Start tile in row-major order.
func (g *Grid) FindStart() (Coord, error) {
	for i, t := range g.tiles {
		if t.Kind == Start {
			return g.Coordinate(i), nil
		}
	}
	return Coord{}, ErrStartNotFound
}

// StartConnections returns, in North, South, East, West order, every
// direction from start whose neighbour is a pipe open back toward start.
// Neighbours outside the grid never connect. Returns ErrStartConnections
// (together with what was found) unless exactly two directions qualify.
func (g *Grid) StartConnections(start Coord) ([]Direction, error) {
	var dirs []Direction
	for _, d := range Directions {
		if t, ok := g.At(start.Step(d)); ok && t.Connects(d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 {
		return dirs, fmt.Errorf("%w: %s connects %v", ErrStartConnections, start, dirs)
	}
	return dirs, nil
}

// StartShape infers the pipe hidden under the Start tile.
func (g *Grid) StartShape() (Tile, error) {
	start, err := g.FindStart()
	if err != nil {
		return Tile{}, err
	}
	dirs, err := g.StartConnections(start)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Kind: Pipe, Ends: [2]Direction{dirs[0], dirs[1]}}, nil
}

// String renders the grid back to its glyphs, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.tiles) + g.Height)
	for i, t := range g.tiles {
		if i > 0 && i%g.Width == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(t.Glyph())
	}
	return b.String()
}
