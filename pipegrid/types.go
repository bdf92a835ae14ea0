package pipegrid

import "strconv"

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// South points to the next row.
	South
	// East points to the next column.
	East
	// West points to the previous column.
	West
)

// Directions lists the cardinals in the order Start's neighbours are checked.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the geometric opposite of d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the row and column offsets of one step toward d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Coord addresses one grid cell.
type Coord struct {
	Row, Col int
}

// Step returns the neighbouring coordinate toward d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "row,col", which is also its vertex ID in ToCoreGraph.
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// Kind classifies a Tile.
type Kind uint8

const (
	// Ground is a non-pipe cell. It is the zero Kind.
	Ground Kind = iota
	// Start is the loop entry point; its real shape is inferred from its neighbours.
	Start
	// Pipe carries exactly two open ends.
	Pipe
)

// Tile is one cell of the grid. Ends is meaningful only for Pipe tiles.
type Tile struct {
	Kind Kind
	Ends [2]Direction
}

// pipeGlyphs maps each pipe glyph to its two open ends.
var pipeGlyphs = map[rune][2]Direction{
	'|': {North, South},
	'-': {East, West},
	'L': {North, East},
	'J': {North, West},
	'7': {South, West},
	'F': {South, East},
}

// tileFromGlyph decodes one input character.
func tileFromGlyph(r rune) (Tile, bool) {
	switch r {
	case 'S':
		return Tile{Kind: Start}, true
	case '.':
		return Tile{Kind: Ground}, true
	}
	ends, ok := pipeGlyphs[r]
	if !ok {
		return Tile{}, false
	}
	return Tile{Kind: Pipe, Ends: ends}, true
}

// Glyph returns the input character that produces t.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case Start:
		return 'S'
	case Pipe:
		for r, ends := range pipeGlyphs {
			if t.has(ends[0]) && t.has(ends[1]) {
				return r
			}
		}
	}
	return '.'
}

// Connects reports whether t is a pipe open toward d.
func (t Tile) Connects(d Direction) bool {
	return t.Kind == Pipe && t.has(d)
}

func (t Tile) has(d Direction) bool {
	return t.Ends[0] == d || t.Ends[1] == d
}

// Exit returns the open end of a pipe entered from side entry.
// ok is false when t is not a pipe or is not open toward entry.
func (t Tile) Exit(entry Direction) (exit Direction, ok bool) {
	switch {
	case t.Kind != Pipe:
		return 0, false
	case t.Ends[0] == entry:
		return t.Ends[1], true
	case t.Ends[1] == entry:
		return t.Ends[0], true
	}
	return 0, false
}

// Grid is an immutable rectangular grid of tiles stored row-major.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// Loop is the closed pipe cycle through Start.
//
// Path holds each loop cell once, in walk order, with Path[0] == Start; the
// last cell connects back to the first. Steps counts the edges traversed and
// equals len(Path).
type Loop struct {
	Start Coord
	Path  []Coord
	Steps int

	onPath map[Coord]struct{}
}

// Answer bundles both puzzle results for one grid.
type Answer struct {
	LoopLength int // steps around the loop
	Farthest   int // LoopLength / 2
	Interior   int // non-loop cells enclosed by the loop
}
