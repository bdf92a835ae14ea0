package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input text holds no tiles.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrInvalidTileGlyph indicates an unrecognised character in the input.
	ErrInvalidTileGlyph = errors.New("pipegrid: invalid tile glyph")
	// ErrStartNotFound indicates the grid has no Start tile.
	ErrStartNotFound = errors.New("pipegrid: start tile not found")
	// ErrStartConnections indicates Start is not joined to exactly two pipes.
	ErrStartConnections = errors.New("pipegrid: start tile must connect to exactly two pipes")
	// ErrOutOfBoundsWalk indicates the walk stepped outside the grid.
	ErrOutOfBoundsWalk = errors.New("pipegrid: walk left the grid")
	// ErrNotAPipe indicates the walk stepped onto a tile that cannot continue the loop.
	ErrNotAPipe = errors.New("pipegrid: walk reached a tile that is not a connected pipe")
)
