// Package pipegrid treats a 2-D grid of pipe tiles as a network, finds the
// closed loop through the Start tile, and classifies the remaining cells as
// inside or outside that loop.
//
// What:
//
//   - Parse turns text rows of glyphs into an immutable Grid of Tiles.
//   - Walk follows the unique pipe loop from Start back to Start.
//   - Loop.Farthest is the step distance of the cell farthest from Start.
//   - CountInterior counts the non-loop cells enclosed by the loop, using a
//     signed-angle winding test against the loop path.
//   - ToCoreGraph exports the mutually connected pipes as a *core.Graph so
//     generic traversals (bfs) can run on the network.
//
// Glyphs:
//
//	|  North/South     -  East/West
//	L  North/East      J  North/West
//	7  South/West      F  South/East
//	S  Start           .  Ground
//
// Coordinates are (Row, Col) with Row growing southward and Col eastward.
//
// Complexity:
//
//   - Parse:          O(W×H)
//   - Walk:           O(L), L = loop length
//   - CountInterior:  O(W×H×L)
//   - ToCoreGraph:    O(W×H)
//
// Errors:
//
//   - ErrEmptyGrid:         input has no rows or no columns.
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrInvalidTileGlyph:  a character is not one of the eight glyphs.
//   - ErrStartNotFound:     no Start tile in the grid.
//   - ErrStartConnections:  Start does not have exactly two connecting pipes.
//   - ErrOutOfBoundsWalk:   the walk left the grid.
//   - ErrNotAPipe:          the walk reached a tile that cannot continue it.
package pipegrid
