package pipegrid

import "fmt"

// Walk locates Start, infers its two connections and follows the loop
// leaving Start toward the first of them (North, South, East, West order).
//
// Returns ErrStartNotFound, ErrStartConnections, ErrOutOfBoundsWalk or
// ErrNotAPipe on malformed input.
// Complexity: O(W×H) for the Start scan plus O(L) for the walk.
func Walk(g *Grid) (*Loop, error) {
	start, err := g.FindStart()
	if err != nil {
		return nil, err
	}
	dirs, err := g.StartConnections(start)
	if err != nil {
		return nil, err
	}
	return walk(g, start, dirs[0])
}

// WalkFrom follows the loop leaving Start toward dir. Start's connections
// are not validated, so a dir that does not lead into a pipe open back
// toward Start fails with ErrNotAPipe or ErrOutOfBoundsWalk.
func WalkFrom(g *Grid, dir Direction) (*Loop, error) {
	start, err := g.FindStart()
	if err != nil {
		return nil, err
	}
	return walk(g, start, dir)
}

// walk advances one tile per step: the exit of each pipe is the end it was
// not entered from. It stops when the walk is back on start.
func walk(g *Grid, start Coord, exit Direction) (*Loop, error) {
	path := []Coord{start}
	cur := start
	steps := 0
	for {
		next := cur.Step(exit)
		tile, ok := g.At(next)
		if !ok {
			return nil, fmt.Errorf("%w: step %d went %s from %s", ErrOutOfBoundsWalk, steps+1, exit, cur)
		}
		steps++
		if next == start {
			break
		}
		out, ok := tile.Exit(exit.Opposite())
		if !ok {
			return nil, fmt.Errorf("%w: %q at %s entered from %s", ErrNotAPipe, tile.Glyph(), next, exit.Opposite())
		}
		path = append(path, next)
		cur, exit = next, out
	}

	return newLoop(start, path, steps), nil
}

func newLoop(start Coord, path []Coord, steps int) *Loop {
	on := make(map[Coord]struct{}, len(path))
	for _, c := range path {
		on[c] = struct{}{}
	}
	return &Loop{Start: start, Path: path, Steps: steps, onPath: on}
}

// Farthest returns the number of steps from Start to the loop cell farthest
// from it along the loop.
func (l *Loop) Farthest() int {
	return l.Steps / 2
}

// Contains reports whether c is a loop cell.
func (l *Loop) Contains(c Coord) bool {
	_, ok := l.onPath[c]
	return ok
}

// Reversed returns the same loop traversed the other way round, still
// beginning at Start.
func (l *Loop) Reversed() *Loop {
	path := make([]Coord, 0, len(l.Path))
	path = append(path, l.Start)
	for i := len(l.Path) - 1; i > 0; i-- {
		path = append(path, l.Path[i])
	}
	return newLoop(l.Start, path, l.Steps)
}
