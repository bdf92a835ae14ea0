package pipegrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/bfs"
	"github.com/katalvlaran/pipeloop/core"
)

// ToCoreGraph converts the pipe network into an undirected *core.Graph.
// Every Pipe and Start cell becomes a vertex with ID "row,col" and metadata
// {row, col, glyph}. Two orthogonal neighbours are joined when each opens
// toward the other; Start opens toward its inferred connections.
//
// Returns the Start errors of StartShape when the grid has a Start that cannot
// be resolved; a grid without Start is exported with plain pipes only.
// Complexity: O(W×H).
func ToCoreGraph(g *Grid) (*core.Graph, error) {
	startShape, err := g.StartShape()
	if err != nil && !errors.Is(err, ErrStartNotFound) {
		return nil, err
	}
	shape := func(t Tile) Tile {
		if t.Kind == Start {
			return startShape
		}
		return t
	}

	cg := core.NewGraph()
	var buildErr error
	g.Each(func(c Coord, t Tile) {
		if buildErr != nil || t.Kind == Ground {
			return
		}
		id := c.String()
		if err := cg.AddVertex(id); err != nil {
			buildErr = err
			return
		}
		v, _ := cg.Vertex(id)
		v.Metadata["row"] = c.Row
		v.Metadata["col"] = c.Col
		v.Metadata["glyph"] = string(t.Glyph())

		// East and South only, so each pair is considered once.
		for _, d := range [2]Direction{East, South} {
			n := c.Step(d)
			nt, ok := g.At(n)
			if !ok || !shape(t).Connects(d) || !shape(nt).Connects(d.Opposite()) {
				continue
			}
			if _, err := cg.AddEdge(id, n.String()); err != nil {
				buildErr = err
				return
			}
		}
	})
	if buildErr != nil {
		return nil, fmt.Errorf("pipegrid: ToCoreGraph: %w", buildErr)
	}

	return cg, nil
}

// FarthestByBFS measures the farthest loop cell from Start by running a
// breadth-first search over ToCoreGraph. On a valid grid it agrees with
// Loop.Farthest, since the component of Start is exactly the loop.
func FarthestByBFS(ctx context.Context, g *Grid) (int, error) {
	start, err := g.FindStart()
	if err != nil {
		return 0, err
	}
	cg, err := ToCoreGraph(g)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(cg, start.String(), bfs.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("pipegrid: FarthestByBFS: %w", err)
	}
	_, depth := res.Farthest()

	return depth, nil
}

// Solve parses text, walks the loop and classifies the grid.
func Solve(text string) (Answer, error) {
	g, err := Parse(text)
	if err != nil {
		return Answer{}, err
	}
	l, err := Walk(g)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		LoopLength: l.Steps,
		Farthest:   l.Farthest(),
		Interior:   CountInterior(g, l),
	}, nil
}
