package pipegrid

import "math"

// WindingAngle sums the signed angle subtended at p by every consecutive
// pair of path vertices, wrapping from the last vertex back to the first.
// For a closed path not passing through p the result is 2π times the
// winding number of the path around p.
// Complexity: O(len(path)).
func WindingAngle(path []Coord, p Coord) float64 {
	var sum float64
	for i, a := range path {
		b := path[(i+1)%len(path)]
		sum += angleBetween(
			float64(a.Row-p.Row), float64(a.Col-p.Col),
			float64(b.Row-p.Row), float64(b.Col-p.Col),
		)
	}
	return sum
}

// WindingNumber rounds WindingAngle to whole revolutions. Its sign follows
// the traversal direction of path.
func WindingNumber(path []Coord, p Coord) int {
	return int(math.Round(WindingAngle(path, p) / (2 * math.Pi)))
}

// angleBetween returns the signed angle rotating vector (x1,y1) onto (x2,y2),
// normalised into (-π, π].
func angleBetween(x1, y1, x2, y2 float64) float64 {
	d := math.Atan2(y2, x2) - math.Atan2(y1, x1)
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Encloses reports whether p lies inside the loop, i.e. the accumulated
// winding angle has magnitude at least π. p must not be a loop cell.
func (l *Loop) Encloses(p Coord) bool {
	return math.Abs(WindingAngle(l.Path, p)) >= math.Pi
}

// Candidates returns, in row-major order, every cell eligible for
// classification: Ground tiles and Pipe tiles that are not on the loop.
func Candidates(g *Grid, l *Loop) []Coord {
	var out []Coord
	g.Each(func(c Coord, t Tile) {
		switch {
		case t.Kind == Ground:
			out = append(out, c)
		case t.Kind == Pipe && !l.Contains(c):
			out = append(out, c)
		}
	})
	return out
}

// InteriorCells returns the candidates enclosed by the loop, row-major.
// Complexity: O(W×H×L).
func InteriorCells(g *Grid, l *Loop) []Coord {
	var out []Coord
	for _, c := range Candidates(g, l) {
		if l.Encloses(c) {
			out = append(out, c)
		}
	}
	return out
}

// CountInterior returns the number of candidate cells enclosed by the loop.
func CountInterior(g *Grid, l *Loop) int {
	return len(InteriorCells(g, l))
}
