package easel

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateGeometry is returned when a polygon contains NaN coordinates.
// NaN corrupts comparison-based sorts and index selection, so it is rejected
// up front instead of propagating through the arithmetic.
var ErrDegenerateGeometry = errors.New("easel: degenerate geometry (NaN coordinate)")

// EdgeVectors represents a closed convex polygon as the ordered sequence of
// its edge vectors, walked counter-clockwise. The vectors sum to zero.
//
// The representation is never mutated in place; all transformations return
// new instances.
type EdgeVectors []Vec2

// RectEdges builds the edge vectors of a rectangle with the given extents,
// rotated by rotation radians. subdivisions >= 2 splits each of the four
// edges into that many equal parts, which makes Minkowski-sum offsetting
// smoother; values <= 1 leave the edges whole.
//
// A size with a zero or negative component produces a degenerate polygon;
// avoiding that is the caller's responsibility.
func RectEdges(size Vec2, rotation float64, subdivisions int) EdgeVectors {
	sin, cos := math.Sincos(rotation)
	rotate := func(v Vec2) Vec2 {
		return Vec2{cos*v.X - sin*v.Y, sin*v.X + cos*v.Y}
	}

	edges := EdgeVectors{
		rotate(Vec2{0, -size.Y}),
		rotate(Vec2{size.X, 0}),
		rotate(Vec2{0, size.Y}),
		rotate(Vec2{-size.X, 0}),
	}
	return edges.Subdivide(subdivisions)
}

// EdgesFromVertices derives edge vectors as consecutive differences of a
// closed vertex loop, wrapping from the last vertex back to the first.
func EdgesFromVertices(vertices []Vec2) EdgeVectors {
	edges := make(EdgeVectors, len(vertices))
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edges[i] = next.Sub(v)
	}
	return edges
}

// LocalVertices produces the polygon's vertices in local space by running a
// cumulative sum over the edge vectors, starting at the origin. The result
// has exactly len(e) vertices; the closing vertex (which would return to the
// origin) is omitted. The receiver is not mutated and the sequence can be
// regenerated any number of times.
func (e EdgeVectors) LocalVertices() []Vec2 {
	vertices := make([]Vec2, len(e))
	var acc Vec2
	for i, edge := range e {
		vertices[i] = acc
		acc = acc.Add(edge)
	}
	return vertices
}

// Neg returns the edge vectors of the polygon reflected through its
// reference point. Each edge is rotated half a turn, so the cyclic
// counter-clockwise order is preserved.
func (e EdgeVectors) Neg() EdgeVectors {
	negated := make(EdgeVectors, len(e))
	for i, edge := range e {
		negated[i] = Vec2{-edge.X, -edge.Y}
	}
	return negated
}

// Subdivide splits every edge into n equal sub-edges. n <= 1 returns the
// receiver unchanged.
func (e EdgeVectors) Subdivide(n int) EdgeVectors {
	if n <= 1 {
		return e
	}
	out := make(EdgeVectors, 0, len(e)*n)
	inv := 1.0 / float64(n)
	for _, edge := range e {
		part := edge.Scale(inv)
		for i := 0; i < n; i++ {
			out = append(out, part)
		}
	}
	return out
}

// startIndex returns the index of the bottom-left-most vertex
// (lexicographically smallest by (y, x)). The edge at that index is the
// first edge of the polygon's angle-sorted walk, which is the canonical
// starting point for the Minkowski merge.
func (e EdgeVectors) startIndex() (int, error) {
	vertices := e.LocalVertices()
	best := 0
	for i, v := range vertices {
		if v.IsNaN() {
			return 0, fmt.Errorf("%w: vertex %d = (%v, %v)", ErrDegenerateGeometry, i, v.X, v.Y)
		}
		if v.Y < vertices[best].Y || (v.Y == vertices[best].Y && v.X < vertices[best].X) {
			best = i
		}
	}
	return best, nil
}

// MinkowskiSum computes the Minkowski sum of two convex CCW polygons by an
// angle-sweep merge of their edge vectors.
//
// Each polygon's walk starts at its bottom-left-most vertex, so both edge
// sequences are sorted by polar angle from a common origin direction. The
// merge repeatedly compares the current edges by perp-dot sign, consuming
// from a while its edge turns no further than b's (cross >= 0) and from b
// symmetrically (cross <= 0); an exact tie consumes both in one step, which
// merges parallel edges. Consumption is tracked per polygon rather than by
// wrapping index equality, so polygons with differing edge counts merge
// correctly. Without ties the result has exactly len(a)+len(b) edges.
func MinkowskiSum(a, b EdgeVectors) (EdgeVectors, error) {
	ai, err := a.startIndex()
	if err != nil {
		return nil, err
	}
	bi, err := b.startIndex()
	if err != nil {
		return nil, err
	}

	var (
		pos       Vec2
		vertices  []Vec2
		consumedA int
		consumedB int
	)

	for consumedA < len(a) || consumedB < len(b) {
		switch {
		case consumedA == len(a):
			pos = pos.Add(b[bi])
			bi = (bi + 1) % len(b)
			consumedB++
		case consumedB == len(b):
			pos = pos.Add(a[ai])
			ai = (ai + 1) % len(a)
			consumedA++
		default:
			cross := a[ai].PerpDot(b[bi])
			if math.IsNaN(cross) {
				return nil, fmt.Errorf("%w: perp-dot of %v and %v", ErrDegenerateGeometry, a[ai], b[bi])
			}
			if cross >= 0 {
				pos = pos.Add(a[ai])
				ai = (ai + 1) % len(a)
				consumedA++
			}
			if cross <= 0 {
				pos = pos.Add(b[bi])
				bi = (bi + 1) % len(b)
				consumedB++
			}
		}
		vertices = append(vertices, pos)
	}

	return EdgesFromVertices(vertices), nil
}
