package easel

import (
	"math"
	"testing"
)

func square(center Vec2, side float64) ShapePosition {
	return ShapePosition{
		Translation: center,
		Edges:       RectEdges(Vec2{side, side}, 0, 1),
	}
}

func centroidOf(vertices []Vec2) Vec2 {
	var c Vec2
	for _, v := range vertices {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(vertices)))
}

// --- Vertices ---

func TestVerticesCentroidEqualsTranslation(t *testing.T) {
	s := ShapePosition{
		Translation: Vec2{7, -3},
		Edges:       RectEdges(Vec2{4, 2}, 0.6, 3),
	}
	assertVec2(t, "centroid", centroidOf(s.Vertices()), s.Translation)
}

func TestVerticesSquareCorners(t *testing.T) {
	vertices := square(Vec2{1, 1}, 4).Vertices()
	if len(vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(vertices))
	}
	for _, v := range vertices {
		assertNear(t, "corner |x-cx|", math.Abs(v.X-1), 2)
		assertNear(t, "corner |y-cy|", math.Abs(v.Y-1), 2)
	}
}

// --- Offset ---

func TestOffsetGrowsSquare(t *testing.T) {
	s := square(Vec2{0, 0}, 4)
	grown := s.Offset(1)
	assertVec2(t, "offset translation", grown.Translation, Vec2{})
	for _, v := range grown.Vertices() {
		assertNear(t, "offset corner |x|", math.Abs(v.X), 3)
		assertNear(t, "offset corner |y|", math.Abs(v.Y), 3)
	}
}

func TestOffsetSeparation(t *testing.T) {
	// Every offset vertex must sit at least width away from the original
	// outline along its outward normals; for an axis-aligned square that
	// means outside the half-extent plus width on at least one axis.
	s := square(Vec2{5, 5}, 6)
	const width = 0.75
	for _, v := range s.Offset(width).Vertices() {
		dx := math.Abs(v.X - 5)
		dy := math.Abs(v.Y - 5)
		if dx < 3+width-epsilon && dy < 3+width-epsilon {
			t.Errorf("offset vertex %v not separated by %v", v, width)
		}
	}
}

func TestOffsetZeroIsIdentity(t *testing.T) {
	s := ShapePosition{Translation: Vec2{2, 3}, Edges: RectEdges(Vec2{4, 2}, 0.3, 1)}
	got := s.Offset(0)
	assertVec2(t, "translation", got.Translation, s.Translation)
	orig := s.Vertices()
	for i, v := range got.Vertices() {
		assertVec2(t, "vertex", v, orig[i])
	}
}

// --- Overlaps ---

func TestOverlapsGroundTruth(t *testing.T) {
	a := square(Vec2{0, 0}, 4)
	b := square(Vec2{2, 2}, 4)
	if !a.Overlaps(b) {
		t.Error("squares at (0,0) and (2,2) with side 4 should overlap")
	}

	c := square(Vec2{0, 5.5}, 4)
	if a.Overlaps(c) {
		t.Error("squares at (0,0) and (0,5.5) with side 4 should not overlap")
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	shapes := []ShapePosition{
		square(Vec2{0, 0}, 4),
		square(Vec2{2, 2}, 4),
		square(Vec2{0, 5.5}, 4),
		{Translation: Vec2{1, -2}, Edges: RectEdges(Vec2{3, 5}, 0.8, 1)},
	}
	for i, a := range shapes {
		for j, b := range shapes {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("overlap(%d,%d) not symmetric", i, j)
			}
		}
	}
}

func TestOverlapsTouchingIsNotOverlap(t *testing.T) {
	// Shapes sharing exactly an edge sit at the gap boundary; they must be
	// accepted as non-overlapping or every NFP candidate would be rejected.
	a := square(Vec2{0, 0}, 4)
	b := square(Vec2{4, 0}, 4)
	if a.Overlaps(b) {
		t.Error("edge-touching squares reported as overlapping")
	}
}

func TestOverlapsRotated(t *testing.T) {
	a := square(Vec2{0, 0}, 2)
	// A diamond whose corner pokes into the square.
	b := ShapePosition{Translation: Vec2{2, 0}, Edges: RectEdges(Vec2{2, 2}, math.Pi/4, 1)}
	if !a.Overlaps(b) {
		t.Error("diamond corner inside square not detected")
	}
	b.Translation = Vec2{2.5, 0}
	if a.Overlaps(b) {
		t.Error("separated diamond reported as overlapping")
	}
}

// --- ContainsPoint ---

func TestContainsPointGroundTruth(t *testing.T) {
	polygon := []Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	cases := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{2, 2}, true},
		{Vec2{5, 5}, false},
		{Vec2{2, 5}, false},
		{Vec2{-2, 2}, false},
	}
	for _, c := range cases {
		if got := ContainsPoint(polygon, c.p); got != c.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}
