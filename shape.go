package easel

// ShapePosition is a positioned convex polygon: a translation interpreted as
// the shape's centroid in arrangement space, plus the edge vectors of its
// outline. Instances are built fresh per operation from a sprite's transform
// and size, consumed immediately, and never persisted.
type ShapePosition struct {
	Translation Vec2
	Edges       EdgeVectors
}

// Vertices reconstructs the polygon's vertices in arrangement space. Local
// vertices are re-centered by subtracting their centroid and then translated,
// so the centroid of the returned polygon equals Translation exactly.
func (s ShapePosition) Vertices() []Vec2 {
	vertices := s.Edges.LocalVertices()
	if len(vertices) == 0 {
		return vertices
	}

	var centroid Vec2
	for _, v := range vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Scale(1 / float64(len(vertices)))

	for i := range vertices {
		vertices[i] = vertices[i].Sub(centroid).Add(s.Translation)
	}
	return vertices
}

// Offset buffers the polygon outward by width: each vertex moves along the
// sum of its two adjacent edges' unit outward normals. Exact for rectangles;
// an approximation for convex polygons with non-right corners. The returned
// shape's translation is re-centered on the offset polygon's centroid, so
// offsetting never silently drifts the nominal translation.
func (s ShapePosition) Offset(width float64) ShapePosition {
	vertices := s.Vertices()
	n := len(vertices)
	if n == 0 {
		return s
	}

	// Unit outward normal of each CCW edge.
	normals := make([]Vec2, n)
	for i, edge := range s.Edges {
		normals[i] = Vec2{edge.Y, -edge.X}.Normalize()
	}

	offset := make([]Vec2, n)
	var centroid Vec2
	for i := range vertices {
		// Vertex i sits between incoming edge i-1 and outgoing edge i.
		shift := normals[(i+n-1)%n].Add(normals[i]).Scale(width)
		offset[i] = vertices[i].Add(shift)
		centroid = centroid.Add(offset[i])
	}
	centroid = centroid.Scale(1 / float64(n))

	return ShapePosition{
		Translation: centroid,
		Edges:       EdgesFromVertices(offset),
	}
}

// Overlaps reports whether two convex shapes overlap, by the separating axis
// theorem: the shapes overlap iff their vertex projections intersect on every
// edge-normal axis of both shapes. Touching boundaries do not count as
// overlap, so shapes placed exactly at a gap boundary are accepted.
//
// The axis set is both polygons' full edge-normal sets; parallel axes are not
// deduplicated, which only costs redundant projections.
func (s ShapePosition) Overlaps(other ShapePosition) bool {
	a := s.Vertices()
	b := other.Vertices()
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return !hasSeparatingAxis(s.Edges, a, b) && !hasSeparatingAxis(other.Edges, a, b)
}

// hasSeparatingAxis tests the edge-normal axes of one polygon's edge set
// against both vertex sets.
func hasSeparatingAxis(edges EdgeVectors, a, b []Vec2) bool {
	for _, edge := range edges {
		axis := Vec2{edge.Y, -edge.X}
		if axis.X == 0 && axis.Y == 0 {
			continue
		}
		aMin, aMax := project(a, axis)
		bMin, bMax := project(b, axis)
		if aMax <= bMin || bMax <= aMin {
			return true
		}
	}
	return false
}

// project returns the min and max of the vertices' projections onto axis.
// The axis need not be normalized; both intervals share its length factor.
func project(vertices []Vec2, axis Vec2) (min, max float64) {
	min = vertices[0].Dot(axis)
	max = min
	for _, v := range vertices[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// ContainsPoint reports whether a point lies inside a convex CCW polygon:
// the cross product of each edge with the vertex-to-point vector must keep a
// single sign all the way around. A lighter-weight alternative to the full
// SAT test when only a point is being classified.
func ContainsPoint(polygon []Vec2, p Vec2) bool {
	var (
		signSet  bool
		positive bool
	)
	for i, a := range polygon {
		b := polygon[(i+1)%len(polygon)]
		cross := b.Sub(a).PerpDot(p.Sub(a))

		if !signSet {
			signSet = true
			positive = cross > 0
			continue
		}
		if positive != (cross > 0) {
			return false
		}
	}
	return true
}
