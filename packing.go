package easel

import (
	"errors"
	"sort"
)

// ErrNoValidPlacement is returned by Fill when no candidate translation
// clears every placed shape. The caller is expected to leave the shape at
// its last valid position.
var ErrNoValidPlacement = errors.New("easel: no valid placement")

// Fill finds a translation for shape that does not overlap any of the placed
// shapes, keeping at least gap world units of clearance, and lying as close
// as possible to the shape's nominal translation. The outline is preserved;
// only the translation changes.
//
// For each placed shape the Minkowski sum of its edges and the negated edges
// of shape traces the no-fit polygon: positioned at the placed shape and
// offset outward by gap, every boundary point is a translation at which shape
// touches it at exactly the gap distance. The NFP's vertices are the
// placement candidates. Each candidate is tested for clearance against every
// placed shape (not just the one that produced it); the accepted candidate
// nearest the nominal translation wins overall.
//
// subdivisions >= 2 splits the input edges before summing, which adds
// intermediate NFP vertices and smooths the gap offset. With no placed
// shapes the shape is returned unchanged at its nominal translation.
func Fill(placed []ShapePosition, shape ShapePosition, gap float64, subdivisions int) (ShapePosition, error) {
	if len(placed) == 0 {
		return shape, nil
	}
	if shape.Translation.IsNaN() {
		return ShapePosition{}, ErrDegenerateGeometry
	}

	moving := shape.Edges.Subdivide(subdivisions).Neg()

	// Gap-offset obstacle outlines, shared by every candidate test.
	// TODO: prune these per-candidate checks with a spatial index once
	// placed sets get large; this loop dominates Fill's cost.
	obstacles := make([]ShapePosition, len(placed))
	for i, p := range placed {
		obstacles[i] = p.Offset(gap)
	}

	var (
		best     ShapePosition
		bestDist float64
		found    bool
	)

	for _, p := range placed {
		sum, err := MinkowskiSum(p.Edges.Subdivide(subdivisions), moving)
		if err != nil {
			return ShapePosition{}, err
		}

		nfp := ShapePosition{Translation: p.Translation, Edges: sum}.Offset(gap)
		candidates := nfp.Vertices()

		// Nearest candidate first; the first one that clears every
		// obstacle is this obstacle's best offer.
		sort.Slice(candidates, func(i, j int) bool {
			di := candidates[i].Sub(shape.Translation).Length()
			dj := candidates[j].Sub(shape.Translation).Length()
			return di < dj
		})

		for _, candidate := range candidates {
			trial := ShapePosition{Translation: candidate, Edges: shape.Edges}
			if overlapsAny(trial, obstacles) {
				continue
			}
			d := candidate.Sub(shape.Translation).Length()
			if !found || d < bestDist {
				best = trial
				bestDist = d
				found = true
			}
			break
		}
	}

	if !found {
		return ShapePosition{}, ErrNoValidPlacement
	}
	return best, nil
}

func overlapsAny(shape ShapePosition, obstacles []ShapePosition) bool {
	for _, obstacle := range obstacles {
		if shape.Overlaps(obstacle) {
			return true
		}
	}
	return false
}
