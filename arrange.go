package easel

// Frame is one arrangeable item as the editor sees it: an identifier plus the
// rectangle's placement in world space.
type Frame struct {
	ID          uint64
	Translation Vec2
	Size        Vec2
	Rotation    float64
}

func (f Frame) shape() ShapePosition {
	return ShapePosition{
		Translation: f.Translation,
		Edges:       RectEdges(f.Size, f.Rotation, 1),
	}
}

// AABB returns the frame's axis-aligned bounding rect in world space, used
// for rubber-band selection queries.
func (f Frame) AABB() Rect {
	vertices := f.shape().Vertices()
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return RectFromCorners(min, max)
}

// Placement is one frame's resulting translation after Arrange. Moved is
// false when the frame seeded the arrangement or could not be packed and
// kept its original translation.
type Placement struct {
	ID          uint64
	Translation Vec2
	Moved       bool
}

// Arrange packs the frames so none overlap, keeping at least gap world units
// of clearance between any two. The last frame seeds the placed set and stays
// where it is; the rest are filled in order against the growing placed set,
// each landing as close to its own position as possible. Greedy, so the
// iteration order shapes the final layout.
//
// A frame that cannot be placed keeps its original translation; the failure
// is logged, never fatal. Placements come back in frame order.
func Arrange(frames []Frame, gap float64, subdivisions int) []Placement {
	placements := make([]Placement, len(frames))
	for i, f := range frames {
		placements[i] = Placement{ID: f.ID, Translation: f.Translation}
	}
	if len(frames) < 2 {
		return placements
	}

	seed := len(frames) - 1
	placed := []ShapePosition{frames[seed].shape()}

	for i, f := range frames[:seed] {
		result, err := Fill(placed, f.shape(), gap, subdivisions)
		if err != nil {
			debugf("arrange: frame %d not packed: %v", f.ID, err)
			placed = append(placed, f.shape())
			continue
		}
		placements[i].Translation = result.Translation
		placements[i].Moved = result.Translation != f.Translation
		placed = append(placed, result)
	}
	return placements
}
