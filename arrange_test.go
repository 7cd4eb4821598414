package easel

import (
	"math"
	"testing"
)

func TestFrameAABB(t *testing.T) {
	f := Frame{ID: 1, Translation: Vec2{1, 1}, Size: Vec2{4, 2}}
	r := f.AABB()
	assertNear(t, "x", r.X, -1)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "width", r.Width, 4)
	assertNear(t, "height", r.Height, 2)
}

func TestFrameAABBRotated(t *testing.T) {
	f := Frame{ID: 1, Translation: Vec2{1, 1}, Size: Vec2{4, 2}, Rotation: math.Pi / 2}
	r := f.AABB()
	assertNear(t, "width", r.Width, 2)
	assertNear(t, "height", r.Height, 4)
	assertVec2(t, "center", r.Center(), Vec2{1, 1})
}

func TestArrangeEmptyAndSingle(t *testing.T) {
	if got := Arrange(nil, 1, 1); len(got) != 0 {
		t.Errorf("arranging nothing returned %d placements", len(got))
	}

	frames := []Frame{{ID: 7, Translation: Vec2{3, 4}, Size: Vec2{2, 2}}}
	got := Arrange(frames, 1, 1)
	if len(got) != 1 {
		t.Fatalf("got %d placements, want 1", len(got))
	}
	assertVec2(t, "translation", got[0].Translation, Vec2{3, 4})
	if got[0].Moved {
		t.Error("single frame reported as moved")
	}
}

func TestArrangeSeparatesOverlapping(t *testing.T) {
	const gap = 0.5
	frames := []Frame{
		{ID: 1, Translation: Vec2{0, 0}, Size: Vec2{4, 4}},
		{ID: 2, Translation: Vec2{1, 1}, Size: Vec2{4, 4}},
		{ID: 3, Translation: Vec2{-1, 0.5}, Size: Vec2{3, 3}},
	}

	placements := Arrange(frames, gap, 2)
	if len(placements) != len(frames) {
		t.Fatalf("got %d placements, want %d", len(placements), len(frames))
	}

	// The last frame seeds the arrangement and must not move.
	last := placements[len(placements)-1]
	assertVec2(t, "seed translation", last.Translation, frames[2].Translation)
	if last.Moved {
		t.Error("seed frame reported as moved")
	}

	// No pair may overlap closer than the gap afterwards.
	shapes := make([]ShapePosition, len(frames))
	for i, f := range frames {
		shapes[i] = ShapePosition{
			Translation: placements[i].Translation,
			Edges:       RectEdges(f.Size, f.Rotation, 1),
		}
	}
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if shapes[i].Overlaps(shapes[j].Offset(gap - 1e-6)) {
				t.Errorf("frames %d and %d still overlap", frames[i].ID, frames[j].ID)
			}
		}
	}
}

func TestArrangePreservesOrder(t *testing.T) {
	frames := []Frame{
		{ID: 10, Translation: Vec2{0, 0}, Size: Vec2{2, 2}},
		{ID: 20, Translation: Vec2{50, 0}, Size: Vec2{2, 2}},
		{ID: 30, Translation: Vec2{0, 50}, Size: Vec2{2, 2}},
	}
	placements := Arrange(frames, 1, 1)
	for i, p := range placements {
		if p.ID != frames[i].ID {
			t.Errorf("placement %d has ID %d, want %d", i, p.ID, frames[i].ID)
		}
	}
}

func TestArrangeSnapsToSeedBoundary(t *testing.T) {
	// Candidates always come from the placed shapes' NFP boundaries, so
	// even a frame that overlaps nothing is pulled onto the boundary
	// nearest its own position. Greedy but deterministic.
	frames := []Frame{
		{ID: 1, Translation: Vec2{0, 0}, Size: Vec2{2, 2}},
		{ID: 2, Translation: Vec2{100, 100}, Size: Vec2{2, 2}},
	}
	placements := Arrange(frames, 1, 2)
	if placements[1].Moved {
		t.Error("seed frame moved")
	}
	if !placements[0].Moved {
		t.Error("frame 1 should snap onto the seed's boundary")
	}
	// Two 2x2 squares with gap 1: the NFP corner nearest the origin.
	assertVec2(t, "snapped translation", placements[0].Translation, Vec2{97, 97})
}
