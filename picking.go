package easel

import (
	"math"
	"sort"
)

// LayerMask is a bit set of render layers. The zero value means the default
// layer (bit 0); masks intersect when they share at least one layer.
type LayerMask uint32

// DefaultLayer is the layer every camera and hit area belongs to unless a
// mask is set explicitly.
const DefaultLayer LayerMask = 1

// normalized maps the zero value onto the default layer.
func (m LayerMask) normalized() LayerMask {
	if m == 0 {
		return DefaultLayer
	}
	return m
}

// Intersects reports whether the two masks share a layer.
func (m LayerMask) Intersects(other LayerMask) bool {
	return m.normalized()&other.normalized() != 0
}

// Pickable tunes how a hit area participates in picking. A nil Pickable on a
// [HitArea] behaves as hoverable and blocking.
type Pickable struct {
	// Hoverable includes the area in pick results at all.
	Hoverable bool
	// BlockLower stops the ray at this area, hiding areas behind it.
	BlockLower bool
}

// HitArea is one circular pick target: a control handle, a selection knob.
// The circle lives on the plane z = Z, centered at (X, Y), in an oriented
// local frame (rotation, per-axis scale).
type HitArea struct {
	// ID identifies the owning entity in pick results.
	ID uint64

	X, Y, Z  float64
	Rotation float64
	// ScaleX and ScaleY stretch the circle into an ellipse in world space.
	// Zero scales make the area unpickable.
	ScaleX, ScaleY float64
	Radius         float64

	// Layers is matched against the picking camera's mask. Zero value means
	// the default layer.
	Layers LayerMask

	// Pickable is optional behavior tuning; nil means hoverable + blocking.
	Pickable *Pickable
}

// Ray is a pick ray in world space. [Camera.ViewportRay] builds one from a
// pointer position.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Hit is one pick result.
type Hit struct {
	ID uint64
	// CameraOrder is the picking camera's Order, so hit lists from several
	// cameras over the same surface can be merged front-most first.
	CameraOrder int
	// Depth is the signed distance from the camera's near plane to the hit,
	// increasing into the scene.
	Depth float64
	// Position is the world-space hit point and Normal the hit plane's
	// world-space normal.
	Position Vec3
	Normal   Vec3
}

// AreaPicker tests pick rays against circular hit areas.
type AreaPicker struct {
	// RequireMarkers restricts picking to areas that carry an explicit
	// Pickable; areas without one are invisible to the picker.
	RequireMarkers bool
}

// Pick intersects ray with every eligible area and returns the hits
// front-to-back. Areas on layers the camera does not render, areas with NaN
// placement, and (with RequireMarkers) unmarked areas are skipped. A hit
// whose area blocks lower hits ends the list; non-blocking hits accumulate.
func (p *AreaPicker) Pick(ray Ray, cam *Camera, areas []HitArea) []Hit {
	candidates := make([]HitArea, 0, len(areas))
	for _, area := range areas {
		marker := area.Pickable
		if marker == nil {
			if p.RequireMarkers {
				continue
			}
		} else if !marker.Hoverable {
			continue
		}
		if !area.Layers.Intersects(cam.Layers) {
			continue
		}
		if math.IsNaN(area.X) || math.IsNaN(area.Y) || math.IsNaN(area.Z) {
			continue
		}
		candidates = append(candidates, area)
	}

	// Front-to-back: higher world Z is closer to an orthographic camera
	// looking down -Z.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Z > candidates[j].Z
	})

	var hits []Hit
	for _, area := range candidates {
		hit, ok := intersectArea(ray, cam, area)
		if !ok {
			continue
		}
		hits = append(hits, hit)
		if area.Pickable == nil || area.Pickable.BlockLower {
			break
		}
	}
	return hits
}

// intersectArea intersects the ray with the area's image plane (z = area.Z)
// and tests the intersection against the oriented circle.
func intersectArea(ray Ray, cam *Camera, area HitArea) (Hit, bool) {
	// Plane normal is +Z for 2D sprites; a ray parallel to the plane
	// simply misses.
	if ray.Dir.Z == 0 {
		return Hit{}, false
	}
	t := (area.Z - ray.Origin.Z) / ray.Dir.Z
	if t < 0 {
		return Hit{}, false
	}

	world := Vec3{
		X: ray.Origin.X + ray.Dir.X*t,
		Y: ray.Origin.Y + ray.Dir.Y*t,
		Z: area.Z,
	}

	// Into the area's local frame: translate, unrotate, unscale.
	dx := world.X - area.X
	dy := world.Y - area.Y
	sin, cos := math.Sincos(-area.Rotation)
	lx := cos*dx - sin*dy
	ly := sin*dx + cos*dy
	if area.ScaleX == 0 || area.ScaleY == 0 {
		return Hit{}, false
	}
	lx /= area.ScaleX
	ly /= area.ScaleY

	if math.Hypot(lx, ly) >= area.Radius {
		return Hit{}, false
	}

	return Hit{
		ID:          area.ID,
		CameraOrder: cam.Order,
		Depth:       -cam.Near - world.Z,
		Position:    world,
		Normal:      Vec3{Z: 1},
	}, true
}
