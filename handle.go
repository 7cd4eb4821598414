package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Pivot names an anchor on a frame's unit square.
type Pivot int

const (
	PivotBottomLeft Pivot = iota
	PivotBottomCenter
	PivotBottomRight
	PivotCenterLeft
	PivotCenterRight
	PivotTopLeft
	PivotTopCenter
	PivotTopRight
)

// Offset returns the pivot's position on the unit square centered at the
// origin, so components are in [-0.5, 0.5].
func (p Pivot) Offset() Vec2 {
	switch p {
	case PivotBottomLeft:
		return Vec2{-0.5, -0.5}
	case PivotBottomCenter:
		return Vec2{0, -0.5}
	case PivotBottomRight:
		return Vec2{0.5, -0.5}
	case PivotCenterLeft:
		return Vec2{-0.5, 0}
	case PivotCenterRight:
		return Vec2{0.5, 0}
	case PivotTopLeft:
		return Vec2{-0.5, 0.5}
	case PivotTopCenter:
		return Vec2{0, 0.5}
	case PivotTopRight:
		return Vec2{0.5, 0.5}
	}
	return Vec2{}
}

// Control-handle drawing constants, in overlay world units.
const (
	CornerHandleRadius = 6.0
	HandleStrokeWidth  = 2.0
	// RotationHandleExtension pushes the rotation knob out past the frame
	// edge so it does not sit on the corner handles.
	RotationHandleExtension = 30.0
)

// HandleOffset places a handle relative to the frame center. size is the
// frame's size in overlay space (content size times the overlay scale from
// [CameraTranslator.ToControl]).
func HandleOffset(p Pivot, size Vec2) Vec2 {
	v := p.Offset()
	return Vec2{size.X * v.X, size.Y * v.Y}
}

// RotationHandleOffset places the rotation knob: the pivot's handle position
// extended RotationHandleExtension further out along the pivot direction.
func RotationHandleOffset(p Pivot, size Vec2) Vec2 {
	v := p.Offset()
	return HandleOffset(p, size).Add(v.Normalize().Scale(RotationHandleExtension))
}

// ResizeByCorner applies a corner drag to a frame, keeping the opposite
// corner fixed: the center moves by half the drag, and the size grows by the
// drag expressed in the frame's local axes, signed per corner. delta is in
// content-camera world units. Non-corner pivots leave the frame unchanged.
func ResizeByCorner(f Frame, p Pivot, delta Vec2) Frame {
	var sign Vec2
	switch p {
	case PivotTopLeft:
		sign = Vec2{-1, 1}
	case PivotTopRight:
		sign = Vec2{1, 1}
	case PivotBottomLeft:
		sign = Vec2{-1, -1}
	case PivotBottomRight:
		sign = Vec2{1, -1}
	default:
		return f
	}

	f.Translation = f.Translation.Add(delta.Scale(0.5))

	sin, cos := math.Sincos(-f.Rotation)
	local := Vec2{
		cos*delta.X - sin*delta.Y,
		sin*delta.X + cos*delta.Y,
	}
	f.Size = f.Size.Add(Vec2{local.X * sign.X, local.Y * sign.Y})
	return f
}

// RotationFromCursor returns the frame rotation that swings the pivot's rest
// direction onto the center-to-cursor direction. Used while dragging the
// rotation knob: the knob follows the cursor around the frame center.
// Returns 0 when the cursor sits on the center.
func RotationFromCursor(p Pivot, center, cursor Vec2) float64 {
	rest := p.Offset()
	diff := cursor.Sub(center)
	if diff.Length() == 0 || rest.Length() == 0 {
		return 0
	}
	return math.Atan2(rest.PerpDot(diff), rest.Dot(diff))
}

// ResizeCursor maps the direction from a frame's center to the cursor onto
// the matching resize cursor shape. The circle is split into sixteen
// sectors, two per half-axis, so the diagonal cursors engage over the same
// arc as the axis-aligned ones. delta is cursor position minus frame
// position, in viewport coordinates.
func ResizeCursor(delta Vec2) ebiten.CursorShapeType {
	if delta.X == 0 && delta.Y == 0 {
		return ebiten.CursorShapeDefault
	}
	angle := math.Atan2(-delta.Y, delta.X) + math.Pi
	sector := int(math.Round(angle/(math.Pi/8))) % 16

	switch sector {
	case 0, 7, 8, 15:
		return ebiten.CursorShapeEWResize
	case 3, 4, 11, 12:
		return ebiten.CursorShapeNSResize
	case 1, 2, 9, 10:
		return ebiten.CursorShapeNESWResize
	default:
		return ebiten.CursorShapeNWSEResize
	}
}
