package easel

import "errors"

// Translator errors. Both are recoverable per-frame conditions: the caller
// skips the update for the frame and retries on the next one.
var (
	// ErrCameraMissing is returned when the translator has no main or
	// control camera to work with.
	ErrCameraMissing = errors.New("easel: camera missing")
	// ErrViewportUnsized is returned when a camera's viewport has no size
	// yet, which makes viewport projection meaningless.
	ErrViewportUnsized = errors.New("easel: camera viewport not sized")
)

// CameraTranslator maps transforms between two cameras' viewport projections.
// Both cameras are expected to target the same surface and share viewport
// dimensions: the main camera renders content, the control camera renders an
// aligned overlay (handles, selection outlines).
//
// Results are derived per call from the cameras' current state and must not
// be cached across frames, since zoom and pan can change every frame.
type CameraTranslator struct {
	Main    *Camera
	Control *Camera
}

// ToControl maps a transform from the main camera's world space into the
// control camera's world space.
//
// The translation is carried through the viewport: the point is projected to
// viewport space with the main camera and unprojected with the control
// camera, which stays numerically faithful near the projection edges. Scale
// and rotation come from decomposing the composed affine map instead; its
// translation component is discarded. The implied z of the result is 0.
func (ct *CameraTranslator) ToControl(t Transform2D) (Transform2D, error) {
	return translate(t, ct.Main, ct.Control)
}

// ToMain maps a transform from the control camera's world space into the
// main camera's world space. Inverse of [CameraTranslator.ToControl].
func (ct *CameraTranslator) ToMain(t Transform2D) (Transform2D, error) {
	return translate(t, ct.Control, ct.Main)
}

// translate maps t from the `from` camera's world space into `to`'s.
func translate(t Transform2D, from, to *Camera) (Transform2D, error) {
	if from == nil || to == nil {
		return Transform2D{}, ErrCameraMissing
	}
	if !from.viewportSized() || !to.viewportSized() {
		return Transform2D{}, ErrViewportUnsized
	}

	sx, sy := from.WorldToScreen(t.X, t.Y)
	wx, wy := to.ScreenToWorld(sx, sy)

	// t · to⁻ᵛ · fromᵛ: how the transform looks from the target camera.
	composed := multiplyAffine(multiplyAffine(t.affine(), to.invViewMatrix), from.viewMatrix)
	if affineIsNaN(composed) {
		return Transform2D{}, ErrDegenerateGeometry
	}
	rotation, scaleX, scaleY := decomposeAffine(composed)

	return Transform2D{
		X:        wx,
		Y:        wy,
		Rotation: rotation,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
	}, nil
}

// ToControlPoint maps a bare world-space point from the main camera's view
// into the control camera's.
func (ct *CameraTranslator) ToControlPoint(p Vec2) (Vec2, error) {
	t, err := ct.ToControl(Transform2D{X: p.X, Y: p.Y, ScaleX: 1, ScaleY: 1})
	if err != nil {
		return Vec2{}, err
	}
	return Vec2{t.X, t.Y}, nil
}

// MapRectToMain maps an axis-aligned rectangle from the control camera's
// world space into the main camera's, corner by corner. Used to turn a
// rubber-band rectangle drawn on the overlay into a content-space query.
func (ct *CameraTranslator) MapRectToMain(r Rect) (Rect, error) {
	if ct.Main == nil || ct.Control == nil {
		return Rect{}, ErrCameraMissing
	}
	if !ct.Main.viewportSized() || !ct.Control.viewportSized() {
		return Rect{}, ErrViewportUnsized
	}

	ct.Main.computeViewMatrix()
	ct.Control.computeViewMatrix()
	m := multiplyAffine(ct.Main.invViewMatrix, ct.Control.viewMatrix)

	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	return RectFromCorners(Vec2{x0, y0}, Vec2{x1, y1}), nil
}
