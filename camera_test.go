package easel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func testCamera() *Camera {
	return NewCamera(Rect{Width: 800, Height: 600})
}

func TestNewCameraDefaults(t *testing.T) {
	c := testCamera()
	assertNear(t, "zoom", c.Zoom, 1)
	assertNear(t, "near", c.Near, defaultNear)
	if c.BoundsEnabled {
		t.Error("bounds enabled by default")
	}
}

func TestWorldToScreenCenter(t *testing.T) {
	c := testCamera()
	sx, sy := c.WorldToScreen(0, 0)
	assertNear(t, "sx", sx, 400)
	assertNear(t, "sy", sy, 300)
}

func TestWorldToScreenZoom(t *testing.T) {
	c := testCamera()
	c.Zoom = 2
	c.MarkDirty()
	sx, sy := c.WorldToScreen(10, -5)
	assertNear(t, "sx", sx, 420)
	assertNear(t, "sy", sy, 290)
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := testCamera()
	c.X, c.Y = 37, -12
	c.Zoom = 1.75
	c.Rotation = 0.4
	c.MarkDirty()

	sx, sy := c.WorldToScreen(5, 9)
	wx, wy := c.ScreenToWorld(sx, sy)
	assertNear(t, "wx", wx, 5)
	assertNear(t, "wy", wy, 9)
}

func TestVisibleBounds(t *testing.T) {
	c := testCamera()
	c.Zoom = 2
	c.MarkDirty()
	b := c.VisibleBounds()
	assertNear(t, "x", b.X, -200)
	assertNear(t, "y", b.Y, -150)
	assertNear(t, "width", b.Width, 400)
	assertNear(t, "height", b.Height, 300)
}

func TestScrollTo(t *testing.T) {
	c := testCamera()
	c.ScrollTo(100, 50, 1.0, ease.Linear)

	c.Update(0.5)
	if math.Abs(c.X-50) > 1e-3 || math.Abs(c.Y-25) > 1e-3 {
		t.Errorf("midway position = (%v, %v), want (50, 25)", c.X, c.Y)
	}

	c.Update(0.6)
	if math.Abs(c.X-100) > 1e-3 || math.Abs(c.Y-50) > 1e-3 {
		t.Errorf("final position = (%v, %v), want (100, 50)", c.X, c.Y)
	}
}

func TestBoundsClamping(t *testing.T) {
	c := NewCamera(Rect{Width: 100, Height: 100})
	c.SetBounds(Rect{X: 0, Y: 0, Width: 200, Height: 200})
	c.X, c.Y = -100, 500
	c.Update(0)
	assertNear(t, "clamped x", c.X, 50)
	assertNear(t, "clamped y", c.Y, 150)
}

func TestBoundsSmallerThanView(t *testing.T) {
	c := NewCamera(Rect{Width: 100, Height: 100})
	c.SetBounds(Rect{X: 0, Y: 0, Width: 40, Height: 40})
	c.X, c.Y = 999, -999
	c.Update(0)
	assertNear(t, "centered x", c.X, 20)
	assertNear(t, "centered y", c.Y, 20)
}

func TestClearBounds(t *testing.T) {
	c := NewCamera(Rect{Width: 100, Height: 100})
	c.SetBounds(Rect{Width: 200, Height: 200})
	c.ClearBounds()
	c.X = -100
	c.Update(0)
	assertNear(t, "unclamped x", c.X, -100)
}

func TestViewportRay(t *testing.T) {
	c := testCamera()
	ray := c.ViewportRay(400, 300)
	assertNear(t, "origin x", ray.Origin.X, 0)
	assertNear(t, "origin y", ray.Origin.Y, 0)
	assertNear(t, "origin z", ray.Origin.Z, 1000)
	assertNear(t, "dir z", ray.Dir.Z, -1)
}

func TestViewportSized(t *testing.T) {
	c := NewCamera(Rect{})
	if c.viewportSized() {
		t.Error("zero viewport reported as sized")
	}
	c.Viewport = Rect{Width: 1, Height: 1}
	if !c.viewportSized() {
		t.Error("1x1 viewport reported as unsized")
	}
}
