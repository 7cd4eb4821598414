// Package easel is the geometric core of a 2D image-canvas editor for
// [Ebitengine].
//
// Easel provides the auto-arrangement engine (Minkowski-sum no-fit-polygon
// packing), the two-camera coordinate translation that keeps a control
// overlay aligned with the content view, circle-area picking for control
// handles, and the editor-side helpers around them: selection sets,
// handle geometry, transient gizmo drawing, scoped event subscriptions.
//
// # Arranging
//
// Build a [Frame] per canvas item and call [Arrange]; the result is a
// translation per frame with overlaps removed:
//
//	placements := easel.Arrange(frames, 10, 2)
//	for _, p := range placements {
//		sprites[p.ID].X, sprites[p.ID].Y = p.Translation.X, p.Translation.Y
//	}
//
// The lower-level [Fill] places a single shape against a set of obstacles;
// [MinkowskiSum], [ShapePosition.Offset] and [ShapePosition.Overlaps] are the
// geometric primitives underneath.
//
// # Cameras and the overlay
//
// An editor holds two cameras over the same viewport: a main [Camera]
// rendering content and a control camera rendering handles. A
// [CameraTranslator] maps transforms between the two so the overlay tracks
// the content under any pan, zoom, or rotation:
//
//	tr := easel.CameraTranslator{Main: mainCam, Control: controlCam}
//	overlay, err := tr.ToControl(spriteTransform)
//
// Picking runs through [Camera.ViewportRay] and [AreaPicker.Pick].
//
// ECS integration (via [Donburi] adapter in easel/ecs) forwards editor
// events to a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package easel
