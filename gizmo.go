package easel

import "github.com/hajimehoshi/ebiten/v2"

// DefaultGizmoTTL is how long a pushed gizmo stays on screen when no TTL is
// given.
const DefaultGizmoTTL float32 = 30 // seconds

type gizmo struct {
	remaining float32
	draw      func(*ebiten.Image)
}

// GizmoQueue holds transient debug drawings with expiry. It is a plain
// service object; create one, keep it wherever the frame loop lives, and
// call Tick once per frame. There is no process-wide queue.
type GizmoQueue struct {
	gizmos []gizmo
}

// Push schedules a draw closure for ttl seconds. ttl <= 0 uses
// DefaultGizmoTTL.
func (q *GizmoQueue) Push(ttl float32, draw func(*ebiten.Image)) {
	if ttl <= 0 {
		ttl = DefaultGizmoTTL
	}
	q.gizmos = append(q.gizmos, gizmo{remaining: ttl, draw: draw})
}

// Tick ages all gizmos by dt seconds, prunes the expired ones, and executes
// the rest against screen.
func (q *GizmoQueue) Tick(dt float32, screen *ebiten.Image) {
	live := q.gizmos[:0]
	for _, g := range q.gizmos {
		g.remaining -= dt
		if g.remaining <= 0 {
			continue
		}
		live = append(live, g)
	}
	// Zero the tail so dropped closures can be collected.
	for i := len(live); i < len(q.gizmos); i++ {
		q.gizmos[i] = gizmo{}
	}
	q.gizmos = live

	for _, g := range q.gizmos {
		g.draw(screen)
	}
}

// Len returns the number of live gizmos.
func (q *GizmoQueue) Len() int {
	return len(q.gizmos)
}
