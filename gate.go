package easel

// FrameGate is a one-shot delayed-initialization gate: an explicit state
// machine that fires exactly once, on the n-th tick. Use it for work that
// must wait a fixed number of frames (e.g. until viewports have been laid
// out) without hooking into any scheduler.
type FrameGate struct {
	remaining int
	done      bool
}

// NewFrameGate creates a gate that fires on the n-th call to Tick. n <= 1
// fires on the first call.
func NewFrameGate(n int) *FrameGate {
	if n < 1 {
		n = 1
	}
	return &FrameGate{remaining: n}
}

// Tick advances the gate one frame and reports true exactly once, on the
// firing frame. All later calls return false.
func (g *FrameGate) Tick() bool {
	if g.done {
		return false
	}
	g.remaining--
	if g.remaining > 0 {
		return false
	}
	g.done = true
	return true
}

// Done reports whether the gate has fired.
func (g *FrameGate) Done() bool {
	return g.done
}
