package easel

import "testing"

func TestFrameGateFiresOnNthTick(t *testing.T) {
	g := NewFrameGate(3)
	if g.Tick() || g.Tick() {
		t.Error("gate fired before the third tick")
	}
	if !g.Tick() {
		t.Error("gate did not fire on the third tick")
	}
	if g.Tick() || g.Tick() {
		t.Error("gate fired again after firing once")
	}
	if !g.Done() {
		t.Error("fired gate not reported done")
	}
}

func TestFrameGateImmediate(t *testing.T) {
	for _, n := range []int{0, 1, -5} {
		g := NewFrameGate(n)
		if !g.Tick() {
			t.Errorf("NewFrameGate(%d) did not fire on the first tick", n)
		}
	}
}
