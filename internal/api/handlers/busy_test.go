package handlers

import "testing"

func TestBusyGuardRejectsConcurrentAcquire(t *testing.T) {
	g := NewBusyGuard()

	if !g.Acquire("s1") {
		t.Fatal("first acquire should succeed")
	}
	if g.Acquire("s1") {
		t.Fatal("second acquire for the same session should fail")
	}
	if !g.Acquire("s2") {
		t.Fatal("acquire for a different session should succeed")
	}

	g.Release("s1")
	if !g.Acquire("s1") {
		t.Fatal("acquire after release should succeed")
	}
}
