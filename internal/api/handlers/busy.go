package handlers

import "sync"

// BusyGuard tracks sessions that have a batch in flight so a second
// submission cannot start before the first resolves. There is no queue:
// a concurrent submission is simply rejected.
type BusyGuard struct {
	mu   sync.Mutex
	busy map[string]bool
}

func NewBusyGuard() *BusyGuard {
	return &BusyGuard{busy: make(map[string]bool)}
}

// Acquire marks the session busy. It reports false when a batch is
// already outstanding for that session.
func (g *BusyGuard) Acquire(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy[sessionID] {
		return false
	}
	g.busy[sessionID] = true
	return true
}

func (g *BusyGuard) Release(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, sessionID)
}
