package health

import "sync/atomic"

// State holds the two simulated health flags for the process. Both start
// true: a fresh process reports healthy until a toggle endpoint flips it.
// Each replica owns an independent copy; there is no cross-process store.
type State struct {
	ready atomic.Bool
	alive atomic.Bool
}

// NewState returns a State with readiness and liveness both set.
func NewState() *State {
	s := &State{}
	s.ready.Store(true)
	s.alive.Store(true)
	return s
}

// Ready reports whether the process currently claims to accept traffic.
func (s *State) Ready() bool { return s.ready.Load() }

// Alive reports whether the process currently claims to be functioning.
func (s *State) Alive() bool { return s.alive.Load() }

// ToggleReady flips the readiness flag and returns the new value.
func (s *State) ToggleReady() bool { return toggle(&s.ready) }

// ToggleAlive flips the liveness flag and returns the new value.
func (s *State) ToggleAlive() bool { return toggle(&s.alive) }

// toggle flips b atomically; concurrent callers each observe a distinct flip.
func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
