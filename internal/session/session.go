package session

import (
	"sync"
	"time"
)

// Session holds the single-slot model state. loadedPath is non-empty exactly
// when loaded is true; every mutation preserves that invariant. One lock
// guards all operations so concurrent host callers are safe.
type Session struct {
	mu         sync.RWMutex
	loaded     bool
	loadedPath string
	loadID     string
	lastUsed   time.Time

	loads       uint64
	unloads     uint64
	generations uint64

	tailLimit int
	verify    VerifyFunc
	publisher EventPublisher
	startTime time.Time
}

// New constructs a Session with package defaults.
func New() *Session {
	return NewWithConfig(SessionConfig{})
}

// Loaded reports whether a model is currently loaded. Pure read, no side
// effects.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a read-only view of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{State: StateUnloaded, LastUsed: s.lastUsed}
	if s.loaded {
		snap.State = StateLoaded
		snap.CurrentModel = &LoadedModel{
			Path:   s.loadedPath,
			Label:  modelLabel(s.loadedPath),
			LoadID: s.loadID,
		}
	}
	return snap
}
