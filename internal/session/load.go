package session

import (
	"time"

	"github.com/google/uuid"
)

// Load replaces the session slot with the model at path. It fails with a
// typed error when path is empty or does not refer to a readable model file;
// on failure the slot is left empty even if a model was loaded before.
// Success unconditionally overwrites any previously loaded state.
func (s *Session) Load(path string) error {
	if path == "" {
		s.resetSlot()
		s.publisher.Publish(Event{Name: "load_failed", Fields: map[string]any{"reason": "empty path"}})
		return ErrPathEmpty()
	}
	// Verification happens outside the lock: it may touch the filesystem and
	// must not block concurrent Generate/Loaded calls.
	if err := s.verify(path); err != nil {
		s.resetSlot()
		s.publisher.Publish(Event{Name: "load_failed", Path: path, Fields: map[string]any{"error": err.Error()}})
		return ErrModelNotAccessible(path, err)
	}

	s.mu.Lock()
	s.loaded = true
	s.loadedPath = path
	s.loadID = uuid.NewString()
	s.loads++
	s.lastUsed = time.Now()
	id := s.loadID
	s.mu.Unlock()

	s.publisher.Publish(Event{Name: "load_ok", Path: path, Fields: map[string]any{"load_id": id}})
	return nil
}

// Unload resets the slot to empty. Idempotent: unloading an empty session is
// a no-op apart from the counter.
func (s *Session) Unload() {
	s.mu.Lock()
	path := s.loadedPath
	s.loaded = false
	s.loadedPath = ""
	s.loadID = ""
	s.unloads++
	s.mu.Unlock()

	s.publisher.Publish(Event{Name: "unload", Path: path, Fields: map[string]any{}})
}

// resetSlot clears the loaded state after a failed load attempt.
func (s *Session) resetSlot() {
	s.mu.Lock()
	s.loaded = false
	s.loadedPath = ""
	s.loadID = ""
	s.mu.Unlock()
}
