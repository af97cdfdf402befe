package session

import "time"

// State represents the lifecycle state of the session.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoaded   State = "loaded"
)

// LoadedModel is a minimal view of the currently loaded model.
type LoadedModel struct {
	Path   string
	Label  string
	LoadID string
}

// Snapshot is a read-only projection of the session state.
type Snapshot struct {
	State        State
	CurrentModel *LoadedModel
	LastUsed     time.Time
}
