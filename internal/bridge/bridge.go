// Package bridge exposes the session as the flat, non-throwing call surface a
// host runtime binds against: load, unload, loaded-check, and generate.
// Failures are reported through return values only; nothing escalates.
package bridge

import (
	"offlined/internal/session"
)

// Bridge wraps a Session with the boundary call surface. Strings are copied
// on the way in and results are owned by the caller, so a foreign-function
// host can release its buffers immediately after each call.
type Bridge struct {
	sess *session.Session
}

// New constructs a Bridge around sess. A nil sess gets a fresh default
// session.
func New(sess *session.Session) *Bridge {
	if sess == nil {
		sess = session.New()
	}
	return &Bridge{sess: sess}
}

// LoadModel loads the model at path, replacing any previous one. Returns
// false on empty or unreadable paths; the caller must inspect the result, no
// error is raised.
func (b *Bridge) LoadModel(path string) bool {
	return b.sess.Load(path) == nil
}

// UnloadModel resets the session to empty. Idempotent.
func (b *Bridge) UnloadModel() {
	b.sess.Unload()
}

// IsModelLoaded reports whether a model is currently loaded.
func (b *Bridge) IsModelLoaded() bool {
	return b.sess.Loaded()
}

// GenerateText produces the stub response for prompt. When no model is loaded
// it returns the sentinel text rather than failing. maxTokens and temperature
// are accepted for signature compatibility and do not affect output.
func (b *Bridge) GenerateText(prompt string, maxTokens int32, temperature float32) string {
	return b.sess.Generate(prompt, int(maxTokens), temperature)
}
