package session

import "time"

// defaultPromptTailLimit bounds how much of the prompt is echoed back by the
// stub response. Longer prompts are truncated to their trailing bytes.
const defaultPromptTailLimit = 512

// VerifyFunc validates that a model path refers to a loadable model file.
// The default implementation is build-tag dependent; see verify_stub.go and
// verify_llama.go.
type VerifyFunc func(path string) error

// SessionConfig encapsulates all tunables for Session construction.
type SessionConfig struct {
	// PromptTailLimit caps the echoed prompt tail in bytes; <=0 uses the
	// package default.
	PromptTailLimit int
	// Verify overrides model path verification; nil uses the build-tagged
	// default.
	Verify VerifyFunc
	// Publisher receives lifecycle events; nil drops them.
	Publisher EventPublisher
}

// NewWithConfig constructs a Session from SessionConfig.
func NewWithConfig(cfg SessionConfig) *Session {
	s := &Session{
		tailLimit: cfg.PromptTailLimit,
		verify:    cfg.Verify,
		publisher: cfg.Publisher,
	}
	if s.tailLimit <= 0 {
		s.tailLimit = defaultPromptTailLimit
	}
	if s.verify == nil {
		s.verify = verifyModel
	}
	if s.publisher == nil {
		s.publisher = noopPublisher{}
	}
	s.startTime = time.Now()
	return s
}
