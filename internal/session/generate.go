package session

import (
	"strings"
	"time"
)

// SentinelNoModel is returned by Generate when no model is loaded. This is a
// normal observable outcome, not an error.
const SentinelNoModel = "Offline model is not loaded."

// Generate produces a deterministic stub response for prompt. When a model is
// loaded the response echoes the model label and the trailing bytes of the
// prompt; otherwise it returns SentinelNoModel. maxTokens and temperature are
// accepted but unused: they are reserved for a real inference backend and
// never affect the output. Generate does not fail.
func (s *Session) Generate(prompt string, maxTokens int, temperature float32) string {
	_ = maxTokens
	_ = temperature

	s.mu.Lock()
	s.generations++
	loaded := s.loaded
	path := s.loadedPath
	if loaded {
		s.lastUsed = time.Now()
	}
	limit := s.tailLimit
	s.mu.Unlock()

	if !loaded {
		s.publisher.Publish(Event{Name: "generate", Fields: map[string]any{"loaded": false}})
		return SentinelNoModel
	}

	label := modelLabel(path)
	tail := promptTail(prompt, limit)
	s.publisher.Publish(Event{Name: "generate", Path: path, Fields: map[string]any{"loaded": true, "prompt_len": len(prompt)}})
	return "Offline response (" + label + "): " + tail
}

// modelLabel extracts the trailing path segment of a model path, accepting
// both separator styles so labels survive paths written on other systems.
func modelLabel(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// promptTail truncates prompt to its trailing limit bytes.
func promptTail(prompt string, limit int) string {
	if limit > 0 && len(prompt) > limit {
		return prompt[len(prompt)-limit:]
	}
	return prompt
}
