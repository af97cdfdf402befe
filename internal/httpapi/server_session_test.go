package httpapi

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"offlined/internal/registry"
	"offlined/internal/session"
	"offlined/pkg/types"
)

// Exercises the full load/generate/unload flow against a real session and a
// registry scanned from disk, the way cmd/offlined wires them.
func TestMuxWithRealSession(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tiny.gguf"), []byte("stub"), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	reg, err := registry.LoadDir(dir)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	sess := session.New()
	mux := NewMux(sess, reg)

	// generate before load: sentinel, 200
	w := postJSON(t, mux, "/generate", `{"prompt":"hi"}`)
	var gen types.GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &gen); err != nil {
		t.Fatalf("json: %v", err)
	}
	if w.Code != http.StatusOK || gen.Response != session.SentinelNoModel {
		t.Fatalf("expected sentinel, got code=%d body=%+v", w.Code, gen)
	}

	// load by registry id
	w = postJSON(t, mux, "/load", `{"model":"tiny.gguf"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("load status=%d body=%s", w.Code, w.Body.String())
	}

	// generate now reflects the label and echoes the prompt
	w = postJSON(t, mux, "/generate", `{"prompt":"hello","max_tokens":10,"temperature":0.5}`)
	if err := json.Unmarshal(w.Body.Bytes(), &gen); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !gen.Loaded || !strings.Contains(gen.Response, "tiny.gguf") || !strings.HasSuffix(gen.Response, "hello") {
		t.Fatalf("unexpected generate body: %+v", gen)
	}

	// unload reverts generate to the sentinel
	if w = postJSON(t, mux, "/unload", `{}`); w.Code != http.StatusOK {
		t.Fatalf("unload status=%d", w.Code)
	}
	w = postJSON(t, mux, "/generate", `{"prompt":"hi"}`)
	if err := json.Unmarshal(w.Body.Bytes(), &gen); err != nil {
		t.Fatalf("json: %v", err)
	}
	if gen.Loaded || gen.Response != session.SentinelNoModel {
		t.Fatalf("expected sentinel after unload, got %+v", gen)
	}
}
