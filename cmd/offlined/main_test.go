package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"offlined/internal/session"
)

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "a", "b"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestParseZerologLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"unknown": zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseZerologLevel(in); got != want {
			t.Fatalf("parseZerologLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestLogPublisherWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	p := logPublisher{log: logger}
	p.Publish(session.Event{Name: "load_ok", Path: "/m/x.gguf", Fields: map[string]any{"load_id": "abc"}})
	out := buf.String()
	if !strings.Contains(out, `"event":"load_ok"`) || !strings.Contains(out, "x.gguf") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "addr", "models-dir", "log-level"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("missing flag %q", name)
		}
	}
}
