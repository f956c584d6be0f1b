package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_FiltersBelowLevelAndTagsService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Service: "access-control", Output: &buf})

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var event map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if event["message"] != "kept" {
		t.Errorf("unexpected message %v", event["message"])
	}
	if event["service"] != "access-control" {
		t.Errorf("expected service field, got %v", event["service"])
	}
}

// reset tears down the singleton so the next Init rebuilds it.
func reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestInit_IsSingleton(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var first, second bytes.Buffer
	log := Init(Options{Output: &first})
	again := Init(Options{Output: &second, Level: "error"})

	again.Info().Msg("hello")
	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("second Init must be ignored: first=%q second=%q", first.String(), second.String())
	}
	if log.GetLevel() != again.GetLevel() {
		t.Errorf("second Init changed the level to %v", again.GetLevel())
	}
}

func TestInit_SetsGlobalLevel(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Init(Options{Level: "warn", Output: &bytes.Buffer{}})
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", got)
	}
}
