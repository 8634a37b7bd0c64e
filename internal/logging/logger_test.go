package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewTagsAppAndFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "dynsets", zerolog.WarnLevel)

	logger.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info event should be filtered at warn level: %s", buf.String())
	}

	logger.Warn().Str("system", "tank").Msg("kept")
	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("invalid JSON event %q: %v", buf.String(), err)
	}
	if event["app"] != "dynsets" || event["system"] != "tank" || event["message"] != "kept" {
		t.Errorf("unexpected event: %v", event)
	}
}

func TestInitReadsLevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	logger := Init("dynsets")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
}
