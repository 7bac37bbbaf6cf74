package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// decode parses the single JSON entry written to buf.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON log entry %q: %v", buf.String(), err)
	}
	return entry
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	tests := []struct {
		field Field
		key   string
		value any
	}{
		{String("algorithm", "stein"), "algorithm", "stein"},
		{Int("job", 3), "job", 3},
		{Int64("gcd", -12), "gcd", int64(-12)},
		{Uint64("index", 90), "index", uint64(90)},
		{Float64("value", 255.255), "value", 255.255},
		{Duration("elapsed", time.Microsecond), "elapsed", time.Microsecond},
		{Err(cause), "error", cause},
	}
	for _, tt := range tests {
		if tt.field.Key != tt.key || tt.field.Value != tt.value {
			t.Errorf("field = %+v, want %s=%v", tt.field, tt.key, tt.value)
		}
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		log     func(Logger)
		level   string
		message string
	}{
		{"info", func(l Logger) { l.Info("sequence generated") }, "info", "sequence generated"},
		{"debug", func(l Logger) { l.Debug("gcd fold completed") }, "debug", "gcd fold completed"},
		{"error", func(l Logger) { l.Error("write failed", errors.New("disk full")) }, "error", "write failed"},
		{"printf", func(l Logger) { l.Printf("%d terms", 12) }, "info", "12 terms"},
		{"println", func(l Logger) { l.Println("gcd", 6) }, "info", "gcd 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf)))
			entry := decode(t, &buf)
			if entry["level"] != tt.level || entry["message"] != tt.message {
				t.Errorf("entry = %v, want level %s message %q", entry, tt.level, tt.message)
			}
		})
	}
}

func TestZerologAdapter_Fields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf))
	logger.Error("gcd fold rejected", errors.New("must not contain zero"),
		String("algorithm", "euclid"),
		Int("job", 2),
		Int64("gcd", 24),
		Uint64("terms", 7),
		Float64("ratio", 0.5),
		Field{Key: "strict", Value: true},
		Field{Key: "numbers", Value: []int64{1, 2}},
	)

	entry := decode(t, &buf)
	want := map[string]any{
		"error":     "must not contain zero",
		"algorithm": "euclid",
		"job":       float64(2),
		"gcd":       float64(24),
		"terms":     float64(7),
		"ratio":     0.5,
		"strict":    true,
	}
	for key, value := range want {
		if entry[key] != value {
			t.Errorf("%s = %v (%T), want %v", key, entry[key], entry[key], value)
		}
	}
	if numbers, ok := entry["numbers"].([]any); !ok || len(numbers) != 2 {
		t.Errorf("numbers = %v, want a two-element array", entry["numbers"])
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "orchestration").Info("started", Duration("timeout", time.Minute))
	entry := decode(t, &buf)
	if entry["component"] != "orchestration" {
		t.Errorf("component = %v", entry["component"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("NewLogger entries should carry a timestamp")
	}
	if _, ok := entry["timeout"]; !ok {
		t.Error("duration field missing")
	}
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewConsoleLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "numlab", zerolog.InfoLevel, true)
	logger.Debug("hidden")
	logger.Info("command started", String("command", "gcd"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %q", out)
	}
	for _, want := range []string{"command started", "command=gcd", "component=numlab"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q: %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("noColor console output contains escape codes: %q", out)
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		log  func(Logger)
		want string
	}{
		{"info", func(l Logger) { l.Info("ready", Int("jobs", 2)) }, "[INFO] ready jobs=2\n"},
		{"debug", func(l Logger) { l.Debug("fold", String("algorithm", "stein")) }, "[DEBUG] fold algorithm=stein\n"},
		{"error", func(l Logger) { l.Error("failed", errors.New("timeout")) }, "[ERROR] failed: timeout\n"},
		{"printf", func(l Logger) { l.Printf("F(%d)", 10) }, "F(10)\n"},
		{"println", func(l Logger) { l.Println("a", 1) }, "a 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"trace", zerolog.TraceLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, error %v", tt.name, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	logger := Nop()
	logger.Info("ignored", String("k", "v"))
	logger.Error("ignored", errors.New("x"))
	logger.Printf("%s", "ignored")
}

var (
	_ Logger = (*ZerologAdapter)(nil)
	_ Logger = (*StdLoggerAdapter)(nil)
)
