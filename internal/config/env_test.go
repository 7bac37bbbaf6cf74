package config

import (
	"bytes"
	"testing"
	"time"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NUMLAB_ALGO", "euclid")
	t.Setenv("NUMLAB_COUNT", "7")
	t.Setenv("NUMLAB_TIMEOUT", "3s")
	t.Setenv("NUMLAB_QUIET", "yes")
	t.Setenv("NUMLAB_CULTURE", "de-DE")
	t.Setenv("NUMLAB_JOBS", "not-a-number")

	cfg, err := ParseConfig("numlab", []string{"fib"}, &bytes.Buffer{}, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Algo != "euclid" {
		t.Errorf("Algo = %q, want euclid", cfg.Algo)
	}
	if cfg.Count != 7 {
		t.Errorf("Count = %d, want 7", cfg.Count)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be enabled from the environment")
	}
	if cfg.Culture != "de-DE" {
		t.Errorf("Culture = %q", cfg.Culture)
	}
	if cfg.Jobs != DefaultJobs {
		t.Errorf("invalid NUMLAB_JOBS should be ignored, got %d", cfg.Jobs)
	}
}

func TestEnvOverrides_CLITakesPrecedence(t *testing.T) {
	t.Setenv("NUMLAB_COUNT", "7")
	t.Setenv("NUMLAB_VERBOSE", "true")

	cfg, err := ParseConfig("numlab", []string{"--count", "3", "-v=false", "fib"}, &bytes.Buffer{}, testAlgos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want CLI value 3", cfg.Count)
	}
	if cfg.Verbose {
		t.Error("explicit -v=false should win over NUMLAB_VERBOSE")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
