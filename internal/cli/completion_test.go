package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algorithms := []string{"euclid", "stein"}

	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _numlab_completions numlab", `algorithms="euclid stein all"`, "--output|-o|--metrics-file)", "gcd compare fib"}},
		{"zsh", []string{"#compdef numlab", "algorithms=(euclid stein all)", "'--zero[Zero operand policy]:policy:(allow reject)'", "'gcd:"}},
		{"fish", []string{"complete -c numlab -f", "-l algo -d 'GCD algorithm to use' -xa 'euclid stein all'", "-a repl"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			if err := GenerateCompletion(&out, tt.shell, algorithms); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(&bytes.Buffer{}, "powershell", nil); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestFlagRegistryCoversEveryShell(t *testing.T) {
	t.Parallel()
	for _, shell := range []string{"bash", "zsh", "fish"} {
		var out bytes.Buffer
		if err := GenerateCompletion(&out, shell, []string{"euclid"}); err != nil {
			t.Fatal(err)
		}
		for _, f := range flagRegistry {
			if !strings.Contains(out.String(), f.Long) {
				t.Errorf("%s script does not mention --%s", shell, f.Long)
			}
		}
	}
}
