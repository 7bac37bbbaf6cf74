package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Build information, overridden at link time with
// -ldflags "-X github.com/agbru/numlab/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version banner. Only
// flags before the command are considered.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if slices.Contains([]string{"--version", "-version", "-V", "--V"}, arg) {
			return true
		}
		if len(arg) == 0 || arg[0] != '-' {
			return false
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numlab %s\n", Version)
	fmt.Fprintf(out, "Commit:     %s\n", Commit)
	fmt.Fprintf(out, "Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "Go version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
