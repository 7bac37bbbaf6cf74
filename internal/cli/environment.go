package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/numlab/internal/config"
	"github.com/agbru/numlab/internal/gcd"
	"github.com/agbru/numlab/internal/ui"
)

// CPUFeatures lists the bit-manipulation instruction sets reported by the
// processor. Stein's algorithm benefits from a hardware trailing-zero count.
func CPUFeatures() []string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			ok   bool
		}{
			{"bmi1", cpu.X86.HasBMI1},
			{"bmi2", cpu.X86.HasBMI2},
			{"popcnt", cpu.X86.HasPOPCNT},
		} {
			if f.ok {
				features = append(features, f.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
	}
	return features
}

// PrintExecutionConfig displays the current execution configuration to the user.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Command %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Command, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s (%s).\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(), runtime.GOARCH)
	features := "none detected"
	if f := CPUFeatures(); len(f) > 0 {
		features = strings.Join(f, " ")
	}
	fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), features, ui.ColorReset())
	fmt.Fprintf(out, "Zero policy: %s%s%s, jobs: %s%d%s.\n",
		ui.ColorCyan(), cfg.Zero, ui.ColorReset(), ui.ColorCyan(), cfg.Jobs, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - algorithms: The algorithms that will be executed.
//   - jobs: The number of lists.
//   - out: The writer for standard output.
func PrintExecutionMode(algorithms []gcd.Algorithm, jobs int, out io.Writer) {
	var modeDesc string
	if len(algorithms) > 1 {
		names := make([]string, len(algorithms))
		for i, a := range algorithms {
			names[i] = a.Description
		}
		modeDesc = "Comparison of " + strings.Join(names, " and ")
	} else {
		modeDesc = fmt.Sprintf("Single algorithm %s%s%s", ui.ColorGreen(), algorithms[0].Description, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s over %d list(s).\n", modeDesc, jobs)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
