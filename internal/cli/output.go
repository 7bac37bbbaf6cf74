// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayGCDResult], [DisplaySequence], [DisplayBits].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatNumberList], [FormatTerm].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/numlab/internal/ieee754"
	"github.com/agbru/numlab/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses decorations.
	Quiet bool
	// Verbose shows additional details.
	Verbose bool
}

// WriteResultToFile writes the lines produced by a command to a file, after
// a short commented header.
//
// Parameters:
//   - command: The subcommand that produced the lines.
//   - lines: The result lines, written verbatim.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(command string, lines []string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# numlab %s result\n", command)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Lines: %d\n\n", len(lines))
	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	return nil
}

// DisplayQuietLines outputs result lines without decoration.
func DisplayQuietLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

// FormatNumberList joins integers with ", ".
func FormatNumberList(numbers []int64) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ", ")
}

// DisplayGCDResult prints the divisor of a list.
func DisplayGCDResult(out io.Writer, numbers []int64, g int64, verbose bool) {
	fmt.Fprintf(out, "GCD(%s) = %s%d%s\n", FormatNumberList(numbers), ui.ColorGreen(), g, ui.ColorReset())
	if verbose && g > 1 {
		quotients := make([]int64, len(numbers))
		for i, n := range numbers {
			quotients[i] = n / g
		}
		fmt.Fprintf(out, "  Reduced list: %s%s%s\n", ui.ColorCyan(), FormatNumberList(quotients), ui.ColorReset())
	}
}

// FormatTerm renders a Fibonacci term, eliding the middle of very long
// values unless full is set.
func FormatTerm(v *big.Int, full bool) string {
	s := v.String()
	if full || len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%d digits)", s[:DisplayEdges], s[len(s)-DisplayEdges:], len(s))
}

// DisplaySequence prints one Fibonacci term per line, numbered from 1.
func DisplaySequence(out io.Writer, terms []*big.Int, verbose bool) {
	for i, v := range terms {
		fmt.Fprintf(out, "F(%s%d%s) = %s\n", ui.ColorMagenta(), i+1, ui.ColorReset(), FormatTerm(v, verbose))
	}
}

// DisplayBits prints the IEEE-754 pattern of a value, and its field layout
// when verbose.
func DisplayBits(out io.Writer, input string, f float64, verbose bool) {
	fmt.Fprintf(out, "%s%s%s = %s\n", ui.ColorBlue(), input, ui.ColorReset(), ieee754.DoubleToIEEE754(f))
	if verbose {
		layout := ieee754.Split(f)
		fmt.Fprintf(out, "  sign=%d exponent=%d mantissa=%#x (%s)\n", layout.Sign, layout.Exponent, layout.Mantissa, layout.Kind())
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorGrey(), layout, ui.ColorReset())
	}
}

// DisplayParsed prints the value decoded from a bit pattern.
func DisplayParsed(out io.Writer, bits string, f float64) {
	fmt.Fprintf(out, "%s = %s%s%s\n", bits, ui.ColorGreen(), strconv.FormatFloat(f, 'g', -1, 64), ui.ColorReset())
}

// DisplayWords prints values next to their spelling.
func DisplayWords(out io.Writer, inputs, spelled []string) {
	for i := range spelled {
		fmt.Fprintf(out, "%s%s%s: %s\n", ui.ColorBlue(), inputs[i], ui.ColorReset(), spelled[i])
	}
}

// DisplayFiltered prints the kept integers and how many were dropped.
func DisplayFiltered(out io.Writer, predicate string, kept []int64, total int) {
	fmt.Fprintf(out, "Filter %s%s%s kept %d of %d: [%s]\n",
		ui.ColorYellow(), predicate, ui.ColorReset(), len(kept), total, FormatNumberList(kept))
}

// DisplayMapped prints each input next to its transformed value.
func DisplayMapped(out io.Writer, transformer string, inputs, outputs []string) {
	fmt.Fprintf(out, "Transform %s%s%s:\n", ui.ColorYellow(), transformer, ui.ColorReset())
	for i := range outputs {
		fmt.Fprintf(out, "  %s -> %s\n", inputs[i], outputs[i])
	}
}
