package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/format"
	"github.com/agbru/numlab/internal/metrics"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/ui"
)

// CLIProgressReporter prints a one-line counter as compare jobs complete.
// Single-job runs print nothing.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// ReportProgress writes "Processed d/t lists", ending the line on the last job.
func (CLIProgressReporter) ReportProgress(done, total int, out io.Writer) {
	if total <= 1 {
		return
	}
	fmt.Fprintf(out, "\rProcessed %s%d%s/%d lists", ui.ColorCyan(), done, ui.ColorReset(), total)
	if done == total {
		fmt.Fprintln(out)
	}
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for GCD results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

// PresentComparisonTable displays one row per job and algorithm with the
// divisor, the elapsed ticks and the status. Column widths are computed on
// the plain text and applied through lipgloss so colour codes never skew
// the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.JobResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	headers := []string{"List", "Algorithm", "GCD", "Elapsed", "Status"}
	rows := make([][]string, len(results))
	for i, res := range results {
		gcdText, status := "-", "Success"
		if res.Err != nil {
			status = fmt.Sprintf("Failure (%v)", res.Err)
		} else {
			gcdText = fmt.Sprintf("%d", res.GCD)
		}
		rows[i] = []string{
			fmt.Sprintf("#%d", res.Job.ID),
			res.Algorithm,
			gcdText,
			format.FormatTicks(res.Duration),
			status,
		}
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = len(h)
		for _, row := range rows {
			widths[c] = max(widths[c], lipgloss.Width(row[c]))
		}
	}

	styles := ui.GetTableStyles()
	line := func(cells []string, style func(col int) lipgloss.Style) string {
		parts := make([]string, len(cells))
		for c, cell := range cells {
			if c == len(cells)-1 {
				parts[c] = style(c).Render(cell)
				continue
			}
			parts[c] = style(c).Width(widths[c]).Render(cell)
		}
		return strings.Join(parts, "   ")
	}

	fmt.Fprintln(out, line(headers, func(int) lipgloss.Style { return styles.Header }))
	for i, row := range rows {
		failed := results[i].Err != nil
		fmt.Fprintln(out, line(row, func(col int) lipgloss.Style {
			switch {
			case col == len(headers)-1 && failed:
				return styles.Bad
			case col == len(headers)-1:
				return styles.Good
			case col == 0:
				return styles.Border
			}
			return styles.Cell
		}))
	}
}

// PresentResult displays the agreed divisor of one job.
func (CLIResultPresenter) PresentResult(result orchestration.JobResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayGCDResult(out, result.Job.Numbers, result.GCD, opts.Verbose)
}

// FormatDuration formats a duration for display using the CLI's standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatTicks(d)
}

// HandleError handles calculation errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows the memory used between two snapshots.
func DisplayMemoryStats(before, after metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(after.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(after.AllocatedSince(before)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", after.NumGC-before.NumGC)
	if pause := after.PauseTotalNs - before.PauseTotalNs; pause > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pause)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
