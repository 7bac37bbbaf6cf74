package orchestration

import (
	"io"
	"time"
)

// Job is one list of integers whose GCD is computed by every selected
// algorithm.
type Job struct {
	// ID is the position of the list on the command line, starting at 1.
	ID      int
	Numbers []int64
}

// JobResult is the outcome of running one algorithm over one job.
type JobResult struct {
	Job       Job
	Algorithm string
	// GCD is the computed divisor. It is meaningless if Err is non-nil.
	GCD int64
	// Duration covers the fold only.
	Duration time.Duration
	Err      error
}

// PresentationOptions selects the detail level of the comparison output.
type PresentationOptions struct {
	Verbose bool
}

// ProgressReporter receives a notification each time a job completes.
// Implementations must be safe for concurrent use when jobs run in parallel.
type ProgressReporter interface {
	ReportProgress(done, total int, out io.Writer)
}

// ProgressReporterFunc lets a plain function act as a ProgressReporter.
type ProgressReporterFunc func(done, total int, out io.Writer)

// ReportProgress calls the underlying function.
func (f ProgressReporterFunc) ReportProgress(done, total int, out io.Writer) {
	f(done, total, out)
}

// NullProgressReporter is used in quiet mode.
type NullProgressReporter struct{}

// ReportProgress does nothing.
func (NullProgressReporter) ReportProgress(int, int, io.Writer) {}

// MetricsRecorder receives one observation per completed fold.
type MetricsRecorder interface {
	ObserveGCD(algorithm string, elapsed time.Duration)
	RecordOperation(operation string, err error)
}

// NullMetricsRecorder discards every observation.
type NullMetricsRecorder struct{}

// ObserveGCD does nothing.
func (NullMetricsRecorder) ObserveGCD(string, time.Duration) {}

// RecordOperation does nothing.
func (NullMetricsRecorder) RecordOperation(string, error) {}

// ResultPresenter renders what AnalyzeComparisonResults found. The cli
// package provides the terminal implementation.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-job, per-algorithm summary.
	PresentComparisonTable(results []JobResult, out io.Writer)

	// PresentResult displays the agreed divisor of one job.
	PresentResult(result JobResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter renders fold timings.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler prints a failed job and maps it to an exit status.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
