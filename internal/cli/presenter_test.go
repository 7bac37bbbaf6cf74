package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/metrics"
	"github.com/agbru/numlab/internal/orchestration"
)

func TestPresentComparisonTable(t *testing.T) {
	withNoColor(t)
	job := orchestration.Job{ID: 1, Numbers: []int64{12, 18}}
	results := []orchestration.JobResult{
		{Job: job, Algorithm: "euclid", GCD: 6, Duration: 120},
		{Job: job, Algorithm: "stein", GCD: 6, Duration: 80},
		{Job: orchestration.Job{ID: 2}, Algorithm: "euclid", Err: errors.New("too short")},
	}

	var out bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if lines[0] != "--- Comparison Summary ---" {
		t.Errorf("title = %q", lines[0])
	}
	for _, want := range []string{"List", "Algorithm", "GCD", "Elapsed", "Status"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("header %q missing %q", lines[1], want)
		}
	}
	if !strings.Contains(lines[2], "120ns") || !strings.Contains(lines[2], "Success") {
		t.Errorf("row = %q", lines[2])
	}
	if !strings.Contains(lines[4], "Failure (too short)") {
		t.Errorf("failure row = %q", lines[4])
	}
	// Columns line up: "GCD" starts at the same offset in every row.
	col := strings.Index(lines[1], "GCD")
	if strings.Index(lines[2], "6") != col {
		t.Errorf("misaligned GCD column:\n%s\n%s", lines[1], lines[2])
	}
}

func TestPresentResult(t *testing.T) {
	withNoColor(t)
	var out bytes.Buffer
	res := orchestration.JobResult{Job: orchestration.Job{ID: 1, Numbers: []int64{594, 7920, 22374}}, GCD: 198}
	CLIResultPresenter{}.PresentResult(res, orchestration.PresentationOptions{Verbose: true}, &out)
	want := "GCD(594, 7920, 22374) = 198\n  Reduced list: 3, 40, 113\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestHandleError(t *testing.T) {
	withNoColor(t)
	var out bytes.Buffer
	code := CLIResultPresenter{}.HandleError(apperrors.InvalidArgument("numbers", "too short"), 0, &out)
	if code != apperrors.ExitErrorInput {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorInput)
	}
	if !strings.HasPrefix(out.String(), "Invalid input:") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCLIProgressReporter(t *testing.T) {
	withNoColor(t)
	var out bytes.Buffer
	r := CLIProgressReporter{}
	r.ReportProgress(1, 1, &out)
	if out.Len() != 0 {
		t.Errorf("single job should print nothing, got %q", out.String())
	}
	r.ReportProgress(1, 2, &out)
	r.ReportProgress(2, 2, &out)
	if got := out.String(); got != "\rProcessed 1/2 lists\rProcessed 2/2 lists\n" {
		t.Errorf("got %q", got)
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	before := metrics.MemorySnapshot{TotalAlloc: 1000, NumGC: 1}
	after := metrics.MemorySnapshot{TotalAlloc: 3048, HeapAlloc: 4096, NumGC: 3, PauseTotalNs: 2_500_000}
	var out bytes.Buffer
	DisplayMemoryStats(before, after, &out)
	for _, want := range []string{"Heap in use:     4.0 KiB", "Allocated:       2.0 KiB", "GC cycles:       2", "2.50ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
