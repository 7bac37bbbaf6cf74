package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/gcd"
	"github.com/agbru/numlab/internal/logging"
)

const tracerName = "github.com/agbru/numlab/internal/orchestration"

// Options configures ExecuteJobs. Zero values select sequential execution
// and no-op reporters.
type Options struct {
	// Concurrency bounds the number of jobs in flight. Values below 1 are
	// treated as 1 so timings are not disturbed by sibling jobs.
	Concurrency int
	ZeroPolicy  gcd.ZeroPolicy
	// Timeout is the deadline configured on ctx, reported in TimeoutError
	// when a fold runs past it.
	Timeout  time.Duration
	Reporter ProgressReporter
	Recorder MetricsRecorder
	Logger   logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.Reporter == nil {
		o.Reporter = NullProgressReporter{}
	}
	if o.Recorder == nil {
		o.Recorder = NullMetricsRecorder{}
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// ExecuteJobs runs every algorithm over every job and returns the results
// ordered by job, then by algorithm.
//
// Each algorithm validates and times its fold independently through
// gcd.WithTimingContext; jobs are spread over an errgroup bounded by
// opts.Concurrency. Once ctx is done, the running folds stop at their next
// cancellation check and every remaining job is marked with the context
// error, or a TimeoutError when the deadline passed.
func ExecuteJobs(ctx context.Context, jobs []Job, algorithms []gcd.Algorithm, opts Options, out io.Writer) []JobResult {
	opts = opts.withDefaults()
	results := make([]JobResult, len(jobs)*len(algorithms))
	tracer := otel.Tracer(tracerName)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	var mu sync.Mutex
	done := 0

	for i, job := range jobs {
		g.Go(func() error {
			jobCtx, span := tracer.Start(ctx, "gcd.job")
			defer span.End()
			span.SetAttributes(
				attribute.Int("numlab.job.id", job.ID),
				attribute.Int("numlab.job.size", len(job.Numbers)),
			)

			for k, alg := range algorithms {
				res := runOne(jobCtx, job, alg, opts)
				if res.Err != nil {
					span.RecordError(res.Err)
					span.SetStatus(codes.Error, res.Err.Error())
				} else {
					span.SetAttributes(attribute.Int64("numlab.gcd."+alg.Name, res.GCD))
				}
				results[i*len(algorithms)+k] = res
			}

			mu.Lock()
			done++
			opts.Reporter.ReportProgress(done, len(jobs), out)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func runOne(ctx context.Context, job Job, alg gcd.Algorithm, opts Options) JobResult {
	res := JobResult{Job: job, Algorithm: alg.Name}
	if err := ctx.Err(); err != nil {
		res.Err = interrupted(err, alg, opts)
		opts.Recorder.RecordOperation("gcd", err)
		return res
	}
	timed, err := gcd.WithTimingContext(ctx, job.Numbers, alg, gcd.WithZeroPolicy(opts.ZeroPolicy))
	opts.Recorder.RecordOperation("gcd", err)
	if apperrors.IsContextError(err) {
		res.Err = interrupted(err, alg, opts)
		opts.Logger.Debug("gcd fold interrupted",
			logging.Int("job", job.ID),
			logging.String("algorithm", alg.Name),
			logging.Err(err),
		)
		return res
	}
	if err != nil {
		res.Err = apperrors.CalculationError{Operation: alg.Name, Cause: err}
		opts.Logger.Debug("gcd fold rejected",
			logging.Int("job", job.ID),
			logging.String("algorithm", alg.Name),
			logging.Err(err),
		)
		return res
	}
	opts.Recorder.ObserveGCD(alg.Name, timed.Elapsed)
	opts.Logger.Debug("gcd fold completed",
		logging.Int("job", job.ID),
		logging.String("algorithm", alg.Name),
		logging.Int64("gcd", timed.GCD),
		logging.Duration("elapsed", timed.Elapsed),
	)
	res.GCD = timed.GCD
	res.Duration = timed.Elapsed
	return res
}

// interrupted turns the context error that stopped alg into the job error.
func interrupted(err error, alg gcd.Algorithm, opts Options) error {
	if errors.Is(err, context.DeadlineExceeded) && opts.Timeout > 0 {
		return apperrors.TimeoutError{Operation: "gcd/" + alg.Name, Limit: opts.Timeout}
	}
	return err
}

// AnalyzeComparisonResults checks that the algorithms agree on every job,
// displays the comparison table and the agreed divisors, and returns the
// process exit code.
//
// A job on which two successful algorithms disagree yields
// ExitErrorMismatch. When no fold succeeded at all, or some job failed, the
// first error is handed to errHandler.
func AnalyzeComparisonResults(results []JobResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	presenter.PresentComparisonTable(results, out)

	var firstError error
	successCount := 0
	agreed := make(map[int]JobResult)
	var order []int
	mismatch := false

	for _, res := range results {
		if res.Err != nil {
			if firstError == nil {
				firstError = res.Err
			}
			continue
		}
		successCount++
		prev, seen := agreed[res.Job.ID]
		if !seen {
			agreed[res.Job.ID] = res
			order = append(order, res.Job.ID)
			continue
		}
		if prev.GCD != res.GCD {
			mismatch = true
		}
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return errHandler.HandleError(firstError, 0, out)
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the algorithms.\n")
		return apperrors.ExitErrorMismatch
	}
	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial failure. Some lists could not be processed.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	for _, id := range order {
		presenter.PresentResult(agreed[id], opts, out)
	}
	return apperrors.ExitSuccess
}
