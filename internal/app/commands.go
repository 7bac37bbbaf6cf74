package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/numlab/internal/cli"
	"github.com/agbru/numlab/internal/config"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/gcd"
	"github.com/agbru/numlab/internal/ieee754"
	"github.com/agbru/numlab/internal/logging"
	"github.com/agbru/numlab/internal/metrics"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/transform"
	"github.com/agbru/numlab/internal/ui"
	"github.com/agbru/numlab/internal/words"
)

// generateSequence produces the lazy Fibonacci sequence for the fib command.
// The gmp build replaces it with the GMP-backed generator.
var generateSequence = fibonacci.Generate

func (a *Application) dispatch(ctx context.Context, out io.Writer) int {
	switch a.Config.Command {
	case config.CommandGCD:
		return a.runGCD(ctx, out)
	case config.CommandCompare:
		return a.runCompare(ctx, out)
	case config.CommandFib:
		return a.runFib(ctx, out)
	case config.CommandBits:
		return a.runBits(out)
	case config.CommandParse:
		return a.runParse(out)
	case config.CommandWords:
		return a.runWords(out)
	case config.CommandFilter:
		return a.runFilter(out)
	case config.CommandMap:
		return a.runMap(out)
	case config.CommandREPL:
		return a.runREPL(out)
	}
	return a.fail(a.Config.Command, apperrors.NewConfigError("unknown command %q", a.Config.Command))
}

func (a *Application) zeroPolicy() gcd.ZeroPolicy {
	p, err := gcd.ParseZeroPolicy(a.Config.Zero)
	if err != nil {
		return gcd.AllowZero
	}
	return p
}

func (a *Application) culture() words.Culture {
	c, err := words.LookupCulture(a.Config.Culture)
	if err != nil {
		return words.InvariantCulture
	}
	return c
}

// runGCD computes the divisor of a single list.
func (a *Application) runGCD(ctx context.Context, out io.Writer) int {
	numbers, err := cli.ParseIntegers(a.Config.Args)
	if err != nil {
		return a.fail(config.CommandGCD, err)
	}
	return a.runJobs(ctx, []orchestration.Job{{ID: 1, Numbers: numbers}}, out)
}

// runCompare computes the divisor of every list separated by "," or "--".
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	lists := cli.SplitLists(a.Config.Args)
	if len(lists) == 0 {
		return a.fail(config.CommandCompare, apperrors.InvalidArgument("numbers", "no list to compare"))
	}
	jobs := make([]orchestration.Job, 0, len(lists))
	for i, list := range lists {
		numbers, err := cli.ParseIntegers(list)
		if err != nil {
			return a.fail(config.CommandCompare, err)
		}
		jobs = append(jobs, orchestration.Job{ID: i + 1, Numbers: numbers})
	}
	return a.runJobs(ctx, jobs, out)
}

func (a *Application) runJobs(ctx context.Context, jobs []orchestration.Job, out io.Writer) int {
	algorithms := orchestration.GetAlgorithmsToRun(a.Config.Algo, a.Registry)
	if len(algorithms) == 0 {
		return a.fail(a.Config.Command, apperrors.NewConfigError("no algorithm matches %q", a.Config.Algo))
	}

	opts := orchestration.Options{
		Concurrency: a.Config.Jobs,
		ZeroPolicy:  a.zeroPolicy(),
		Timeout:     a.Config.Timeout,
		Reporter:    orchestration.NullProgressReporter{},
		Recorder:    a.Metrics,
		Logger:      a.Logger,
	}
	progressOut := io.Discard
	if !a.Config.Quiet {
		if a.Config.Verbose {
			cli.PrintExecutionConfig(a.Config, out)
		}
		cli.PrintExecutionMode(algorithms, len(jobs), out)
		opts.Reporter = cli.CLIProgressReporter{}
		progressOut = out
	}

	results := orchestration.ExecuteJobs(ctx, jobs, algorithms, opts, progressOut)

	if a.Config.Quiet {
		lines, err := agreedDivisors(results)
		if err != nil {
			return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
		}
		if lines == nil {
			fmt.Fprintf(a.ErrWriter, "%sInconsistent results between algorithms.%s\n", ui.ColorRed(), ui.ColorReset())
			return apperrors.ExitErrorMismatch
		}
		return a.finish(lines, out)
	}

	presOpts := orchestration.PresentationOptions{Verbose: a.Config.Verbose}
	presenter := cli.CLIResultPresenter{}
	code := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	if code != apperrors.ExitSuccess {
		return code
	}
	lines, _ := agreedDivisors(results)
	return a.finish(lines, out)
}

// agreedDivisors returns one line per job holding its divisor. It returns
// the first fold error, or nil lines when two algorithms disagree.
func agreedDivisors(results []orchestration.JobResult) ([]string, error) {
	agreed := make(map[int]int64)
	var order []orchestration.Job
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		g, seen := agreed[res.Job.ID]
		if !seen {
			agreed[res.Job.ID] = res.GCD
			order = append(order, res.Job)
			continue
		}
		if g != res.GCD {
			return nil, nil
		}
	}
	lines := make([]string, len(order))
	for i, job := range order {
		lines[i] = strconv.FormatInt(agreed[job.ID], 10)
	}
	return lines, nil
}

// runFib prints the first --count Fibonacci numbers.
func (a *Application) runFib(ctx context.Context, out io.Writer) int {
	if len(a.Config.Args) > 0 {
		return a.fail(config.CommandFib, apperrors.InvalidArgument("args", "fib takes no arguments, use --count"))
	}
	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	seq, err := generateSequence(a.Config.Count)
	if err != nil {
		return a.fail(config.CommandFib, err)
	}
	terms, err := cli.CollectSequence(ctx, seq, a.Config.Count, out, !a.Config.Quiet)
	a.Metrics.AddFibonacciTerms(len(terms))
	if err != nil {
		return a.fail(config.CommandFib, err)
	}
	a.Metrics.RecordOperation(config.CommandFib, nil)
	a.Logger.Debug("sequence generated", logging.Int("terms", len(terms)))

	lines := make([]string, len(terms))
	for i, v := range terms {
		lines[i] = v.String()
	}
	if !a.Config.Quiet {
		cli.DisplaySequence(out, terms, a.Config.Verbose)
		if a.Config.Verbose {
			cli.DisplayMemoryStats(before, collector.Snapshot(), out)
		}
	}
	return a.finish(lines, out)
}

// runBits prints the IEEE-754 bit pattern of each value.
func (a *Application) runBits(out io.Writer) int {
	values, err := parseValues(a.Config.Args)
	if err != nil {
		return a.fail(config.CommandBits, err)
	}
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = ieee754.DoubleToIEEE754(v)
		if !a.Config.Quiet {
			cli.DisplayBits(out, a.Config.Args[i], v, a.Config.Verbose)
		}
	}
	a.Metrics.RecordOperation(config.CommandBits, nil)
	return a.finish(lines, out)
}

// runParse decodes each 64-character bit pattern.
func (a *Application) runParse(out io.Writer) int {
	if len(a.Config.Args) == 0 {
		return a.fail(config.CommandParse, apperrors.InvalidArgument("bits", "at least one bit pattern is required"))
	}
	lines := make([]string, len(a.Config.Args))
	for i, bits := range a.Config.Args {
		f, err := ieee754.ParseIEEE754(bits)
		if err != nil {
			return a.fail(config.CommandParse, err)
		}
		lines[i] = strconv.FormatFloat(f, 'g', -1, 64)
		if !a.Config.Quiet {
			cli.DisplayParsed(out, bits, f)
		}
	}
	a.Metrics.RecordOperation(config.CommandParse, nil)
	return a.finish(lines, out)
}

// runWords spells each value in the configured culture.
func (a *Application) runWords(out io.Writer) int {
	values, err := parseValues(a.Config.Args)
	if err != nil {
		return a.fail(config.CommandWords, err)
	}
	spelled, err := words.RenderAll(values, a.culture())
	if err != nil {
		return a.fail(config.CommandWords, err)
	}
	if !a.Config.Quiet {
		cli.DisplayWords(out, a.Config.Args, spelled)
	}
	a.Metrics.RecordOperation(config.CommandWords, nil)
	return a.finish(spelled, out)
}

// runFilter keeps the integers matching --predicate.
func (a *Application) runFilter(out io.Writer) int {
	numbers, err := cli.ParseIntegers(a.Config.Args)
	if err != nil {
		return a.fail(config.CommandFilter, err)
	}
	predicate, err := lookupPredicate(a.Config.Predicate)
	if err != nil {
		return a.fail(config.CommandFilter, err)
	}
	kept, err := transform.Filter(numbers, predicate)
	if err != nil {
		return a.fail(config.CommandFilter, err)
	}
	if !a.Config.Quiet {
		cli.DisplayFiltered(out, a.Config.Predicate, kept, len(numbers))
	}
	a.Metrics.RecordOperation(config.CommandFilter, nil)
	lines := make([]string, len(kept))
	for i, n := range kept {
		lines[i] = strconv.FormatInt(n, 10)
	}
	return a.finish(lines, out)
}

// runMap applies --transform to each value.
func (a *Application) runMap(out io.Writer) int {
	values, err := parseValues(a.Config.Args)
	if err != nil {
		return a.fail(config.CommandMap, err)
	}
	transformer, err := lookupTransformer(a.Config.Transform, a.culture())
	if err != nil {
		return a.fail(config.CommandMap, err)
	}
	mapped, err := transform.Transform(values, transformer)
	if err != nil {
		return a.fail(config.CommandMap, err)
	}
	if !a.Config.Quiet {
		cli.DisplayMapped(out, a.Config.Transform, a.Config.Args, mapped)
	}
	a.Metrics.RecordOperation(config.CommandMap, nil)
	return a.finish(mapped, out)
}

// runREPL starts the interactive session on In and out.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Registry, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		ZeroPolicy:  a.zeroPolicy(),
		Culture:     a.culture(),
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	a.Metrics.RecordOperation(config.CommandREPL, nil)
	return apperrors.ExitSuccess
}

// parseValues parses floating-point arguments, requiring at least one.
func parseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, apperrors.InvalidArgument("values", "at least one value is required")
	}
	return cli.ParseFloats(args)
}

// lookupPredicate resolves a --predicate name: even, odd, all or
// contains=<digit>.
func lookupPredicate(name string) (transform.Predicate[int64], error) {
	switch strings.ToLower(name) {
	case "even":
		return transform.IsEven, nil
	case "odd":
		return transform.IsOdd, nil
	case "all":
		return transform.Always[int64](), nil
	}
	if digit, ok := strings.CutPrefix(name, "contains="); ok {
		if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
			return nil, apperrors.InvalidArgument("predicate", "contains= expects a single digit, got %q", digit)
		}
		return transform.ContainsDigit(int(digit[0] - '0'))
	}
	return nil, apperrors.InvalidArgument("predicate", "unknown predicate %q (available: even, odd, all, contains=<digit>)", name)
}

// lookupTransformer resolves a --transform name into a float-to-text
// transformer.
func lookupTransformer(name string, c words.Culture) (transform.Transformer[float64, string], error) {
	switch name {
	case "identity":
		identity := transform.Identity[float64]()
		return transform.TransformerFunc[float64, string](func(f float64) string {
			return strconv.FormatFloat(identity.TransformTo(f), 'g', -1, 64)
		}), nil
	case "bits":
		return transform.IEEE754Transformer{}, nil
	case "words":
		return words.NewRenderer(c), nil
	}
	return nil, apperrors.InvalidArgument("transform", "unknown transformer %q", name)
}
