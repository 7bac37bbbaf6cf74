package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/numlab/internal/cli"
	"github.com/agbru/numlab/internal/config"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/gcd"
	"github.com/agbru/numlab/internal/logging"
	"github.com/agbru/numlab/internal/metrics"
	"github.com/agbru/numlab/internal/ui"
)

// Application represents the numlab application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *gcd.Registry
	ErrWriter io.Writer
	In        io.Reader
	Logger    logging.Logger
	Metrics   *metrics.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom algorithm registry for the application.
func WithRegistry(r *gcd.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithInput sets the reader used by the interactive session.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = gcd.GlobalRegistry()
	}

	programName := "numlab"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	app.Metrics = metrics.New()
	return app, nil
}

// Run executes the configured command and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	a.Logger = a.newLogger()

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	start := time.Now()
	a.Logger.Debug("command started",
		logging.String("command", a.Config.Command),
		logging.Int("args", len(a.Config.Args)),
	)
	code := a.dispatch(ctx, out)
	a.Logger.Debug("command finished",
		logging.String("command", a.Config.Command),
		logging.Int("exit_code", code),
		logging.Duration("elapsed", time.Since(start)),
	)

	if a.Config.MetricsFile != "" {
		if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("writing metrics textfile failed", err, logging.String("path", a.Config.MetricsFile))
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// newLogger builds the diagnostic logger. Logs go to ErrWriter so they never
// mix with command output.
func (a *Application) newLogger() logging.Logger {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	if a.Config.LogJSON {
		zl := zerolog.New(a.ErrWriter).Level(level).With().Timestamp().Str("component", "numlab").Logger()
		return logging.NewZerologAdapter(zl)
	}
	return logging.NewConsoleLogger(a.ErrWriter, "numlab", level, a.Config.NoColor)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// fail reports err on ErrWriter and returns its exit code.
func (a *Application) fail(operation string, err error) int {
	a.Metrics.RecordOperation(operation, err)
	a.Logger.Debug("command failed", logging.String("operation", operation), logging.Err(err))
	return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
}

// finish prints lines in quiet mode and writes them to the output file when
// one is configured.
func (a *Application) finish(lines []string, out io.Writer) int {
	if a.Config.Quiet {
		cli.DisplayQuietLines(out, lines)
	}
	return a.saveLines(lines, out)
}

func (a *Application) saveLines(lines []string, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if err := cli.WriteResultToFile(a.Config.Command, lines, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
