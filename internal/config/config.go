// Package config parses the numlab command line and its environment
// overrides into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/logging"
	"github.com/agbru/numlab/internal/words"
)

// EnvPrefix is prepended to every environment variable read by the config.
const EnvPrefix = "NUMLAB_"

// Default values for the command line flags.
const (
	DefaultAlgo     = "all"
	DefaultZero     = "allow"
	DefaultCount    = 10
	DefaultJobs     = 1
	DefaultTimeout  = 1 * time.Minute
	DefaultLogLevel = "warn"
)

// Subcommands understood by the application.
const (
	CommandGCD     = "gcd"
	CommandCompare = "compare"
	CommandFib     = "fib"
	CommandBits    = "bits"
	CommandParse   = "parse"
	CommandWords   = "words"
	CommandFilter  = "filter"
	CommandMap     = "map"
	CommandREPL    = "repl"
)

// Commands lists the subcommands in the order they are documented.
var Commands = []string{
	CommandGCD, CommandCompare, CommandFib, CommandBits, CommandParse,
	CommandWords, CommandFilter, CommandMap, CommandREPL,
}

// Values accepted by --transform.
var Transforms = []string{"identity", "bits", "words"}

// Shells accepted by --completion.
var Shells = []string{"bash", "zsh", "fish"}

// AppConfig holds the fully resolved configuration of a numlab run.
type AppConfig struct {
	// Command is the subcommand and Args its positional arguments.
	Command string
	Args    []string

	Algo    string
	Zero    string
	Culture string
	Count   int
	Timeout time.Duration
	Jobs    int

	Quiet   bool
	Verbose bool
	NoColor bool

	OutputFile  string
	MetricsFile string
	LogLevel    string
	LogJSON     bool

	Predicate string
	Transform string

	Completion string
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Completion != "" {
		if !slices.Contains(Shells, c.Completion) {
			return apperrors.NewConfigError("unsupported shell %q for --completion (supported: %s)", c.Completion, strings.Join(Shells, ", "))
		}
		return nil
	}
	if c.Command == "" {
		return apperrors.NewConfigError("missing command (available: %s)", strings.Join(Commands, ", "))
	}
	if !slices.Contains(Commands, c.Command) {
		return apperrors.NewConfigError("unknown command %q (available: %s)", c.Command, strings.Join(Commands, ", "))
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm '%s'. Valid algorithms are: 'all' or one of [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Zero != "allow" && c.Zero != "reject" {
		return apperrors.NewConfigError("invalid --zero value %q (expected allow or reject)", c.Zero)
	}
	if c.Count <= 0 {
		return apperrors.NewConfigError("--count must be greater than zero, got %d", c.Count)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Jobs < 1 {
		return apperrors.NewConfigError("--jobs must be at least 1, got %d", c.Jobs)
	}
	if _, err := words.LookupCulture(c.Culture); err != nil {
		return apperrors.NewConfigError("invalid --culture: %v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid --log-level: %v", err)
	}
	if !slices.Contains(Transforms, c.Transform) {
		return apperrors.NewConfigError("unknown --transform %q (available: %s)", c.Transform, strings.Join(Transforms, ", "))
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags must precede the command; everything after the command is kept
// verbatim so negative numbers are not mistaken for flags.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] <command> [args...]\n\n", programName)
		fmt.Fprintf(errorWriter, "Commands:\n")
		for _, c := range Commands {
			fmt.Fprintf(errorWriter, "  %-8s %s\n", c, CommandHelp[c])
		}
		fmt.Fprintf(errorWriter, "\nFlags:\n")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, fmt.Sprintf("GCD algorithm to use: 'all' or one of [%s].", strings.Join(availableAlgos, ", ")))
	fs.StringVar(&config.Zero, "zero", DefaultZero, "Zero operand policy: 'allow' or 'reject'.")
	fs.StringVar(&config.Culture, "culture", words.InvariantCulture.Name, "Culture used to format numbers for 'words'.")
	fs.IntVar(&config.Count, "count", DefaultCount, "Number of Fibonacci terms to generate.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for a command.")
	fs.IntVar(&config.Jobs, "jobs", DefaultJobs, "Number of 'compare' lists processed concurrently.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print only results.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Show additional details such as memory usage.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the command result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file on exit.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: trace, debug, info, warn, error.")
	fs.BoolVar(&config.LogJSON, "log-json", false, "Emit logs as JSON instead of console text.")
	fs.StringVar(&config.Predicate, "predicate", "even", "Predicate for 'filter': even, odd, all, contains=<digit>.")
	fs.StringVar(&config.Transform, "transform", "identity", fmt.Sprintf("Transformer for 'map': %s.", strings.Join(Transforms, ", ")))
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script for the given shell (bash, zsh, fish).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	config.Zero = strings.ToLower(config.Zero)
	if rest := fs.Args(); len(rest) > 0 {
		config.Command = strings.ToLower(rest[0])
		config.Args = rest[1:]
	}

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// CommandHelp holds the one-line description of each command.
var CommandHelp = map[string]string{
	CommandGCD:     "GCD of a list of integers with the selected algorithm(s)",
	CommandCompare: "time Euclid and Stein on lists separated by ',' or '--'",
	CommandFib:     "print the first --count Fibonacci numbers",
	CommandBits:    "IEEE-754 bit pattern of each value",
	CommandParse:   "decode a 64-character IEEE-754 bit pattern",
	CommandWords:   "spell each value in words",
	CommandFilter:  "keep the integers matching --predicate",
	CommandMap:     "apply --transform to each value",
	CommandREPL:    "start an interactive session",
}
