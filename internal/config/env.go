package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride binds NUMLAB_<key> to the flags it stands in for. The
// variable is ignored when any of those flags was given on the command line.
type envOverride struct {
	key   string
	flags []string
	set   func(*AppConfig, string)
}

func intVar(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}
}

func durationVar(field func(*AppConfig) *time.Duration) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			*field(c) = d
		}
	}
}

func stringVar(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

func boolVar(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

var envOverrides = []envOverride{
	{"COUNT", []string{"count"}, intVar(func(c *AppConfig) *int { return &c.Count })},
	{"JOBS", []string{"jobs"}, intVar(func(c *AppConfig) *int { return &c.Jobs })},
	{"TIMEOUT", []string{"timeout"}, durationVar(func(c *AppConfig) *time.Duration { return &c.Timeout })},
	{"ALGO", []string{"algo"}, stringVar(func(c *AppConfig) *string { return &c.Algo })},
	{"ZERO", []string{"zero"}, stringVar(func(c *AppConfig) *string { return &c.Zero })},
	{"CULTURE", []string{"culture"}, stringVar(func(c *AppConfig) *string { return &c.Culture })},
	{"OUTPUT", []string{"output", "o"}, stringVar(func(c *AppConfig) *string { return &c.OutputFile })},
	{"METRICS_FILE", []string{"metrics-file"}, stringVar(func(c *AppConfig) *string { return &c.MetricsFile })},
	{"LOG_LEVEL", []string{"log-level"}, stringVar(func(c *AppConfig) *string { return &c.LogLevel })},
	{"PREDICATE", []string{"predicate"}, stringVar(func(c *AppConfig) *string { return &c.Predicate })},
	{"TRANSFORM", []string{"transform"}, stringVar(func(c *AppConfig) *string { return &c.Transform })},
	{"VERBOSE", []string{"v", "verbose"}, boolVar(func(c *AppConfig) *bool { return &c.Verbose })},
	{"QUIET", []string{"quiet", "q"}, boolVar(func(c *AppConfig) *bool { return &c.Quiet })},
	{"NO_COLOR", []string{"no-color"}, boolVar(func(c *AppConfig) *bool { return &c.NoColor })},
	{"LOG_JSON", []string{"log-json"}, boolVar(func(c *AppConfig) *bool { return &c.LogJSON })},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case. Anything else
// leaves current unchanged.
func parseBoolEnv(val string, current bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return current
}

// applyEnvOverrides fills config from the environment for every flag the
// command line left alone, so flags win over variables and variables win
// over defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

next:
	for _, o := range envOverrides {
		for _, name := range o.flags {
			if explicit[name] {
				continue next
			}
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.set(config, val)
		}
	}
}
