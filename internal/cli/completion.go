package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/numlab/internal/config"
	"github.com/agbru/numlab/internal/words"
)

// FlagCompletion is one flag as the completion generators see it. Values
// are offered after the flag; a flag with no Values, IsFile or IsAlgo is a
// boolean switch.
type FlagCompletion struct {
	Long      string
	Short     string
	Help      string
	Values    []string
	ValueName string // zsh value label
	IsFile    bool
	IsAlgo    bool // values are the registered algorithms plus "all"
}

// flagRegistry mirrors the flags declared in internal/config.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "algo", Help: "GCD algorithm to use", IsAlgo: true, ValueName: "algorithm"},
	{Long: "zero", Help: "Zero operand policy", Values: []string{"allow", "reject"}, ValueName: "policy"},
	{Long: "culture", Help: "Number culture for words", Values: words.CultureNames(), ValueName: "culture"},
	{Long: "count", Help: "Number of Fibonacci terms", ValueName: "number"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "jobs", Help: "Lists compared concurrently", Values: []string{"1", "2", "4", "8"}, ValueName: "number"},
	{Long: "predicate", Help: "Filter predicate", Values: []string{"even", "odd", "all", "contains=3"}, ValueName: "predicate"},
	{Long: "transform", Help: "Map transformer", Values: config.Transforms, ValueName: "transformer"},
	{Long: "verbose", Short: "v", Help: "Show additional details"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "no-color", Help: "Disable coloured output"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus textfile path", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Log level", Values: []string{"trace", "debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "log-json", Help: "JSON log output"},
	{Long: "completion", Help: "Generate completion script", Values: config.Shells, ValueName: "shell"},
}

var completionGenerators = map[string]func(io.Writer, []string) error{
	"bash": generateBashCompletion,
	"zsh":  generateZshCompletion,
	"fish": generateFishCompletion,
}

// GenerateCompletion writes the completion script for shell, offering
// algorithms as values of --algo.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	gen, ok := completionGenerators[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(config.Shells, ", "))
	}
	return gen(out, algorithms)
}

// formatList joins names with space separators.
func formatList(names []string) string {
	return strings.Join(names, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var caseBody strings.Builder
	writeCase := func(patterns []string, body string) {
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(patterns, "|"), body)
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		switch {
		case f.IsAlgo:
			writeCase([]string{"--" + f.Long}, `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`)
		case f.IsFile:
			filePatterns = append(filePatterns, "--"+f.Long)
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		case len(f.Values) > 0:
			writeCase([]string{"--" + f.Long}, fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, formatList(f.Values)))
		}
	}
	if len(filePatterns) > 0 {
		writeCase(filePatterns, `COMPREPLY=( $(compgen -f -- "${cur}") )`)
	}

	script := fmt.Sprintf(`# Bash completion script for numlab
# Add this to your ~/.bashrc or ~/.bash_completion

_numlab_completions() {
    local cur prev opts algorithms commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available algorithms
    algorithms="%s all"

    # Subcommands
    commands="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
}

complete -F _numlab_completions numlab
`, strings.Join(opts, " "), formatList(algorithms), formatList(config.Commands), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	var commands []string
	for _, c := range config.Commands {
		commands = append(commands, fmt.Sprintf("'%s:%s'", c, config.CommandHelp[c]))
	}
	args = append(args, "        '1:command:(("+strings.Join(commands, " ")+"))'", "        '*::argument:'")

	script := fmt.Sprintf(`#compdef numlab

# Zsh completion script for numlab
# Add this to your ~/.zshrc or place in $fpath

_numlab() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_numlab "$@"
`, formatList(algorithms), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, formatList(f.Values))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for numlab",
		"# Add this to ~/.config/fish/completions/numlab.fish",
		"",
		"# Disable file completion by default",
		"complete -c numlab -f",
		"",
		"# Subcommands",
	}
	for _, c := range config.Commands {
		lines = append(lines, fmt.Sprintf("complete -c numlab -n '__fish_use_subcommand' -a %s -d '%s'", c, config.CommandHelp[c]))
	}
	lines = append(lines, "", "# Options")

	algoList := formatList(algorithms)
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c numlab"}

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	parts = append(parts, fmt.Sprintf("-l %s", f.Long), fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", formatList(f.Values)))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}
