package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/format"
	"github.com/agbru/numlab/internal/gcd"
	"github.com/agbru/numlab/internal/ieee754"
	"github.com/agbru/numlab/internal/ui"
	"github.com/agbru/numlab/internal/words"
)

// REPLConfig is the initial state of an interactive session. Commands such
// as algo, zero and culture change it for the rest of the session.
type REPLConfig struct {
	// DefaultAlgo is the initial GCD algorithm; "all" or "" picks the first.
	DefaultAlgo string
	ZeroPolicy  gcd.ZeroPolicy
	Culture     words.Culture
	// MaxTerms bounds the fib command.
	MaxTerms int
}

// REPL reads one command per line and prints its result.
type REPL struct {
	config      REPLConfig
	registry    *gcd.Registry
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// replCommand is one entry of the REPL command table. run returns false to
// end the session.
type replCommand struct {
	names []string
	usage string
	help  string
	run   func(args []string) bool
}

const defaultMaxTerms = 1000

// NewREPL returns a session reading stdin and writing stdout.
func NewREPL(registry *gcd.Registry, config REPLConfig) *REPL {
	algo := config.DefaultAlgo
	if names := registry.List(); (algo == "" || algo == "all") && len(names) > 0 {
		algo = names[0]
	}
	if config.Culture.Name == "" {
		config.Culture = words.InvariantCulture
	}
	if config.MaxTerms <= 0 {
		config.MaxTerms = defaultMaxTerms
	}
	return &REPL{config: config, registry: registry, currentAlgo: algo, in: os.Stdin, out: os.Stdout}
}

// SetInput replaces the command source.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the destination of all session output.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start runs the session until exit or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	sc := bufio.NewScanner(r.in)
	r.prompt()
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" && !r.execute(line) {
			return
		}
		r.prompt()
	}
	if err := sc.Err(); err != nil {
		r.errorf("Read error: %v", err)
		return
	}
	fmt.Fprintln(r.out, "\nGoodbye!")
}

func (r *REPL) prompt() {
	fmt.Fprint(r.out, ui.ColorGreen()+"numlab> "+ui.ColorReset())
}

func (r *REPL) printBanner() {
	line := strings.Repeat("═", 46)
	fmt.Fprintf(r.out, "\n%s╔%s╗%s\n", ui.ColorCyan(), line, ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s %s%-44s%s %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), "numlab interactive session", ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚%s╝%s\n\n", ui.ColorCyan(), line, ui.ColorReset())
}

// commands returns the command table bound to r.
func (r *REPL) commands() []replCommand {
	each := func(f func([]string)) func([]string) bool {
		return func(args []string) bool { f(args); return true }
	}
	return []replCommand{
		{[]string{"gcd", "g"}, "gcd <n...>", "GCD with the current algorithm", each(r.cmdGCD)},
		{[]string{"compare", "cmp"}, "compare <n...>", "Time Euclid and Stein on the same list", each(r.cmdCompare)},
		{[]string{"fib", "f"}, "fib <count>", "First count Fibonacci numbers", each(r.cmdFib)},
		{[]string{"term", "t"}, "term <index>", "Single Fibonacci number F(index)", each(r.cmdTerm)},
		{[]string{"bits", "b"}, "bits <x...>", "IEEE-754 bit pattern of x", each(r.cmdBits)},
		{[]string{"parse", "p"}, "parse <bits>", "Decode a 64-bit pattern", each(r.cmdParse)},
		{[]string{"words", "w"}, "words <x...>", "Spell values in words", each(r.cmdWords)},
		{[]string{"algo", "a"}, "algo <name>", "Change algorithm (" + strings.Join(r.registry.List(), ", ") + ")", each(r.cmdAlgo)},
		{[]string{"zero", "z"}, "zero <policy>", "Zero policy (allow, reject)", each(r.cmdZero)},
		{[]string{"culture"}, "culture <name>", "Culture for words (" + strings.Join(words.CultureNames(), ", ") + ")", each(r.cmdCulture)},
		{[]string{"status", "st"}, "status", "Display current configuration", each(func([]string) { r.cmdStatus() })},
		{[]string{"help", "h", "?"}, "help", "Display this help", each(func([]string) { r.printHelp() })},
		{[]string{"exit", "quit", "q"}, "exit / quit", "Leave the session", func([]string) bool {
			fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
			return false
		}},
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sCommands:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, c := range r.commands() {
		fmt.Fprintf(r.out, "  %s%-15s%s %s\n", ui.ColorYellow(), c.usage, ui.ColorReset(), c.help)
	}
}

// execute runs one input line and reports whether the session continues.
// A line made only of integers is a gcd query.
func (r *REPL) execute(line string) bool {
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	for _, c := range r.commands() {
		for _, n := range c.names {
			if n == name {
				return c.run(fields[1:])
			}
		}
	}
	if _, err := strconv.ParseInt(name, 10, 64); err == nil {
		r.cmdGCD(fields)
		return true
	}
	r.errorf("Unknown command: %s", name)
	fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	return true
}

func (r *REPL) errorf(format string, a ...any) {
	fmt.Fprintf(r.out, "%s"+format+"%s\n", append(append([]any{ui.ColorRed()}, a...), ui.ColorReset())...)
}

func (r *REPL) parseNumbers(args []string) ([]int64, bool) {
	numbers, err := ParseIntegers(args)
	if err != nil {
		r.errorf("Invalid value: %v", err)
		return nil, false
	}
	return numbers, true
}

func (r *REPL) cmdGCD(args []string) {
	numbers, ok := r.parseNumbers(args)
	if !ok {
		return
	}
	alg, err := r.registry.Get(r.currentAlgo)
	if err != nil {
		r.errorf("Algorithm not found: %s", r.currentAlgo)
		return
	}
	res, err := gcd.WithTiming(numbers, alg, gcd.WithZeroPolicy(r.config.ZeroPolicy))
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	DisplayGCDResult(r.out, numbers, res.GCD, false)
	fmt.Fprintf(r.out, "  %s in %s%s%s\n", alg.Description, ui.ColorCyan(), format.FormatTicks(res.Elapsed), ui.ColorReset())
}

func (r *REPL) cmdCompare(args []string) {
	numbers, ok := r.parseNumbers(args)
	if !ok {
		return
	}
	cmp, err := gcd.CompareTimings(numbers, gcd.WithZeroPolicy(r.config.ZeroPolicy))
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	fmt.Fprintf(r.out, "\n%sComparison for GCD(%s):%s\n", ui.ColorBold(), FormatNumberList(numbers), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	for _, res := range []gcd.Result{cmp.Euclid, cmp.Stein} {
		fmt.Fprintf(r.out, "  %s%-10s%s: %s%d%s in %s%12s%s\n",
			ui.ColorYellow(), res.Algorithm, ui.ColorReset(),
			ui.ColorGreen(), res.GCD, ui.ColorReset(),
			ui.ColorCyan(), format.FormatTicks(res.Elapsed), ui.ColorReset())
	}
	if !cmp.Agree() {
		fmt.Fprintf(r.out, "  %s✗ INCONSISTENT%s\n", ui.ColorRed(), ui.ColorReset())
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) cmdFib(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: fib <count>")
		return
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		r.errorf("Invalid value: %s", args[0])
		return
	}
	if count > r.config.MaxTerms {
		r.errorf("At most %d terms in interactive mode", r.config.MaxTerms)
		return
	}
	terms, err := fibonacci.First(count)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	DisplaySequence(r.out, terms, false)
}

func (r *REPL) cmdTerm(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: term <index>")
		return
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		r.errorf("Invalid value: %s", args[0])
		return
	}
	start := time.Now()
	v := fibonacci.Term(n)
	fmt.Fprintf(r.out, "F(%s%d%s) = %s%s%s\n", ui.ColorMagenta(), n, ui.ColorReset(), ui.ColorGreen(), FormatTerm(v, false), ui.ColorReset())
	fmt.Fprintf(r.out, "  Computed in %s\n", format.FormatExecutionDuration(time.Since(start)))
}

func (r *REPL) cmdBits(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: bits <x...>")
		return
	}
	values, err := ParseFloats(args)
	if err != nil {
		r.errorf("Invalid value: %v", err)
		return
	}
	for i, v := range values {
		DisplayBits(r.out, args[i], v, true)
	}
}

func (r *REPL) cmdParse(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: parse <bits>")
		return
	}
	f, err := ieee754.ParseIEEE754(args[0])
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	DisplayParsed(r.out, args[0], f)
}

func (r *REPL) cmdWords(args []string) {
	values, err := ParseFloats(args)
	if err != nil {
		r.errorf("Invalid value: %v", err)
		return
	}
	spelled, err := words.RenderAll(values, r.config.Culture)
	if err != nil {
		r.errorf("Usage: words <x...>")
		return
	}
	DisplayWords(r.out, args, spelled)
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.errorf("Usage: algo <name>")
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	alg, err := r.registry.Get(name)
	if err != nil {
		r.errorf("Unknown algorithm: %s", name)
		fmt.Fprintf(r.out, "Available algorithms: %s\n", strings.Join(r.registry.List(), ", "))
		return
	}
	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s\n", ui.ColorGreen(), alg.Description, ui.ColorReset())
}

func (r *REPL) cmdZero(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: zero <allow|reject>")
		return
	}
	p, err := gcd.ParseZeroPolicy(strings.ToLower(args[0]))
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	r.config.ZeroPolicy = p
	fmt.Fprintf(r.out, "Zero policy: %s%s%s\n", ui.ColorGreen(), p, ui.ColorReset())
}

func (r *REPL) cmdCulture(args []string) {
	if len(args) != 1 {
		r.errorf("Usage: culture <name>")
		return
	}
	c, err := words.LookupCulture(args[0])
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	r.config.Culture = c
	fmt.Fprintf(r.out, "Culture changed to: %s%s%s\n", ui.ColorGreen(), c.Name, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:   %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Zero policy: %s%s%s\n", ui.ColorCyan(), r.config.ZeroPolicy, ui.ColorReset())
	fmt.Fprintf(r.out, "  Culture:     %s%s%s\n", ui.ColorCyan(), r.config.Culture.Name, ui.ColorReset())
	fmt.Fprintf(r.out, "  Max terms:   %s%d%s\n", ui.ColorCyan(), r.config.MaxTerms, ui.ColorReset())
	fmt.Fprintln(r.out)
}
