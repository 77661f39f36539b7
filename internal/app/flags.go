package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eca-explorer/internal/cli"
	"eca-explorer/internal/ctxlog"
	"eca-explorer/internal/elementary"
	"eca-explorer/internal/render"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rule       int
	Initial    string
	HasInitial bool

	Edges       elementary.EdgeMode
	Generations int
	Delay       time.Duration
	Seed        int64

	Glyphs   string
	Color    string
	NoWait   bool
	Window   bool
	Scale    int
	LogLevel string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Edges:       elementary.Wrap,
		Generations: elementary.UntilScreenFull,
		Glyphs:      render.Block.Name,
		Scale:       3,
		LogLevel:    "warn",
	}
}

// positiveInt is an int flag that remembers whether it was set and refuses
// values below one.
type positiveInt struct {
	v   *int
	set bool
}

func (p *positiveInt) String() string {
	if p == nil || p.v == nil || !p.set {
		return ""
	}
	return strconv.Itoa(*p.v)
}

func (p *positiveInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", elementary.ErrInvalidGenerations, s)
	}
	if n < 1 {
		return fmt.Errorf("%w: %d, must be at least 1", elementary.ErrInvalidGenerations, n)
	}
	*p.v = n
	p.set = true
	return nil
}

// Bind attaches the configuration to the provided FlagSet. Every option has a
// long and a short spelling where one exists.
func (c *Config) Bind(fs *flag.FlagSet, delayMS *int) {
	fs.Var(&c.Edges, "edges", "edge handling: copy, crop or wrap (default wrap)")
	fs.Var(&c.Edges, "e", "edge handling (shorthand)")
	gen := &positiveInt{v: &c.Generations}
	fs.Var(gen, "generations", "number of generations including the initial row (default: terminal rows)")
	fs.Var(gen, "g", "number of generations (shorthand)")
	fs.IntVar(delayMS, "delay", 0, "milliseconds to wait between generations")
	fs.IntVar(delayMS, "d", 0, "milliseconds to wait between generations (shorthand)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial row, 0 picks one")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "cell glyphs: block (one column per cell) or wide (two columns per cell)")
	fs.StringVar(&c.Color, "color", c.Color, "colour of live cells as #rrggbb")
	fs.BoolVar(&c.NoWait, "no-wait", c.NoWait, "exit right after the last generation instead of waiting for a key")
	fs.BoolVar(&c.Window, "window", c.Window, "render in a window (requires -tags ebiten)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for --window")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Parse processes command-line arguments. Flags may appear before, between or
// after the positional RULE and INITIAL. It returns the validated Config and
// whether the program should exit cleanly, for example after --help, in
// which case the usage text has been written to output.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("eca-explorer", flag.ContinueOnError)
	// Parse errors are returned, not printed; only --help writes to output.
	fs.SetOutput(io.Discard)

	var delayMS int
	cfg.Bind(fs, &delayMS)
	fs.Usage = func() {}
	printUsage := func() {
		fmt.Fprint(output, `
eca-explorer - run an elementary cellular automaton in your terminal.

Usage:
  eca-explorer [options] <RULE> [INITIAL]

Arguments:
  RULE      Wolfram code of the rule, 0-255
  INITIAL   initial row of '0' and '1' (default: random, as wide as the terminal);
            cells beyond the terminal width are not drawn

Options:
`)
		fs.SetOutput(output)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	flagArgs, positional := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			return nil, true, nil
		}
		return nil, false, cli.Usage(err)
	}

	switch len(positional) {
	case 0:
		return nil, false, cli.Usage(errors.New("missing required argument RULE"))
	case 1, 2:
	default:
		return nil, false, cli.Usage(fmt.Errorf("unexpected argument %q", positional[2]))
	}

	rule, err := strconv.Atoi(positional[0])
	if err != nil {
		return nil, false, cli.Usage(fmt.Errorf("RULE: %w: %q is not an integer", elementary.ErrInvalidRule, positional[0]))
	}
	cfg.Rule = rule
	if len(positional) == 2 {
		cfg.Initial = positional[1]
		cfg.HasInitial = true
	}
	if delayMS < 0 {
		return nil, false, cli.Usage(fmt.Errorf("delay: %d must not be negative", delayMS))
	}
	if int64(delayMS) > maxDelayMS {
		return nil, false, cli.Usage(fmt.Errorf("delay: %d exceeds the maximum of %d ms", delayMS, maxDelayMS))
	}
	cfg.Delay = time.Duration(delayMS) * time.Millisecond
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, false, cli.Usage(err)
	}
	return cfg, false, nil
}

const maxDelayMS = math.MaxInt64 / int64(time.Millisecond)

// splitArgs separates flags, with their values, from positional arguments so
// that flags may follow RULE and INITIAL. A negative number such as "-1" is a
// positional RULE, not a flag. Everything after "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flagArgs, append(positional, args[i+1:]...)
		case negativeNumber.MatchString(arg), len(arg) < 2, arg[0] != '-':
			positional = append(positional, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			// Unknown flags are reported by fs.Parse.
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positional
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// Validate checks every argument so that configuration errors surface before
// any generation is computed.
func (c *Config) Validate() error {
	if _, err := elementary.NewRuleTable(c.Rule); err != nil {
		return fmt.Errorf("RULE: %w", err)
	}
	if c.HasInitial {
		if _, err := elementary.ParseRow(c.Initial); err != nil {
			return fmt.Errorf("INITIAL: %w", err)
		}
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations: %w: %d", elementary.ErrInvalidGenerations, c.Generations)
	}
	if _, err := render.ParseGlyphs(c.Glyphs); err != nil {
		return fmt.Errorf("glyphs: %w", err)
	}
	if c.Color != "" {
		if _, err := render.ParseColor(c.Color); err != nil {
			return fmt.Errorf("color: %w", err)
		}
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale: %d must be positive", c.Scale)
	}
	if _, ok := ctxlog.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", c.LogLevel)
	}
	return nil
}
