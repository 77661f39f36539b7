// Command eca-explorer runs an elementary cellular automaton in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasb-eyer/go-colorful"

	"eca-explorer/internal/app"
	"eca-explorer/internal/cli"
	"eca-explorer/internal/core"
	"eca-explorer/internal/ctxlog"
	"eca-explorer/internal/elementary"
	"eca-explorer/internal/render"
)

// terminalSize is replaced in tests so they do not depend on a TTY.
var terminalSize app.SizeFunc = render.TerminalSize

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the automaton and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, shouldExit, err := app.Parse(args, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.Code(err)
	}
	if shouldExit {
		return cli.ExitOK
	}

	level, _ := ctxlog.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := execute(ctx, cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.Code(err)
	}
	return cli.ExitOK
}

func execute(ctx context.Context, cfg *app.Config) error {
	logger := ctxlog.FromContext(ctx)

	size := terminalSize
	if cfg.Window {
		size = render.WindowSize
	}
	rng := core.NewRNG(cfg.Seed)
	rc, initial, err := app.Resolve(cfg, size, rng)
	if err != nil {
		return err
	}
	if !cfg.HasInitial {
		logger.Info("Random initial row.", "seed", rng.Seed(), "width", len(initial))
	}

	glyphs, err := render.ParseGlyphs(cfg.Glyphs)
	if err != nil {
		return err
	}
	var on *colorful.Color
	if cfg.Color != "" {
		c, err := render.ParseColor(cfg.Color)
		if err != nil {
			return err
		}
		on = &c
	}

	if cfg.Window {
		return runWindow(ctx, cfg, rc, initial, on)
	}
	if cfg.HasInitial {
		warnIfClipped(logger, glyphs, len(initial), terminalSize)
	}

	term, err := render.NewTerminal(render.TerminalOptions{Glyphs: glyphs, On: on})
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	sum, err := app.New(term, app.Options{Hold: !cfg.NoWait}).Run(ctx, rc, initial)
	if err != nil {
		return err
	}
	logger.Info("Run finished.", "rows", sum.Rows, "reason", sum.Reason)
	return nil
}

// warnIfClipped logs, before the screen is taken over, when an explicit
// initial row has more cells than the terminal can show.
func warnIfClipped(logger *slog.Logger, glyphs render.Glyphs, cells int, size app.SizeFunc) {
	cols, _, err := size()
	if err != nil || glyphs.Fits(cells, cols) {
		return
	}
	logger.Warn("Initial row is wider than the terminal; extra cells are not drawn.",
		"cells", cells, "visible", glyphs.Cells(cols), "glyphs", glyphs.Name)
}

func runWindow(ctx context.Context, cfg *app.Config, rc elementary.RunConfig, initial elementary.Row, on *colorful.Color) error {
	run, err := elementary.NewRun(initial, rc)
	if err != nil {
		return err
	}
	opts := render.WindowOptions{
		Scale: cfg.Scale,
		Delay: rc.Delay,
		Title: fmt.Sprintf("eca-explorer: rule %d", cfg.Rule),
	}
	if on != nil {
		opts.On = *on
	}
	rows, err := render.RunWindow(ctx, run, len(initial), opts)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Run finished.", "rows", rows)
	return nil
}
