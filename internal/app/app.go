// Package app wires the command line, the automaton and a renderer together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eca-explorer/internal/ctxlog"
	"eca-explorer/internal/elementary"
	"eca-explorer/internal/render"
)

// Stop reasons reported in a Summary.
const (
	ReasonCompleted   = "completed"
	ReasonInterrupted = "interrupted"
	ReasonStopped     = "renderer stopped"
)

// Summary describes how a run ended.
type Summary struct {
	Rows   int
	Reason string
}

// Options tunes App behaviour.
type Options struct {
	// Hold keeps the final frame on screen until the renderer is dismissed.
	Hold bool
}

// SleepFunc waits for d and reports false if the wait was cut short by ctx or
// by stopped being closed.
type SleepFunc func(ctx context.Context, d time.Duration, stopped <-chan struct{}) bool

// App drives a single run: compute a row, draw it, wait, repeat.
type App struct {
	renderer render.Renderer
	opts     Options
	sleep    SleepFunc
}

// New constructs an App drawing to r.
func New(r render.Renderer, opts Options) *App {
	return &App{renderer: r, opts: opts, sleep: Sleep}
}

// Sleep is the default SleepFunc.
func Sleep(ctx context.Context, d time.Duration, stopped <-chan struct{}) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-stopped:
		return false
	}
}

// Run renders rc.Generations rows starting from initial. The renderer is
// opened here and closed on every return path. A cancelled ctx or a stopped
// renderer ends the run early without an error.
func (a *App) Run(ctx context.Context, rc elementary.RunConfig, initial elementary.Row) (sum Summary, err error) {
	logger := ctxlog.FromContext(ctx)

	run, err := elementary.NewRun(initial, rc)
	if err != nil {
		return sum, err
	}

	logger.Debug("Opening renderer.", "rule", rc.Table.Rule(), "edges", rc.Edges.String(), "generations", rc.Generations, "width", len(initial))
	if err := a.renderer.Open(); err != nil {
		return sum, fmt.Errorf("open renderer: %w", err)
	}
	defer func() {
		if cerr := a.renderer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close renderer: %w", cerr)
		}
	}()

	sum.Reason = ReasonCompleted
	for run.Next() {
		if ctx.Err() != nil {
			sum.Reason = ReasonInterrupted
			break
		}
		if err := a.renderer.Draw(run.Row()); err != nil {
			if errors.Is(err, render.ErrStopped) {
				sum.Reason = ReasonStopped
				break
			}
			return sum, fmt.Errorf("draw generation %d: %w", run.Generation(), err)
		}
		sum.Rows++

		last := run.Generation() == run.Total()-1
		if rc.Delay > 0 && !last {
			if !a.sleep(ctx, rc.Delay, a.renderer.Stopped()) {
				sum.Reason = ReasonStopped
				if ctx.Err() != nil {
					sum.Reason = ReasonInterrupted
				}
				break
			}
		}
	}
	if err := run.Err(); err != nil {
		return sum, err
	}

	if sum.Reason == ReasonCompleted && a.opts.Hold {
		a.renderer.Hold(ctx)
	}
	return sum, nil
}
