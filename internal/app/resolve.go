package app

import (
	"errors"
	"fmt"

	"eca-explorer/internal/elementary"
	"eca-explorer/internal/render"
)

// ErrTerminalSizeUnavailable is returned when the run needs the terminal size
// to pick a row length or generation count and the size cannot be read.
var ErrTerminalSizeUnavailable = errors.New("terminal size unavailable")

// SizeFunc reports the output area in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// Resolve turns a validated Config into the run parameters and the initial
// row. size is only consulted when INITIAL or --generations is missing.
func Resolve(cfg *Config, size SizeFunc, src elementary.RandomSource) (elementary.RunConfig, elementary.Row, error) {
	var rc elementary.RunConfig

	table, err := elementary.NewRuleTable(cfg.Rule)
	if err != nil {
		return rc, nil, fmt.Errorf("RULE: %w", err)
	}
	glyphs, err := render.ParseGlyphs(cfg.Glyphs)
	if err != nil {
		return rc, nil, err
	}

	var cols, rows int
	var sizeErr error
	sized := false
	querySize := func() error {
		if !sized {
			sized = true
			cols, rows, sizeErr = size()
			if sizeErr != nil {
				sizeErr = fmt.Errorf("%w: %w", ErrTerminalSizeUnavailable, sizeErr)
			}
		}
		return sizeErr
	}

	var initial elementary.Row
	if cfg.HasInitial {
		initial, err = elementary.ParseRow(cfg.Initial)
		if err != nil {
			return rc, nil, fmt.Errorf("INITIAL: %w", err)
		}
	} else {
		if err := querySize(); err != nil {
			return rc, nil, err
		}
		initial, err = elementary.RandomRow(src, glyphs.Cells(cols))
		if err != nil {
			return rc, nil, fmt.Errorf("random row for %d columns: %w", cols, err)
		}
	}

	generations := cfg.Generations
	if generations == elementary.UntilScreenFull {
		if err := querySize(); err != nil {
			return rc, nil, err
		}
		generations = rows
	}

	rc = elementary.RunConfig{
		Table:       table,
		Edges:       cfg.Edges,
		Generations: generations,
		Delay:       cfg.Delay,
	}
	return rc, initial, nil
}
