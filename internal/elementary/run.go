package elementary

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrInvalidGenerations is returned when a run is asked for fewer than one row.
var ErrInvalidGenerations = errors.New("invalid generation count")

// UntilScreenFull is the Generations value that asks the caller to derive the
// count from the terminal height.
const UntilScreenFull = 0

// RunConfig fixes everything about a run except its initial row.
type RunConfig struct {
	Table       RuleTable
	Edges       EdgeMode
	Generations int
	Delay       time.Duration
}

// Run yields the initial row followed by successive generations, one per call
// to Next. A Run is single use.
type Run struct {
	table RuleTable
	edges EdgeMode
	total int

	cur  Row
	gen  int
	done bool
	err  error
}

// NewRun prepares a run that will yield cfg.Generations rows starting with a
// copy of initial.
func NewRun(initial Row, cfg RunConfig) (*Run, error) {
	if len(initial) == 0 {
		return nil, ErrEmptyRow
	}
	if cfg.Generations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGenerations, cfg.Generations)
	}
	return &Run{
		table: cfg.Table,
		edges: cfg.Edges,
		total: cfg.Generations,
		cur:   initial.Clone(),
		gen:   -1,
	}, nil
}

// Next advances to the next row. It returns false once the configured number
// of rows has been produced or a step failed.
func (r *Run) Next() bool {
	if r.done {
		return false
	}
	if r.gen+1 >= r.total {
		r.done = true
		return false
	}
	if r.gen >= 0 {
		next, err := Step(r.cur, r.table, r.edges)
		if err != nil {
			r.err = err
			r.done = true
			return false
		}
		r.cur = next
	}
	r.gen++
	return true
}

// Row returns the row produced by the last successful call to Next. The
// returned row is never modified by later calls.
func (r *Run) Row() Row { return r.cur }

// Generation returns the zero-based index of the current row.
func (r *Run) Generation() int { return r.gen }

// Total returns the number of rows the run will produce.
func (r *Run) Total() int { return r.total }

// Err reports the error that ended the run early, if any.
func (r *Run) Err() error { return r.err }

// All adapts the run to a range-over-func sequence.
func (r *Run) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for r.Next() {
			if !yield(r.Row()) {
				return
			}
		}
	}
}
