// Package elementary implements one-dimensional, two-state cellular automata
// driven by a Wolfram code.
package elementary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is returned for Wolfram codes outside [0, 255].
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidInitialConfiguration is returned when an initial row contains
	// anything other than '0' and '1'.
	ErrInvalidInitialConfiguration = errors.New("invalid initial configuration")
	// ErrInvalidEdgeMode is returned for unknown edge mode names.
	ErrInvalidEdgeMode = errors.New("invalid edge mode")
	// ErrEmptyRow is returned when a row has no cells.
	ErrEmptyRow = errors.New("empty row")
)

// RuleTable maps each 3-cell neighbourhood, read as left<<2|center<<1|right,
// to the next value of the center cell.
type RuleTable struct {
	rule uint8
	next [8]uint8
}

// NewRuleTable decodes a Wolfram code. Bit i of rule is the output for
// neighbourhood pattern i.
func NewRuleTable(rule int) (RuleTable, error) {
	if rule < 0 || rule > 255 {
		return RuleTable{}, fmt.Errorf("%w: %d is outside 0-255", ErrInvalidRule, rule)
	}
	t := RuleTable{rule: uint8(rule)}
	for idx := range t.next {
		t.next[idx] = (t.rule >> idx) & 1
	}
	return t, nil
}

// Rule returns the Wolfram code the table was built from.
func (t RuleTable) Rule() uint8 { return t.rule }

// NextCell returns the next value of center given its neighbours. Only the
// lowest bit of each input is considered.
func (t RuleTable) NextCell(left, center, right uint8) uint8 {
	idx := (left&1)<<2 | (center&1)<<1 | right&1
	return t.next[idx]
}

func (t RuleTable) String() string { return fmt.Sprintf("rule %d", t.rule) }
