package elementary

import (
	"fmt"
	"strings"
)

// Row is one generation of cells, each 0 or 1.
type Row []uint8

// RandomSource supplies the bits of a random initial row.
type RandomSource interface {
	Bool() bool
}

// ParseRow reads a row written as a string of '0' and '1'.
func ParseRow(s string) (Row, error) {
	if s == "" {
		return nil, ErrEmptyRow
	}
	row := make(Row, 0, len(s))
	for i, ch := range s {
		switch ch {
		case '0':
			row = append(row, 0)
		case '1':
			row = append(row, 1)
		default:
			return nil, fmt.Errorf("%w: %q at position %d, only '0' and '1' are allowed", ErrInvalidInitialConfiguration, ch, i)
		}
	}
	return row, nil
}

// RandomRow returns a row of n cells drawn from src.
func RandomRow(src RandomSource, n int) (Row, error) {
	if n <= 0 {
		return nil, ErrEmptyRow
	}
	row := make(Row, n)
	for i := range row {
		if src.Bool() {
			row[i] = 1
		}
	}
	return row, nil
}

// Clone returns a copy that shares no memory with r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Live counts the cells that are on.
func (r Row) Live() int {
	n := 0
	for _, c := range r {
		n += int(c & 1)
	}
	return n
}

func (r Row) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, c := range r {
		if c != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
