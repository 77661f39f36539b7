package elementary

// Step applies table to every cell of row and returns the next generation as
// a new row of the same length. row is only read.
func Step(row Row, table RuleTable, mode EdgeMode) (Row, error) {
	next := make(Row, len(row))
	if err := StepInto(next, row, table, mode); err != nil {
		return nil, err
	}
	return next, nil
}

// StepInto writes the next generation of src into dst. dst and src must have
// the same length and must not overlap.
func StepInto(dst, src Row, table RuleTable, mode EdgeMode) error {
	left, err := mode.LeftNeighbor(src)
	if err != nil {
		return err
	}
	right, err := mode.RightNeighbor(src)
	if err != nil {
		return err
	}
	if len(dst) != len(src) {
		panic("elementary: StepInto with mismatched row lengths")
	}

	last := len(src) - 1
	for x := range src {
		l, r := left, right
		if x > 0 {
			l = src[x-1]
		}
		if x < last {
			r = src[x+1]
		}
		dst[x] = table.NextCell(l, src[x], r)
	}
	return nil
}
