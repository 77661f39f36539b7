package elementary

import (
	"fmt"
	"strings"
)

// EdgeMode selects how the first and last cell of a row obtain the neighbour
// that lies outside the row.
type EdgeMode int

const (
	// Wrap treats the row as circular.
	Wrap EdgeMode = iota
	// Crop pads the row with off cells.
	Crop
	// Copy repeats the boundary cell outwards.
	Copy
)

var edgeModeNames = map[EdgeMode]string{
	Wrap: "wrap",
	Crop: "crop",
	Copy: "copy",
}

// EdgeModes lists the accepted edge mode names.
func EdgeModes() []string { return []string{"copy", "crop", "wrap"} }

// ParseEdgeMode converts a name such as "wrap" into an EdgeMode.
func ParseEdgeMode(s string) (EdgeMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range edgeModeNames {
		if n == name {
			return mode, nil
		}
	}
	return Wrap, fmt.Errorf("%w %q: must be one of %s", ErrInvalidEdgeMode, s, strings.Join(EdgeModes(), ", "))
}

func (m EdgeMode) String() string {
	if n, ok := edgeModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("EdgeMode(%d)", int(m))
}

// Set implements flag.Value.
func (m *EdgeMode) Set(s string) error {
	mode, err := ParseEdgeMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// LeftNeighbor returns the virtual left neighbour of row[0].
func (m EdgeMode) LeftNeighbor(row Row) (uint8, error) {
	if len(row) == 0 {
		return 0, ErrEmptyRow
	}
	switch m {
	case Wrap:
		return row[len(row)-1], nil
	case Crop:
		return 0, nil
	case Copy:
		return row[0], nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidEdgeMode, m)
}

// RightNeighbor returns the virtual right neighbour of row[len(row)-1].
func (m EdgeMode) RightNeighbor(row Row) (uint8, error) {
	if len(row) == 0 {
		return 0, ErrEmptyRow
	}
	switch m {
	case Wrap:
		return row[0], nil
	case Crop:
		return 0, nil
	case Copy:
		return row[len(row)-1], nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidEdgeMode, m)
}
