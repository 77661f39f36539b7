package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalSize returns the size of the controlling terminal in columns and
// rows, trying stdout, stderr and stdin in turn. It does not touch the screen.
func TerminalSize() (int, int, error) {
	var errs []error
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			errs = append(errs, fmt.Errorf("%s is not a terminal", f.Name()))
			continue
		}
		w, h, err := term.GetSize(fd)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name(), err))
			continue
		}
		if w <= 0 || h <= 0 {
			errs = append(errs, fmt.Errorf("%s reports size %dx%d", f.Name(), w, h))
			continue
		}
		return w, h, nil
	}
	return 0, 0, errors.Join(errs...)
}
