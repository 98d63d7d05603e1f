package pdf

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPDF is returned when an input file does not look like a PDF.
	ErrNotPDF = errors.New("not a PDF document")

	// ErrClosed is returned when pages of a closed document are written.
	ErrClosed = errors.New("document is closed")
)

// InputError reports a problem with an input file: the path and the reason.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
