// Package filelist is the model behind a list of input files in a GUI: an
// ordered set of display rows, each pointing at a file path. The same file
// may be listed more than once.
package filelist

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/jackzampolin/pdfmultitool/internal/bidict"
)

// List holds display rows in order. Labels are unique; paths are not.
// It is not safe for concurrent use.
type List struct {
	rows  []string
	paths *bidict.Bidict[string, string]
}

// New creates an empty List.
func New() *List {
	return &List{paths: bidict.New[string, string]()}
}

// Add appends a row for path and returns its label. The label is the file's
// base name, suffixed with " (2)", " (3)", ... when already taken.
func (l *List) Add(path string) string {
	base := filepath.Base(path)
	label := base
	for n := 2; l.paths.Has(label); n++ {
		label = fmt.Sprintf("%s (%d)", base, n)
	}
	l.paths.Set(label, path)
	l.rows = append(l.rows, label)
	return label
}

// Remove deletes the row with label. It reports whether the row existed.
func (l *List) Remove(label string) bool {
	if !l.paths.Delete(label) {
		return false
	}
	l.rows = slices.DeleteFunc(l.rows, func(r string) bool { return r == label })
	return true
}

// Path returns the file behind label.
func (l *List) Path(label string) (string, bool) {
	return l.paths.Get(label)
}

// Rows returns the labels showing path, in the order they were added.
func (l *List) Rows(path string) []string {
	return l.paths.Inverse(path)
}

// MoveUp swaps the row with the one above it. It reports whether the row moved.
func (l *List) MoveUp(label string) bool {
	i := slices.Index(l.rows, label)
	if i <= 0 {
		return false
	}
	l.rows[i-1], l.rows[i] = l.rows[i], l.rows[i-1]
	return true
}

// MoveDown swaps the row with the one below it. It reports whether the row moved.
func (l *List) MoveDown(label string) bool {
	i := slices.Index(l.rows, label)
	if i < 0 || i == len(l.rows)-1 {
		return false
	}
	l.rows[i], l.rows[i+1] = l.rows[i+1], l.rows[i]
	return true
}

// Labels returns the row labels in display order.
func (l *List) Labels() []string {
	return slices.Clone(l.rows)
}

// Paths returns the file of every row in display order, ready to be merged.
func (l *List) Paths() []string {
	out := make([]string, len(l.rows))
	for i, label := range l.rows {
		out[i], _ = l.paths.Get(label)
	}
	return out
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.rows)
}
