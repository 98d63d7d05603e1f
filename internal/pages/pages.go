// Package pages implements the page-sequence transforms behind every
// pdfmultitool operation.
//
// The functions here never look inside a page. They reorder, filter and
// rotate references, so they are generic over the page type and can be
// exercised with plain integers.
package pages

import "slices"

// Rotator is implemented by page types that can produce a copy of themselves
// with an adjusted orientation.
type Rotator[P any] interface {
	Rotate(degrees int) P
}

// Mode selects which document comes first in Concat.
type Mode int

const (
	// Append places the first document before the second.
	Append Mode = iota
	// Prepend places the second document before the first.
	Prepend
)

// String returns the mode name used in logs and recipes.
func (m Mode) String() string {
	if m == Prepend {
		return "prepend"
	}
	return "append"
}

// Ordered returns seq unchanged, or a reversed copy when reverse is set.
// The input slice is never modified.
func Ordered[T any](seq []T, reverse bool) []T {
	if !reverse {
		return seq
	}
	out := slices.Clone(seq)
	slices.Reverse(out)
	return out
}

// Interleave alternates one page of a with one page of b, stopping at the
// shorter sequence. Trailing pages of the longer sequence are dropped.
func Interleave[T any](a, b []T, reverseA, reverseB bool) []T {
	a, b = Ordered(a, reverseA), Ordered(b, reverseB)
	n := min(len(a), len(b))
	out := make([]T, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a[i], b[i])
	}
	return out
}

// Concat joins the full sequences a and b. With Append the result is a
// followed by b, with Prepend it is b followed by a.
func Concat[T any](a, b []T, reverseA, reverseB bool, mode Mode) []T {
	a, b = Ordered(a, reverseA), Ordered(b, reverseB)
	if mode == Prepend {
		a, b = b, a
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Merge concatenates every sequence in list order. When reverse is set the
// list itself is walked backwards; the pages inside each sequence keep their
// order.
func Merge[T any](seqs [][]T, reverse bool) []T {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range Ordered(seqs, reverse) {
		out = append(out, s...)
	}
	return out
}

// Delete returns seq without the pages whose 1-based position is selected.
// Positions outside the sequence select nothing. The result may be empty.
func Delete[T any](seq []T, sel Selection) []T {
	out := make([]T, 0, len(seq))
	for i, p := range seq {
		if !sel.Contains(i + 1) {
			out = append(out, p)
		}
	}
	return out
}

// Rotate turns every selected page clockwise by degrees. Unselected pages
// pass through untouched.
func Rotate[P Rotator[P]](seq []P, degrees int, sel Selection) []P {
	out := make([]P, len(seq))
	for i, p := range seq {
		if sel.Contains(i + 1) {
			p = p.Rotate(degrees)
		}
		out[i] = p
	}
	return out
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(degrees int) int {
	return ((degrees % 360) + 360) % 360
}
