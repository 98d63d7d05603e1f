package pages

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned when a page selection cannot be parsed.
var ErrInvalidSelection = errors.New("invalid page selection")

// Selection is a set of 1-based page positions, or every page.
// The zero value selects nothing.
type Selection struct {
	all   bool
	pages map[int]struct{}
}

// All selects every page.
func All() Selection {
	return Selection{all: true}
}

// Only selects the given 1-based positions. Duplicates are collapsed.
func Only(positions ...int) Selection {
	s := Selection{pages: make(map[int]struct{}, len(positions))}
	for _, p := range positions {
		s.pages[p] = struct{}{}
	}
	return s
}

// ParseSelection parses "all", an empty string, or a comma separated list of
// positions and inclusive ranges such as "1,3-5".
func ParseSelection(text string) (Selection, error) {
	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "all") {
		return All(), nil
	}
	sel := Only()
	if text == "" {
		return sel, nil
	}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := parsePosition(lo)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, part)
		}
		last := first
		if isRange {
			if last, err = parsePosition(hi); err != nil {
				return Selection{}, fmt.Errorf("%w: %q", ErrInvalidSelection, part)
			}
			if last < first {
				return Selection{}, fmt.Errorf("%w: range %q is inverted", ErrInvalidSelection, part)
			}
		}
		for p := first; p <= last; p++ {
			sel.pages[p] = struct{}{}
		}
	}
	return sel, nil
}

func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("page %d is not 1-based", n)
	}
	return n, nil
}

// IsAll reports whether the selection covers every page.
func (s Selection) IsAll() bool {
	return s.all
}

// Contains reports whether the 1-based position is selected.
func (s Selection) Contains(position int) bool {
	if s.all {
		return true
	}
	_, ok := s.pages[position]
	return ok
}

// Positions returns the explicit positions in ascending order.
// It returns nil for an "all" selection.
func (s Selection) Positions() []int {
	if s.all {
		return nil
	}
	out := make([]int, 0, len(s.pages))
	for p := range s.pages {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// OutOfRange returns the explicit positions greater than pageCount.
// These select nothing.
func (s Selection) OutOfRange(pageCount int) []int {
	var out []int
	for _, p := range s.Positions() {
		if p > pageCount {
			out = append(out, p)
		}
	}
	return out
}

// String formats the selection in the syntax accepted by ParseSelection,
// collapsing consecutive positions into ranges.
func (s Selection) String() string {
	if s.all {
		return "all"
	}
	positions := s.Positions()
	var parts []string
	for i := 0; i < len(positions); {
		j := i
		for j+1 < len(positions) && positions[j+1] == positions[j]+1 {
			j++
		}
		if i == j {
			parts = append(parts, strconv.Itoa(positions[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", positions[i], positions[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
