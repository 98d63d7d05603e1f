package filelist

import (
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// numberSuffix matches a trailing part number such as "-2", "_010" or " 3".
var numberSuffix = regexp.MustCompile(`[-_ ](\d+)$`)

// partNumber returns the trailing number of a file name, ignoring its
// extension.
func partNumber(path string) (int, bool) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	m := numberSuffix.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortByNumber returns paths ordered by their numeric suffix, so that
// scan-2.pdf comes before scan-10.pdf. Files without a number come first,
// alphabetically. The input slice is not modified.
func SortByNumber(paths []string) []string {
	sorted := slices.Clone(paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessByNumber(sorted[i], sorted[j])
	})
	return sorted
}

func lessByNumber(a, b string) bool {
	na, okA := partNumber(a)
	nb, okB := partNumber(b)

	switch {
	case okA && okB:
		if na != nb {
			return na < nb
		}
		return a < b
	case okA:
		return false
	case okB:
		return true
	default:
		return a < b
	}
}

// SortByNumber reorders the rows by the numeric suffix of their files.
func (l *List) SortByNumber() {
	sort.SliceStable(l.rows, func(i, j int) bool {
		a, _ := l.paths.Get(l.rows[i])
		b, _ := l.paths.Get(l.rows[j])
		return lessByNumber(a, b)
	})
}
