package pages

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultExt is used for split outputs when the input name has no extension.
const DefaultExt = ".pdf"

// SplitNames returns the output paths for splitting an n-page document into
// dir, one file per page: {base}_{ordinal:03d}{ext}. Ordinals are 1-based and
// follow output order.
// e.g., ("/in/scan.pdf", "/out", 2) -> ["/out/scan_001.pdf", "/out/scan_002.pdf"]
func SplitNames(input, dir string, n int) []string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = DefaultExt
	}

	paths := make([]string, n)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%s_%03d%s", stem, i+1, ext))
	}
	return paths
}
