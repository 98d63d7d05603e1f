// Package pdftest builds small PDF fixtures for tests.
//
// Every page gets a distinct MediaBox width derived from a page ID, so tests
// can tell which source page ended up where without extracting text.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Height is the MediaBox height of every fixture page. It is larger than any
// width so the ID survives a 90 degree turn of the box.
const Height = 1000

// FixturePage describes one fixture page.
type FixturePage struct {
	ID     int
	Rotate int
}

// Width returns the MediaBox width used for a page ID.
func Width(id int) float64 {
	return float64(100 + id)
}

// ID recovers a page ID from a MediaBox width.
func ID(width float64) int {
	return int(width+0.5) - 100
}

// Pages returns unrotated fixture pages for the given IDs.
func Pages(ids ...int) []FixturePage {
	defs := make([]FixturePage, len(ids))
	for i, id := range ids {
		defs[i] = FixturePage{ID: id}
	}
	return defs
}

// Build returns a PDF document with one page per definition.
func Build(defs ...FixturePage) []byte {
	kids := make([]string, len(defs))
	for i := range defs {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(defs)),
	}
	for i, def := range defs {
		page := fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %d] /Resources << >> /Contents %d 0 R",
			Width(def.ID), Height, 4+2*i)
		if def.Rotate != 0 {
			page += fmt.Sprintf(" /Rotate %d", def.Rotate)
		}
		content := "q\nQ\n"
		objects = append(objects,
			page+" >>",
			fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// WriteFile writes a fixture named name into dir and returns its path.
func WriteFile(t testing.TB, dir, name string, defs ...FixturePage) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(defs...), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// OddEven writes the classic recto/verso pair: odd.pdf with pages 1,3,5 and
// even.pdf with pages 2,4,6.
func OddEven(t testing.TB, dir string) (odd, even string) {
	t.Helper()
	return WriteFile(t, dir, "odd.pdf", Pages(1, 3, 5)...),
		WriteFile(t, dir, "even.pdf", Pages(2, 4, 6)...)
}
