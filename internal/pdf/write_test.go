package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "out.pdf")
		if err := os.WriteFile(dest, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := writeFileAtomic(dest, []byte("new")); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}
		got, err := os.ReadFile(dest)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("expected new content, got %q", got)
		}
		assertOnlyEntries(t, dir, 1)
	})

	t.Run("rename failure removes temp file", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "out.pdf")
		if err := os.MkdirAll(filepath.Join(dest, "keep"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := writeFileAtomic(dest, []byte("data")); err == nil {
			t.Fatal("expected error renaming over a directory")
		}
		assertOnlyEntries(t, dir, 1)
		if info, err := os.Stat(dest); err != nil || !info.IsDir() {
			t.Errorf("destination directory should be untouched: %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "nope", "out.pdf")
		if err := writeFileAtomic(dest, []byte("data")); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func assertOnlyEntries(t *testing.T, dir string, want int) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != want {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected %d entries in %s, got %v", want, dir, names)
	}
}
