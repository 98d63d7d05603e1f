package pages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	odd  = []int{1, 3, 5}
	even = []int{2, 4, 6}
)

// testPage records its accumulated rotation.
type testPage struct {
	ID       int
	Rotation int
}

func (p testPage) Rotate(degrees int) testPage {
	p.Rotation = NormalizeAngle(p.Rotation + degrees)
	return p
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		revA     bool
		revB     bool
		expected []int
	}{
		{"in order", odd, even, false, false, []int{1, 2, 3, 4, 5, 6}},
		{"first reversed", odd, even, true, false, []int{5, 2, 3, 4, 1, 6}},
		{"second reversed", odd, even, false, true, []int{1, 6, 3, 4, 5, 2}},
		{"both reversed", odd, even, true, true, []int{5, 6, 3, 4, 1, 2}},
		{"first longer drops tail", []int{1, 3, 5, 7}, []int{2, 4}, false, false, []int{1, 2, 3, 4}},
		{"second longer drops tail", []int{1}, []int{2, 4, 6}, false, false, []int{1, 2}},
		{"reverse before pairing", []int{1, 3, 5, 7}, []int{2, 4}, true, false, []int{7, 2, 5, 4}},
		{"empty side", nil, even, false, false, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interleave(tt.a, tt.b, tt.revA, tt.revB)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Interleave mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterleave_DoesNotModifyInputs(t *testing.T) {
	a := []int{1, 3, 5}
	b := []int{2, 4, 6}
	Interleave(a, b, true, true)
	if diff := cmp.Diff([]int{1, 3, 5}, a); diff != "" {
		t.Errorf("first input modified (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 4, 6}, b); diff != "" {
		t.Errorf("second input modified (-want +got):\n%s", diff)
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		revA     bool
		revB     bool
		mode     Mode
		expected []int
	}{
		{"append", false, false, Append, []int{1, 3, 5, 2, 4, 6}},
		{"append first reversed", true, false, Append, []int{5, 3, 1, 2, 4, 6}},
		{"append second reversed", false, true, Append, []int{1, 3, 5, 6, 4, 2}},
		{"prepend", false, false, Prepend, []int{2, 4, 6, 1, 3, 5}},
		{"prepend first reversed", true, false, Prepend, []int{2, 4, 6, 5, 3, 1}},
		{"prepend second reversed", false, true, Prepend, []int{6, 4, 2, 1, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(odd, even, tt.revA, tt.revB, tt.mode)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Concat mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("uneven lengths keep every page", func(t *testing.T) {
		got := Concat([]int{1}, []int{2, 4, 6, 8}, false, false, Append)
		if diff := cmp.Diff([]int{1, 2, 4, 6, 8}, got); diff != "" {
			t.Errorf("Concat mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMerge(t *testing.T) {
	seqs := [][]int{odd, even, {7}}

	t.Run("list order", func(t *testing.T) {
		got := Merge(seqs, false)
		if diff := cmp.Diff([]int{1, 3, 5, 2, 4, 6, 7}, got); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reverse walks documents not pages", func(t *testing.T) {
		got := Merge(seqs, true)
		if diff := cmp.Diff([]int{7, 2, 4, 6, 1, 3, 5}, got); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("two documents", func(t *testing.T) {
		if diff := cmp.Diff([]int{2, 4, 6, 1, 3, 5}, Merge([][]int{odd, even}, true)); diff != "" {
			t.Errorf("Merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no documents", func(t *testing.T) {
		if got := Merge[int](nil, false); len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		expected []int
	}{
		{"first page", Only(1), []int{3, 5}},
		{"last two pages", Only(2, 3), []int{1}},
		{"every page", Only(1, 2, 3), []int{}},
		{"all selection", All(), []int{}},
		{"out of range ignored", Only(4, 10), []int{1, 3, 5}},
		{"mixed in and out of range", Only(2, 99), []int{1, 5}},
		{"empty selection", Only(), []int{1, 3, 5}},
		{"zero value selection", Selection{}, []int{1, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delete(odd, tt.sel)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Delete mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	seq := []testPage{{ID: 1}, {ID: 2, Rotation: 90}, {ID: 3}}

	t.Run("selected pages only", func(t *testing.T) {
		got := Rotate(seq, 90, Only(2, 3))
		want := []testPage{{ID: 1}, {ID: 2, Rotation: 180}, {ID: 3, Rotation: 90}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all pages wrap at 360", func(t *testing.T) {
		got := Rotate(seq, 270, All())
		want := []testPage{{ID: 1, Rotation: 270}, {ID: 2, Rotation: 0}, {ID: 3, Rotation: 270}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative angle turns counter clockwise", func(t *testing.T) {
		got := Rotate(seq, -90, Only(1))
		if got[0].Rotation != 270 {
			t.Errorf("expected rotation 270, got %d", got[0].Rotation)
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		got := Rotate(seq, 90, Only(7))
		if diff := cmp.Diff(seq, got); diff != "" {
			t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		Rotate(seq, 180, All())
		if seq[0].Rotation != 0 || seq[1].Rotation != 90 {
			t.Errorf("input sequence was modified: %+v", seq)
		}
	})
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-450, 270},
		{45, 45},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.expected {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	doc := []int{10, 20, 30, 40}

	// One single-page sequence per page, as Split produces them.
	var parts [][]int
	for _, p := range doc {
		parts = append(parts, []int{p})
	}

	if diff := cmp.Diff(doc, Merge(parts, false)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Reversed split, merged in file order, yields the reversed document.
	reversed := Ordered(doc, true)
	parts = parts[:0]
	for _, p := range reversed {
		parts = append(parts, []int{p})
	}
	if diff := cmp.Diff([]int{40, 30, 20, 10}, Merge(parts, false)); diff != "" {
		t.Errorf("reversed round trip mismatch (-want +got):\n%s", diff)
	}
}
