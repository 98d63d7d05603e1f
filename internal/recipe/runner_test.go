package recipe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
	"github.com/jackzampolin/pdfmultitool/internal/pdf"
	"github.com/jackzampolin/pdfmultitool/internal/pdftest"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

// recordingOps records every call and fails the operation named in failOp.
type recordingOps struct {
	calls  []string
	failOp string

	concat transform.ConcatRequest
	merge  transform.MergeRequest
	delete transform.DeleteRequest
	rotate transform.RotateRequest
}

var errBoom = errors.New("boom")

func (o *recordingOps) call(op, output string, pageCount int) (*transform.Result, error) {
	o.calls = append(o.calls, op)
	if op == o.failOp {
		return nil, errBoom
	}
	return &transform.Result{Output: output, Pages: pageCount}, nil
}

func (o *recordingOps) Interleave(req transform.PairRequest) (*transform.Result, error) {
	return o.call(OpInterleave, req.Output, 6)
}

func (o *recordingOps) Concatenate(req transform.ConcatRequest) (*transform.Result, error) {
	o.concat = req
	return o.call(OpAppend, req.Output, 6)
}

func (o *recordingOps) MergeAll(req transform.MergeRequest) (*transform.Result, error) {
	o.merge = req
	return o.call(OpMerge, req.Output, 6)
}

func (o *recordingOps) Split(req transform.SplitRequest) ([]string, error) {
	if _, err := o.call(OpSplit, "", 0); err != nil {
		return nil, err
	}
	return pages.SplitNames(req.Input, req.OutputDir, 2), nil
}

func (o *recordingOps) DeletePages(req transform.DeleteRequest) (*transform.Result, error) {
	o.delete = req
	return o.call(OpDelete, req.Output, 5)
}

func (o *recordingOps) RotatePages(req transform.RotateRequest) (*transform.Result, error) {
	o.rotate = req
	return o.call(OpRotate, req.Output, 5)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunner_Run(t *testing.T) {
	r, err := Parse([]byte(bookRecipe), "/work")
	if err != nil {
		t.Fatal(err)
	}

	ops := &recordingOps{}
	results, err := NewRunner(ops, quietLogger()).Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	wantCalls := []string{OpInterleave, OpAppend, OpMerge, OpSplit, OpDelete, OpRotate}
	if diff := cmp.Diff(wantCalls, ops.calls); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Index != i+1 || res.Op != wantCalls[i] {
			t.Errorf("result %d: got index %d op %s", i, res.Index, res.Op)
		}
	}
	if got := len(results[3].Outputs); got != 2 {
		t.Errorf("expected split to report 2 outputs, got %d", got)
	}

	if ops.concat.Mode != pages.Prepend {
		t.Errorf("expected prepend mode, got %s", ops.concat.Mode)
	}
	if got := ops.delete.Pages.String(); got != "2" {
		t.Errorf("expected delete selection 2, got %s", got)
	}
	if got := ops.rotate.Pages.String(); got != "1,3-4" {
		t.Errorf("expected rotate selection 1,3-4, got %s", got)
	}
	if ops.rotate.Angle != -90 {
		t.Errorf("expected angle -90, got %d", ops.rotate.Angle)
	}
}

func TestRunner_RotateDefaultsToAllPages(t *testing.T) {
	r := &Recipe{Steps: []Step{{Op: OpRotate, Input: "a.pdf", Output: "b.pdf", Angle: 180}}}
	ops := &recordingOps{}
	if _, err := NewRunner(ops, quietLogger()).Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if !ops.rotate.Pages.IsAll() {
		t.Errorf("expected all pages, got %s", ops.rotate.Pages)
	}
}

func TestRunner_MergeSortsInputs(t *testing.T) {
	r := &Recipe{Steps: []Step{{
		Op:     OpMerge,
		Inputs: []string{"part-10.pdf", "part-2.pdf", "cover.pdf"},
		Sort:   true,
		Output: "book.pdf",
	}}}
	ops := &recordingOps{}
	if _, err := NewRunner(ops, quietLogger()).Run(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	want := []string{"cover.pdf", "part-2.pdf", "part-10.pdf"}
	if diff := cmp.Diff(want, ops.merge.Inputs); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_StopsAtFailingStep(t *testing.T) {
	r, err := Parse([]byte(bookRecipe), "/work")
	if err != nil {
		t.Fatal(err)
	}

	ops := &recordingOps{failOp: OpMerge}
	results, err := NewRunner(ops, quietLogger()).Run(context.Background(), r)

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected StepError, got %v", err)
	}
	if stepErr.Index != 3 || stepErr.Op != OpMerge {
		t.Errorf("expected step 3 (merge), got step %d (%s)", stepErr.Index, stepErr.Op)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 completed results, got %d", len(results))
	}
	if len(ops.calls) != 3 {
		t.Errorf("no step should run after the failure, got calls %v", ops.calls)
	}
}

func TestRunner_InvalidSelection(t *testing.T) {
	r := &Recipe{Steps: []Step{{Op: OpDelete, Input: "a.pdf", Output: "b.pdf", Pages: "3-1"}}}
	_, err := NewRunner(&recordingOps{}, quietLogger()).Run(context.Background(), r)
	if !errors.Is(err, pages.ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	r, err := Parse([]byte(bookRecipe), "/work")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ops := &recordingOps{}
	_, err = NewRunner(ops, quietLogger()).Run(ctx, r)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(ops.calls) != 0 {
		t.Errorf("no step should run, got %v", ops.calls)
	}
}

func TestRunner_WithPDFs(t *testing.T) {
	dir := t.TempDir()
	pdftest.OddEven(t, dir)
	if err := os.Mkdir(filepath.Join(dir, "pages"), 0o755); err != nil {
		t.Fatal(err)
	}
	recipePath := filepath.Join(dir, "book.yaml")
	content := `
steps:
  - op: interleave
    first: odd.pdf
    second: even.pdf
    output: book.pdf
  - op: delete
    input: book.pdf
    pages: "5-6"
    output: book.pdf
  - op: split
    input: book.pdf
    output_dir: pages
`
	if err := os.WriteFile(recipePath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	codec, err := pdf.NewCodec(pdf.Options{})
	if err != nil {
		t.Fatal(err)
	}
	r, err := Load(recipePath)
	if err != nil {
		t.Fatal(err)
	}
	tr := transform.New[pdf.Page, *pdf.Document](codec, quietLogger())
	results, err := NewRunner(tr, quietLogger()).Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[1].Pages != 4 {
		t.Errorf("expected 4 pages after delete, got %d", results[1].Pages)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "pages"))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"book_001.pdf", "book_002.pdf", "book_003.pdf", "book_004.pdf"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("split outputs mismatch (-want +got):\n%s", diff)
	}
}
