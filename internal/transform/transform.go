// Package transform runs the page-sequence operations against files: it opens
// the inputs through a codec, applies the sequence transform and writes the
// result exactly once.
package transform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
)

// Document is an opened input.
type Document[P any] interface {
	Pages() []P
	Close() error
}

// Codec opens documents and serializes page sequences.
// Write must leave dest untouched when it fails.
type Codec[P any, D Document[P]] interface {
	Open(path string) (D, error)
	Write(dest string, seq []P) error
}

// Transformer runs operations over page type P.
// It holds no state between calls.
type Transformer[P pages.Rotator[P], D Document[P]] struct {
	codec  Codec[P, D]
	logger *slog.Logger
}

// New creates a Transformer. A nil logger uses slog.Default().
func New[P pages.Rotator[P], D Document[P]](codec Codec[P, D], logger *slog.Logger) *Transformer[P, D] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer[P, D]{codec: codec, logger: logger}
}

// Result describes a written output document.
type Result struct {
	Output string `json:"output" yaml:"output"`
	Pages  int    `json:"pages" yaml:"pages"`
}

// PairRequest names two inputs and an output.
type PairRequest struct {
	First         string
	Second        string
	Output        string
	ReverseFirst  bool
	ReverseSecond bool
}

// ConcatRequest is a PairRequest with a placement mode.
type ConcatRequest struct {
	PairRequest
	Mode pages.Mode
}

// MergeRequest lists documents to merge in order.
type MergeRequest struct {
	Inputs  []string
	Output  string
	Reverse bool
}

// SplitRequest splits Input into one file per page inside OutputDir.
type SplitRequest struct {
	Input     string
	OutputDir string
	Reverse   bool
	DryRun    bool
}

// DeleteRequest removes the selected pages of Input.
type DeleteRequest struct {
	Input  string
	Output string
	Pages  pages.Selection
}

// RotateRequest turns the selected pages of Input clockwise by Angle degrees.
type RotateRequest struct {
	Input  string
	Output string
	Angle  int
	Pages  pages.Selection
}

// Interleave zips the pages of two documents: first, second, first, ...
// Pairing stops at the shorter document.
func (t *Transformer[P, D]) Interleave(req PairRequest) (*Result, error) {
	log := t.begin("interleave", "first", req.First, "second", req.Second)

	docs, err := t.open(log, req.First, req.Second)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	seq := pages.Interleave(docs[0].Pages(), docs[1].Pages(), req.ReverseFirst, req.ReverseSecond)
	return t.write(log, req.Output, seq)
}

// Concatenate joins two documents, appending or prepending the second.
func (t *Transformer[P, D]) Concatenate(req ConcatRequest) (*Result, error) {
	log := t.begin("concatenate", "first", req.First, "second", req.Second, "mode", req.Mode.String())

	docs, err := t.open(log, req.First, req.Second)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	seq := pages.Concat(docs[0].Pages(), docs[1].Pages(), req.ReverseFirst, req.ReverseSecond, req.Mode)
	return t.write(log, req.Output, seq)
}

// MergeAll concatenates every input in list order, or in reverse list order.
func (t *Transformer[P, D]) MergeAll(req MergeRequest) (*Result, error) {
	log := t.begin("merge", "inputs", len(req.Inputs), "reverse", req.Reverse)

	if len(req.Inputs) == 0 {
		return nil, errors.New("no input documents provided")
	}

	docs, err := t.open(log, req.Inputs...)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	seqs := make([][]P, len(docs))
	for i, d := range docs {
		seqs[i] = d.Pages()
	}
	return t.write(log, req.Output, pages.Merge(seqs, req.Reverse))
}

// Split writes every page of Input to its own file inside OutputDir and
// returns the output paths in output order. With DryRun nothing is written
// but the same paths are returned. Files written before a failure are
// removed again.
func (t *Transformer[P, D]) Split(req SplitRequest) ([]string, error) {
	log := t.begin("split", "input", req.Input, "dir", req.OutputDir, "reverse", req.Reverse, "dry_run", req.DryRun)

	info, err := os.Stat(req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("invalid output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid output directory: %s is not a directory", req.OutputDir)
	}

	docs, err := t.open(log, req.Input)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	seq := pages.Ordered(docs[0].Pages(), req.Reverse)
	paths := pages.SplitNames(req.Input, req.OutputDir, len(seq))
	if req.DryRun {
		log.Info("dry run, nothing written", "outputs", len(paths))
		return paths, nil
	}

	for i, p := range seq {
		if err := t.codec.Write(paths[i], []P{p}); err != nil {
			for _, written := range paths[:i] {
				os.Remove(written)
			}
			return nil, fmt.Errorf("failed to write page %d of %d: %w", i+1, len(seq), err)
		}
		log.Debug("wrote page", "output", paths[i])
	}

	log.Info("split complete", "outputs", len(paths))
	return paths, nil
}

// DeletePages removes the selected pages. Positions past the end of the
// document are ignored. Removing every page yields a zero-page document.
func (t *Transformer[P, D]) DeletePages(req DeleteRequest) (*Result, error) {
	log := t.begin("delete", "input", req.Input, "pages", req.Pages.String())

	docs, err := t.open(log, req.Input)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	src := docs[0].Pages()
	t.logIgnored(log, req.Pages, len(src))
	seq := pages.Delete(src, req.Pages)
	if len(seq) == 0 {
		log.Warn("every page removed, writing an empty document")
	}
	return t.write(log, req.Output, seq)
}

// RotatePages turns the selected pages clockwise by Angle degrees, on top of
// their current orientation.
func (t *Transformer[P, D]) RotatePages(req RotateRequest) (*Result, error) {
	log := t.begin("rotate", "input", req.Input, "angle", req.Angle, "pages", req.Pages.String())

	docs, err := t.open(log, req.Input)
	if err != nil {
		return nil, err
	}
	defer t.closeAll(log, docs)

	src := docs[0].Pages()
	t.logIgnored(log, req.Pages, len(src))
	return t.write(log, req.Output, pages.Rotate(src, req.Angle, req.Pages))
}

// begin returns a logger tagged with the operation and a fresh run ID.
func (t *Transformer[P, D]) begin(op string, args ...any) *slog.Logger {
	log := t.logger.With("op", op, "run_id", uuid.New().String())
	log.Debug("starting", args...)
	return log
}

// open opens every path in order. If one fails, the documents opened so far
// are closed before the error is returned.
func (t *Transformer[P, D]) open(log *slog.Logger, paths ...string) ([]D, error) {
	docs := make([]D, 0, len(paths))
	for _, path := range paths {
		doc, err := t.codec.Open(path)
		if err != nil {
			t.closeAll(log, docs)
			log.Error("failed to open input", "path", path, "error", err)
			return nil, err
		}
		log.Debug("opened input", "path", path, "pages", len(doc.Pages()))
		docs = append(docs, doc)
	}
	return docs, nil
}

func (t *Transformer[P, D]) closeAll(log *slog.Logger, docs []D) {
	for _, d := range docs {
		if err := d.Close(); err != nil {
			log.Warn("failed to close input", "error", err)
		}
	}
}

func (t *Transformer[P, D]) write(log *slog.Logger, output string, seq []P) (*Result, error) {
	if err := t.codec.Write(output, seq); err != nil {
		log.Error("failed to write output", "output", output, "error", err)
		return nil, err
	}
	log.Info("wrote output", "output", output, "pages", len(seq))
	return &Result{Output: output, Pages: len(seq)}, nil
}

func (t *Transformer[P, D]) logIgnored(log *slog.Logger, sel pages.Selection, pageCount int) {
	if ignored := sel.OutOfRange(pageCount); len(ignored) > 0 {
		log.Debug("ignoring out of range pages", "pages", ignored, "page_count", pageCount)
	}
}
