package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackzampolin/pdfmultitool/internal/filelist"
	"github.com/jackzampolin/pdfmultitool/internal/pages"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

// Operations is the set of page operations a recipe can call.
// *transform.Transformer satisfies it for any page type.
type Operations interface {
	Interleave(transform.PairRequest) (*transform.Result, error)
	Concatenate(transform.ConcatRequest) (*transform.Result, error)
	MergeAll(transform.MergeRequest) (*transform.Result, error)
	Split(transform.SplitRequest) ([]string, error)
	DeletePages(transform.DeleteRequest) (*transform.Result, error)
	RotatePages(transform.RotateRequest) (*transform.Result, error)
}

// StepError reports the step that stopped a run. Index is 1-based.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StepResult is the outcome of one completed step.
type StepResult struct {
	Index   int      `json:"index" yaml:"index"`
	Op      string   `json:"op" yaml:"op"`
	Outputs []string `json:"outputs" yaml:"outputs"`
	Pages   int      `json:"pages" yaml:"pages"`
}

// Runner executes recipes one step at a time.
type Runner struct {
	ops    Operations
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger uses slog.Default().
func NewRunner(ops Operations, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{ops: ops, logger: logger}
}

// Run executes the steps in order and stops at the first failure. The context
// is checked before every step; a running step is never interrupted. Results
// of the steps completed before a failure are returned with the error.
func (r *Runner) Run(ctx context.Context, rec *Recipe) ([]StepResult, error) {
	log := r.logger.With("recipe", rec.Name)
	results := make([]StepResult, 0, len(rec.Steps))

	for i, step := range rec.Steps {
		index := i + 1
		if err := ctx.Err(); err != nil {
			return results, &StepError{Index: index, Op: step.Op, Err: err}
		}

		log.Info("running step", "step", index, "of", len(rec.Steps), "op", step.Op)
		res, err := r.runStep(step)
		if err != nil {
			return results, &StepError{Index: index, Op: step.Op, Err: err}
		}
		res.Index = index
		res.Op = step.Op
		results = append(results, res)
	}

	log.Info("recipe complete", "steps", len(results))
	return results, nil
}

func (r *Runner) runStep(s Step) (StepResult, error) {
	pair := transform.PairRequest{
		First:         s.First,
		Second:        s.Second,
		Output:        s.Output,
		ReverseFirst:  s.ReverseFirst,
		ReverseSecond: s.ReverseSecond,
	}

	switch s.Op {
	case OpInterleave:
		return fromResult(r.ops.Interleave(pair))

	case OpAppend:
		mode := pages.Append
		if s.Mode == pages.Prepend.String() {
			mode = pages.Prepend
		}
		return fromResult(r.ops.Concatenate(transform.ConcatRequest{PairRequest: pair, Mode: mode}))

	case OpMerge:
		inputs := s.Inputs
		if s.Sort {
			inputs = filelist.SortByNumber(inputs)
		}
		return fromResult(r.ops.MergeAll(transform.MergeRequest{Inputs: inputs, Output: s.Output, Reverse: s.Reverse}))

	case OpSplit:
		paths, err := r.ops.Split(transform.SplitRequest{
			Input:     s.Input,
			OutputDir: s.OutputDir,
			Reverse:   s.Reverse,
			DryRun:    s.DryRun,
		})
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Outputs: paths, Pages: len(paths)}, nil

	case OpDelete:
		sel, err := pages.ParseSelection(string(s.Pages))
		if err != nil {
			return StepResult{}, err
		}
		return fromResult(r.ops.DeletePages(transform.DeleteRequest{Input: s.Input, Output: s.Output, Pages: sel}))

	case OpRotate:
		sel := pages.All()
		if s.Pages != "" {
			var err error
			if sel, err = pages.ParseSelection(string(s.Pages)); err != nil {
				return StepResult{}, err
			}
		}
		return fromResult(r.ops.RotatePages(transform.RotateRequest{Input: s.Input, Output: s.Output, Angle: s.Angle, Pages: sel}))

	default:
		return StepResult{}, fmt.Errorf("unknown operation: %s", s.Op)
	}
}

func fromResult(res *transform.Result, err error) (StepResult, error) {
	if err != nil {
		return StepResult{}, err
	}
	return StepResult{Outputs: []string{res.Output}, Pages: res.Pages}, nil
}
