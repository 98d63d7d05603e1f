// Package recipe loads YAML batch recipes and runs their steps in order.
//
// A recipe looks like:
//
//	name: scan book
//	steps:
//	  - op: interleave
//	    first: front.pdf
//	    second: back.pdf
//	    reverse_second: true
//	    output: book.pdf
//	  - op: rotate
//	    input: book.pdf
//	    angle: 90
//	    pages: "1-2"
//	    output: book.pdf
//
// Relative paths are resolved against the recipe file's directory.
package recipe

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("recipe.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load recipe schema: %w", err)
	}
	schema, err := compiler.Compile("recipe.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe schema: %w", err)
	}
	return schema, nil
})

// Operation names.
const (
	OpInterleave = "interleave"
	OpAppend     = "append"
	OpMerge      = "merge"
	OpSplit      = "split"
	OpDelete     = "delete"
	OpRotate     = "rotate"
)

// Recipe is a named list of steps.
type Recipe struct {
	Name  string `json:"name,omitempty"`
	Steps []Step `json:"steps"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op string `json:"op"`

	// interleave, append
	First         string `json:"first,omitempty"`
	Second        string `json:"second,omitempty"`
	ReverseFirst  bool   `json:"reverse_first,omitempty"`
	ReverseSecond bool   `json:"reverse_second,omitempty"`
	Mode          string `json:"mode,omitempty"`

	// merge
	Inputs []string `json:"inputs,omitempty"`
	Sort   bool     `json:"sort,omitempty"`

	// split, delete, rotate
	Input     string `json:"input,omitempty"`
	OutputDir string `json:"output_dir,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
	Pages     Pages  `json:"pages,omitempty"`
	Angle     int    `json:"angle,omitempty"`

	Output  string `json:"output,omitempty"`
	Reverse bool   `json:"reverse,omitempty"`
}

// Pages is a page selection in recipe form. It accepts a string such as
// "1,3-5" or "all", or a bare page number.
type Pages string

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pages) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Pages(strconv.Itoa(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("pages must be a string or a number: %w", err)
	}
	*p = Pages(s)
	return nil
}

// Load reads and validates the recipe at path.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipe path: %w", err)
	}
	return Parse(data, filepath.Dir(abs))
}

// Parse decodes YAML recipe data, validates it against the recipe schema and
// resolves relative paths against baseDir.
func Parse(data []byte, baseDir string) (*Recipe, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse recipe YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON value types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("recipe is not representable as JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode recipe for validation: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("recipe does not match schema: %w", err)
	}

	var r Recipe
	if err := json.Unmarshal(encoded, &r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	r.resolve(baseDir)
	return &r, nil
}

func (r *Recipe) resolve(baseDir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}
	for i := range r.Steps {
		s := &r.Steps[i]
		s.First = abs(s.First)
		s.Second = abs(s.Second)
		s.Input = abs(s.Input)
		s.Output = abs(s.Output)
		s.OutputDir = abs(s.OutputDir)
		for j := range s.Inputs {
			s.Inputs[j] = abs(s.Inputs[j])
		}
	}
}
