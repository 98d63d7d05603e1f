// Package pdf adapts pdfcpu to the page-sequence operations: it opens PDF
// files into in-memory documents whose pages can be reordered and rotated by
// reference, and serializes page sequences back into new files.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
)

const (
	// ValidationRelaxed tolerates common format violations in input files.
	ValidationRelaxed = "relaxed"
	// ValidationStrict rejects input files that violate the PDF standard.
	ValidationStrict = "strict"
)

var disableConfigDir sync.Once

// Options configures a Codec.
type Options struct {
	// Validation is ValidationRelaxed (default) or ValidationStrict.
	Validation string
}

// Codec reads and writes PDF documents.
// It is not safe for concurrent use.
type Codec struct {
	conf *model.Configuration
}

// NewCodec creates a codec with the given options.
func NewCodec(opts Options) (*Codec, error) {
	// pdfcpu would otherwise create a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	switch strings.ToLower(opts.Validation) {
	case "", ValidationRelaxed:
		conf.ValidationMode = model.ValidationRelaxed
	case ValidationStrict:
		conf.ValidationMode = model.ValidationStrict
	default:
		return nil, fmt.Errorf("unknown validation mode: %s", opts.Validation)
	}
	return &Codec{conf: conf}, nil
}

// Open reads the file at path into memory and indexes its pages.
// The file itself is closed before Open returns.
func (c *Codec) Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if mt := mimetype.Detect(data); !mt.Is("application/pdf") {
		return nil, &InputError{Path: path, Err: fmt.Errorf("%w (detected %s)", ErrNotPDF, mt.String())}
	}

	ctx, err := api.ReadContext(bytes.NewReader(data), c.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", path, err)
	}

	doc := &Document{path: path, data: data}
	doc.pages = make([]Page, 0, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		pageDict, _, inherited, err := ctx.PageDict(i, false)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d of %s: %w", i, path, err)
		}

		rotate := 0
		if inherited != nil {
			rotate = inherited.Rotate
		}
		if r := pageDict.IntEntry("Rotate"); r != nil {
			rotate = *r
		}
		rotate = pages.NormalizeAngle(rotate)

		p := Page{doc: doc, number: i, base: rotate, rotate: rotate}
		if inherited != nil && inherited.MediaBox != nil {
			p.Width = inherited.MediaBox.Width()
			p.Height = inherited.MediaBox.Height()
		}
		doc.pages = append(doc.pages, p)
	}
	return doc, nil
}

// Write serializes pages, in order, into a new PDF at dest. The document is
// built in memory and then moved into place, so dest is either fully
// written or untouched. An empty page list produces a zero-page document.
func (c *Codec) Write(dest string, pp []Page) error {
	data, err := c.Encode(pp)
	if err != nil {
		return err
	}
	return writeFileAtomic(dest, data)
}

// Encode serializes pages, in order, into a new PDF in memory.
func (c *Codec) Encode(pp []Page) ([]byte, error) {
	if len(pp) == 0 {
		return emptyDocument(), nil
	}

	src, offsets, err := c.source(pp)
	if err != nil {
		return nil, err
	}

	selection := make([]string, len(pp))
	for i, p := range pp {
		selection[i] = strconv.Itoa(offsets[p.doc] + p.number)
	}
	var buf bytes.Buffer
	if err := api.Collect(src, &buf, selection, c.conf); err != nil {
		return nil, fmt.Errorf("failed to collect pages: %w", err)
	}
	data := buf.Bytes()

	// Rotation is applied per distinct angle, addressing output positions.
	var angles []int
	groups := make(map[int][]string)
	for i, p := range pp {
		d := p.delta()
		if d == 0 {
			continue
		}
		if _, ok := groups[d]; !ok {
			angles = append(angles, d)
		}
		groups[d] = append(groups[d], strconv.Itoa(i+1))
	}
	for _, angle := range angles {
		var out bytes.Buffer
		if err := api.Rotate(bytes.NewReader(data), &out, angle, groups[angle], c.conf); err != nil {
			return nil, fmt.Errorf("failed to rotate pages by %d: %w", angle, err)
		}
		data = out.Bytes()
	}

	return data, nil
}

// source returns a single reader holding every document referenced by pp and
// the page offset of each document within it. Several documents are merged
// in order of first reference.
func (c *Codec) source(pp []Page) (io.ReadSeeker, map[*Document]int, error) {
	var docs []*Document
	offsets := make(map[*Document]int)
	total := 0
	for _, p := range pp {
		if p.doc == nil {
			return nil, nil, errors.New("page does not belong to a document")
		}
		if _, seen := offsets[p.doc]; seen {
			continue
		}
		if p.doc.closed() {
			return nil, nil, fmt.Errorf("%s: %w", p.doc.path, ErrClosed)
		}
		offsets[p.doc] = total
		total += p.doc.PageCount()
		docs = append(docs, p.doc)
	}

	if len(docs) == 1 {
		return bytes.NewReader(docs[0].data), offsets, nil
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		readers[i] = bytes.NewReader(d.data)
	}
	var merged bytes.Buffer
	if err := api.MergeRaw(readers, &merged, false, c.conf); err != nil {
		return nil, nil, fmt.Errorf("failed to merge sources: %w", err)
	}
	return bytes.NewReader(merged.Bytes()), offsets, nil
}
