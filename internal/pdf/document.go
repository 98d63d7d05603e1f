package pdf

import (
	"github.com/jackzampolin/pdfmultitool/internal/pages"
)

// Document is a PDF file read fully into memory.
// Pages hold references back to their document, so a Document must stay
// open until every output built from its pages has been written.
type Document struct {
	path  string
	data  []byte
	pages []Page
}

// Path returns the file the document was read from.
func (d *Document) Path() string {
	return d.path
}

// Pages returns the document's pages in order.
func (d *Document) Pages() []Page {
	return d.pages
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Close releases the document's bytes. It is safe to call more than once.
func (d *Document) Close() error {
	d.data = nil
	return nil
}

func (d *Document) closed() bool {
	return d.data == nil
}

// Page references one page of a Document.
type Page struct {
	doc    *Document
	number int // 1-based within doc
	base   int // orientation stored in the source file
	rotate int // current orientation, [0, 360)

	// Width and Height are the effective MediaBox dimensions in points,
	// before rotation.
	Width  float64
	Height float64
}

// Number returns the 1-based position of the page in its source document.
func (p Page) Number() int {
	return p.number
}

// Source returns the path of the page's document.
func (p Page) Source() string {
	if p.doc == nil {
		return ""
	}
	return p.doc.path
}

// Orientation returns the page rotation in degrees, in [0, 360).
func (p Page) Orientation() int {
	return p.rotate
}

// Rotate returns a copy of the page turned clockwise by degrees.
func (p Page) Rotate(degrees int) Page {
	p.rotate = pages.NormalizeAngle(p.rotate + degrees)
	return p
}

// delta is the rotation still to be applied to the stored page.
func (p Page) delta() int {
	return pages.NormalizeAngle(p.rotate - p.base)
}
