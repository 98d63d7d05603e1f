package output

import (
	"bytes"
	"testing"
)

type result struct {
	Output string `json:"output" yaml:"output"`
	Pages  int    `json:"pages" yaml:"pages"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: "JSON", want: FormatJSON},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTo(t *testing.T) {
	data := result{Output: "book.pdf", Pages: 6}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatYAML, "output: book.pdf\npages: 6\n"},
		{FormatJSON, "{\n  \"output\": \"book.pdf\",\n  \"pages\": 6\n}\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := To(&buf, tt.format, data); err != nil {
				t.Fatalf("To failed: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, buf.String())
			}
		})
	}

	if err := To(&bytes.Buffer{}, Format("xml"), data); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	if p.Format() != FormatJSON {
		t.Errorf("expected json, got %s", p.Format())
	}
	if err := p.Print([]string{"a_001.pdf"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[\n  \"a_001.pdf\"\n]\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
