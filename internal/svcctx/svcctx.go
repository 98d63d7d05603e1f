// Package svcctx provides service context for dependency injection via context.
// Commands build the services once in the root command and extract what they
// need from cmd.Context().
package svcctx

import (
	"context"
	"log/slog"

	"github.com/jackzampolin/pdfmultitool/internal/config"
	"github.com/jackzampolin/pdfmultitool/internal/home"
	"github.com/jackzampolin/pdfmultitool/internal/output"
	"github.com/jackzampolin/pdfmultitool/internal/pdf"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

// Transformer runs page operations on PDF files.
type Transformer = transform.Transformer[pdf.Page, *pdf.Document]

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Config      *config.Manager
	Logger      *slog.Logger
	Home        *home.Dir
	Codec       *pdf.Codec
	Transformer *Transformer
	Printer     *output.Printer
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// ConfigFrom extracts the config manager from context.
func ConfigFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// LoggerFrom extracts the logger from context.
// Falls back to slog.Default() so callers can log unconditionally.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// CodecFrom extracts the PDF codec from context.
func CodecFrom(ctx context.Context) *pdf.Codec {
	if s := ServicesFrom(ctx); s != nil {
		return s.Codec
	}
	return nil
}

// TransformerFrom extracts the page operation runner from context.
func TransformerFrom(ctx context.Context) *Transformer {
	if s := ServicesFrom(ctx); s != nil {
		return s.Transformer
	}
	return nil
}

// PrinterFrom extracts the result printer from context.
func PrinterFrom(ctx context.Context) *output.Printer {
	if s := ServicesFrom(ctx); s != nil {
		return s.Printer
	}
	return nil
}
