package preview

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsawler/slidelayout/model"
)

// PxToPt converts CSS pixels to PDF points.
const PxToPt = 0.75

// Options configures rendering.
type Options struct {
	// BaseDir is the directory relative image sources resolve against.
	BaseDir string

	// FontFamily is the core PDF font used for all text.
	// Default: "Helvetica"
	FontFamily string

	// Outline draws a thin frame around every element box.
	Outline bool

	// Compress enables content stream compression.
	// Default: true
	Compress bool
}

// DefaultOptions returns default rendering options
func DefaultOptions() Options {
	return Options{
		FontFamily: "Helvetica",
		Compress:   true,
	}
}

// Renderer draws decks as PDF documents.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with default options
func NewRenderer() *Renderer {
	return NewRendererWithOptions(DefaultOptions())
}

// NewRendererWithOptions creates a renderer with custom options
func NewRendererWithOptions(opts Options) *Renderer {
	if opts.FontFamily == "" {
		opts.FontFamily = "Helvetica"
	}
	return &Renderer{opts: opts}
}

// Render writes deck as a PDF to w. The returned warnings name elements
// that could not be drawn faithfully, such as unreadable images.
func (r *Renderer) Render(w io.Writer, deck model.Deck) ([]string, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetCompression(r.opts.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	p := &painter{
		pdf:  pdf,
		opts: r.opts,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
	for i := range deck {
		p.slide(&deck[i])
		if err := pdf.Error(); err != nil {
			return p.warnings, fmt.Errorf("rendering slide %d: %w", deck[i].SlideID, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return p.warnings, fmt.Errorf("writing PDF: %w", err)
	}
	return p.warnings, nil
}

// RenderFile writes deck as a PDF file at path.
func (r *Renderer) RenderFile(path string, deck model.Deck) ([]string, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	warnings, err := r.Render(f, deck)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return warnings, err
}
