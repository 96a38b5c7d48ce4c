package slidelayout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/tsawler/slidelayout/format"
	"github.com/tsawler/slidelayout/layout"
	"github.com/tsawler/slidelayout/media"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/ocr"
	"github.com/tsawler/slidelayout/preview"
	"github.com/tsawler/slidelayout/snapshot"
)

// Extractor provides a fluent interface for extracting slide decks.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source, exactly one is set
	path   string
	reader io.Reader
	format format.Format
	source snapshot.Source

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:    e.path,
		reader:  e.reader,
		format:  e.format,
		source:  e.source,
		options: e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces the whole engine configuration.
//
// Example:
//
//	config := layout.DefaultConfig()
//	config.RowTolerance = 8
//	deck, _, err := slidelayout.Open("deck.html").WithConfig(config).Deck()
func (e *Extractor) WithConfig(config layout.Config) *Extractor {
	newExt := e.clone()
	newExt.options.config = config
	newExt.options = newExt.options.clone()
	return newExt
}

// SlideClass sets the class that marks slide containers.
//
// Example:
//
//	deck, _, err := slidelayout.Open("deck.html").SlideClass("page").Deck()
func (e *Extractor) SlideClass(class string) *Extractor {
	newExt := e.clone()
	newExt.options.config.SlideClass = class
	return newExt
}

// Precision sets the number of decimal places geometry is rounded to.
// -1 keeps full precision.
func (e *Extractor) Precision(places int) *Extractor {
	newExt := e.clone()
	newExt.options.config.Precision = places
	return newExt
}

// RowTolerance sets how far apart, in pixels, two top edges may be and
// still share a row.
func (e *Extractor) RowTolerance(px float64) *Extractor {
	newExt := e.clone()
	newExt.options.config.RowTolerance = px
	return newExt
}

// NoClip keeps element boxes that extend past the slide edges.
func (e *Extractor) NoClip() *Extractor {
	newExt := e.clone()
	newExt.options.config.ClipToSlide = false
	return newExt
}

// WithLogger sets the logger the engine reports to.
func (e *Extractor) WithLogger(l zerolog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// WithContext sets the context used when reading the snapshot.
func (e *Extractor) WithContext(ctx context.Context) *Extractor {
	newExt := e.clone()
	newExt.options.ctx = ctx
	return newExt
}

// ProbeMedia fills the natural size of HTML fixture images that lack a
// data-natural-size annotation by reading the image itself. Relative
// sources resolve against the fixture's directory.
func (e *Extractor) ProbeMedia() *Extractor {
	newExt := e.clone()
	newExt.options.probe = true
	return newExt
}

// WithProber probes HTML fixture images through p. It implies ProbeMedia.
func (e *Extractor) WithProber(p *media.Prober) *Extractor {
	newExt := e.clone()
	newExt.options.probe = true
	newExt.options.prober = p
	return newExt
}

// WithOCR fills empty alt attributes of HTML fixture images with text
// recognised in the image. It implies ProbeMedia. Binaries built without
// the ocr tag report a warning and extract without alt text.
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.probe = true
	newExt.options.ocr = true
	return newExt
}

// Indent sets the indentation of JSON output. An empty string produces
// compact JSON.
func (e *Extractor) Indent(indent string) *Extractor {
	newExt := e.clone()
	newExt.options.indent = indent
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Snapshot reads the source and returns the rendered document.
func (e *Extractor) Snapshot() (*snapshot.Document, error) {
	doc, _, err := e.snapshot()
	return doc, err
}

// Deck extracts the slide deck.
//
// Example:
//
//	deck, warnings, err := slidelayout.Open("deck.html").Deck()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, slide := range deck {
//	    fmt.Println(slide.SlideID, len(slide.Elements))
//	}
func (e *Extractor) Deck() (model.Deck, []Warning, error) {
	doc, warnings, err := e.snapshot()
	if err != nil {
		return nil, warnings, err
	}

	engine := layout.NewEngineWithConfig(e.options.config).WithLogger(e.options.logger)
	result, err := engine.Extract(doc)
	if err != nil {
		return nil, warnings, fmt.Errorf("extracting layout: %w", err)
	}
	warnings = append(warnings, fromLayout(result.Warnings)...)
	return result.Deck, warnings, nil
}

// Slide extracts a single slide by its 1-based id.
func (e *Extractor) Slide(id int) (*model.Slide, []Warning, error) {
	deck, warnings, err := e.Deck()
	if err != nil {
		return nil, warnings, err
	}
	if id < 1 || id > len(deck) {
		return nil, warnings, fmt.Errorf("slide %d out of range (deck has %d)", id, len(deck))
	}
	return &deck[id-1], warnings, nil
}

// JSON extracts the deck and encodes it as a JSON array of slides.
func (e *Extractor) JSON() ([]byte, []Warning, error) {
	deck, warnings, err := e.Deck()
	if err != nil {
		return nil, warnings, err
	}
	var data []byte
	if e.options.indent == "" {
		data, err = json.Marshal(deck)
	} else {
		data, err = json.MarshalIndent(deck, "", e.options.indent)
	}
	if err != nil {
		return nil, warnings, fmt.Errorf("encoding deck: %w", err)
	}
	return data, warnings, nil
}

// WriteJSON extracts the deck and writes it as JSON to w, followed by a
// newline.
func (e *Extractor) WriteJSON(w io.Writer) ([]Warning, error) {
	data, warnings, err := e.JSON()
	if err != nil {
		return warnings, err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return warnings, fmt.Errorf("writing deck: %w", err)
	}
	return warnings, nil
}

// Preview extracts the deck and renders it as a PDF to w.
func (e *Extractor) Preview(w io.Writer, opts preview.Options) ([]Warning, error) {
	deck, warnings, err := e.Deck()
	if err != nil {
		return warnings, err
	}
	if opts.BaseDir == "" && e.path != "" {
		opts.BaseDir = filepath.Dir(e.path)
	}
	rendered, err := preview.NewRendererWithOptions(opts).Render(w, deck)
	for _, msg := range rendered {
		warnings = append(warnings, Warning{Stage: StagePreview, Message: msg})
	}
	return warnings, err
}

// ============================================================================
// Helpers
// ============================================================================

// snapshot builds the source and reads the document from it.
func (e *Extractor) snapshot() (*snapshot.Document, []Warning, error) {
	var warnings []Warning

	html := snapshot.HTMLOptions{}
	if e.options.probe {
		prober := e.options.prober
		if prober == nil {
			config := media.DefaultConfig()
			if e.path != "" {
				config.BaseDir = filepath.Dir(e.path)
			}
			prober = media.NewProber(config)
		}
		html.Prober = prober
		html.BaseDir = prober.Config().BaseDir

		if e.options.ocr {
			client, err := ocr.New()
			switch {
			case errors.Is(err, ocr.ErrOCRNotEnabled):
				warnings = append(warnings, Warning{Stage: StageMedia, Message: "OCR is not enabled in this build, alt text left empty"})
			case err != nil:
				warnings = append(warnings, Warning{Stage: StageMedia, Message: fmt.Sprintf("OCR unavailable: %v", err)})
			default:
				defer client.Close()
				html.AltText = prober.WithRecognizer(client)
			}
		}
	}

	var src snapshot.Source
	switch {
	case e.source != nil:
		src = e.source
	case e.reader != nil:
		src = snapshot.ReaderSource{Reader: e.reader, Format: e.format, HTML: html}
	case e.path != "":
		if _, err := os.Stat(e.path); err != nil {
			return nil, warnings, fmt.Errorf("failed to open snapshot: %w", err)
		}
		src = snapshot.FileSource{Path: e.path, HTML: html}
	default:
		return nil, warnings, fmt.Errorf("no snapshot source specified")
	}

	doc, err := src.Snapshot(e.options.ctx)
	if err != nil {
		return nil, warnings, fmt.Errorf("reading snapshot: %w", err)
	}
	for _, msg := range doc.Warnings {
		warnings = append(warnings, Warning{Stage: StageSnapshot, Message: msg})
	}
	return doc, warnings, nil
}
