package layout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// ErrNilDocument is returned when Extract is called without a snapshot.
var ErrNilDocument = errors.New("nil snapshot document")

// Warning is a non-fatal condition met while extracting a slide.
type Warning struct {
	// SlideID is the 1-based slide the warning belongs to, 0 for the deck
	SlideID int
	Message string
}

// String returns the warning prefixed with its slide
func (w Warning) String() string {
	if w.SlideID == 0 {
		return w.Message
	}
	return fmt.Sprintf("slide %d: %s", w.SlideID, w.Message)
}

// Result is the outcome of extracting a document.
type Result struct {
	Deck     model.Deck
	Warnings []Warning

	// Fallback is set when no slide roots were found and the whole
	// document was extracted as a single slide.
	Fallback bool
}

// Engine extracts slide decks from rendered snapshots. An Engine is safe
// for concurrent use: every call allocates its own working state.
type Engine struct {
	config Config
	logger zerolog.Logger
}

// NewEngine creates an engine with default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultConfig())
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(config Config) *Engine {
	return &Engine{config: config, logger: zerolog.Nop()}
}

// WithLogger returns a copy of the engine that logs to l.
func (e *Engine) WithLogger(l zerolog.Logger) *Engine {
	c := *e
	c.logger = l
	return &c
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Extract converts every slide of doc into the deck. Slides are the nodes
// carrying the configured slide class; without any, the document root is
// extracted as a single slide.
func (e *Engine) Extract(doc *snapshot.Document) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if doc.Root == nil {
		return nil, snapshot.ErrNoRoot
	}

	roots, fallback := doc.SlideRoots(e.config.SlideClass)
	result := &Result{
		Deck:     make(model.Deck, 0, len(roots)),
		Fallback: fallback,
	}
	if fallback {
		result.Warnings = append(result.Warnings, Warning{
			Message: fmt.Sprintf("no .%s containers found, extracting the whole document as one slide", e.config.SlideClass),
		})
		e.logger.Warn().Str("class", e.config.SlideClass).Msg("slide selector matched nothing")
	}

	assembler := NewSlideAssemblerWithConfig(e.config, e.logger)
	for i, root := range roots {
		slide, warnings := assembler.Assemble(root, i+1)
		result.Deck = append(result.Deck, slide)
		result.Warnings = append(result.Warnings, warnings...)
	}

	e.logger.Debug().
		Int("slides", len(result.Deck)).
		Int("elements", result.Deck.ElementCount()).
		Int("warnings", len(result.Warnings)).
		Msg("extraction complete")
	return result, nil
}

// ExtractSlide converts a single slide root.
func (e *Engine) ExtractSlide(root *snapshot.Node, id int) (model.Slide, []Warning) {
	return NewSlideAssemblerWithConfig(e.config, e.logger).Assemble(root, id)
}
