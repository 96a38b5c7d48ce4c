// Package slidelayout provides a fluent API for turning rendered slide
// snapshots into positioned, styled JSON slide decks.
//
// Basic usage:
//
//	deck, warnings, err := slidelayout.Open("deck.html").Deck()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slidelayout.FormatWarnings(warnings))
//	}
//
// With options:
//
//	data, _, err := slidelayout.Open("snapshot.json").
//	    SlideClass("page").
//	    Precision(0).
//	    JSON()
//
// For finer control the layout, snapshot and media packages can be used
// directly.
package slidelayout

import (
	"io"

	"github.com/tsawler/slidelayout/format"
	"github.com/tsawler/slidelayout/snapshot"
)

// Open returns an Extractor for a snapshot file. The format (JSON, YAML or
// annotated HTML) is chosen from the extension, or from the content when
// the extension is not recognised. Nothing is read until a terminal
// operation such as Deck() runs.
//
// Example:
//
//	deck, warnings, err := slidelayout.Open("deck.html").Deck()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultOptions(),
	}
}

// FromReader returns an Extractor decoding a snapshot of a known format
// from r. The reader is consumed by the first terminal operation.
//
// Example:
//
//	deck, _, err := slidelayout.FromReader(os.Stdin, format.JSON).Deck()
func FromReader(r io.Reader, f format.Format) *Extractor {
	return &Extractor{
		reader:  r,
		format:  f,
		options: defaultOptions(),
	}
}

// FromSource returns an Extractor over any snapshot source, such as a
// live renderer.
func FromSource(src snapshot.Source) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// FromDocument returns an Extractor over an already-built snapshot.
func FromDocument(doc *snapshot.Document) *Extractor {
	return FromSource(snapshot.StaticSource{Doc: doc})
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := slidelayout.Must(slidelayout.Open("deck.html").Snapshot())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustDeck is a helper that wraps a call to Deck() or JSON() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	deck := slidelayout.MustDeck(slidelayout.Open("deck.html").Deck())
func MustDeck[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
