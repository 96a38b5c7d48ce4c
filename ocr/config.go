// Package ocr recognises text inside slide images so that images without
// alternative text can be described.
//
// Recognition wraps the Tesseract engine via gosseract and is only compiled
// with the "ocr" build tag:
//
//	go build -tags ocr ./...
//
// Without the tag every constructor returns [ErrOCRNotEnabled]. Tesseract
// must be installed for the tagged build. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"
	"strings"
	"unicode"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Config holds recognition settings.
type Config struct {
	// Languages is a "+" separated list of Tesseract languages.
	// Default: "eng"
	Languages string

	// SingleBlock treats each image as one uniform block of text, which
	// suits logos and labelled graphics better than full page analysis.
	SingleBlock bool

	// MaxLength caps the returned text in characters; 0 disables the cap.
	// Default: 120
	MaxLength int
}

// DefaultConfig returns settings tuned for short image captions
func DefaultConfig() Config {
	return Config{
		Languages:   "eng",
		SingleBlock: true,
		MaxLength:   120,
	}
}

// cleanCaption folds recognised text onto one line and truncates it at a
// word boundary when it exceeds max characters.
func cleanCaption(raw string, max int) string {
	text := strings.Join(strings.Fields(raw), " ")
	text = strings.TrimFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
