// Package format provides input and output format detection for slide
// extraction.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when a format cannot be determined.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates a JSON snapshot or deck.
	JSON
	// YAML indicates a YAML snapshot.
	YAML
	// HTML indicates an annotated HTML fixture.
	HTML
	// PDF indicates a rendered preview.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	case HTML:
		return ".html"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// IsSnapshot reports whether a snapshot can be read from the format.
func (f Format) IsSnapshot() bool {
	return f == JSON || f == YAML || f == HTML
}

// Parse converts a user-supplied format name ("json", "yml", ...) to a
// Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "html", "htm":
		return HTML, nil
	case "pdf":
		return PDF, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".html", ".htm":
		return HTML
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic inspects leading bytes to determine the format.
// Returns Unknown if the format cannot be determined from the content.
func DetectFromMagic(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(data) == 0 {
		return Unknown
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	switch data[0] {
	case '{', '[':
		return JSON
	case '<':
		if detectHTMLMagic(data) {
			return HTML
		}
		return Unknown
	}

	if bytes.HasPrefix(data, []byte("---")) || bytes.HasPrefix(data, []byte("version:")) {
		return YAML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	upper := strings.ToUpper(string(head))
	for _, sig := range []string{"<!DOCTYPE HTML", "<HTML", "<BODY", "<DIV", "<SECTION"} {
		if strings.HasPrefix(upper, sig) {
			return true
		}
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// DetectFromReader reads up to 512 bytes from r to determine the format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// Resolve picks the format for a file: the extension wins, content sniffing
// is the fallback.
func Resolve(filename string, data []byte) (Format, error) {
	if f := Detect(filename); f != Unknown {
		return f, nil
	}
	if f := DetectFromMagic(data); f != Unknown {
		return f, nil
	}
	return Unknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}
