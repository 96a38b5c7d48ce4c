package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/slidelayout/format"
)

// FormatVersion is the snapshot file version this package reads.
const FormatVersion = 1

// File is the on-disk encoding of a snapshot.
type File struct {
	Version  int         `json:"version" yaml:"version"`
	URL      string      `json:"url,omitempty" yaml:"url,omitempty"`
	Viewport Viewport    `json:"viewport" yaml:"viewport"`
	Root     *NodeRecord `json:"root" yaml:"root"`
}

// NodeRecord is the on-disk encoding of one node.
type NodeRecord struct {
	Type          string            `json:"type,omitempty" yaml:"type,omitempty"`
	Tag           string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Attrs         map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Rect          *Rect             `json:"rect,omitempty" yaml:"rect,omitempty"`
	RangeRect     *Rect             `json:"rangeRect,omitempty" yaml:"rangeRect,omitempty"`
	SettledRect   *Rect             `json:"settledRect,omitempty" yaml:"settledRect,omitempty"`
	Style         map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
	Text          string            `json:"text,omitempty" yaml:"text,omitempty"`
	NaturalWidth  float64           `json:"naturalWidth,omitempty" yaml:"naturalWidth,omitempty"`
	NaturalHeight float64           `json:"naturalHeight,omitempty" yaml:"naturalHeight,omitempty"`
	Children      []*NodeRecord     `json:"children,omitempty" yaml:"children,omitempty"`
}

// DecodeJSON reads a JSON snapshot file.
func DecodeJSON(r io.Reader) (*Document, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding JSON snapshot: %w", err)
	}
	return f.Document()
}

// DecodeYAML reads a YAML snapshot file.
func DecodeYAML(r io.Reader) (*Document, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding YAML snapshot: %w", err)
	}
	return f.Document()
}

// Document builds the node tree described by the file.
func (f *File) Document() (*Document, error) {
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if f.Root == nil {
		return nil, ErrNoRoot
	}
	root := f.Root.node()
	if !root.IsElement() {
		return nil, fmt.Errorf("%w: root is a text node", ErrNoRoot)
	}
	return &Document{Root: root, Viewport: f.Viewport, URL: f.URL}, nil
}

func (r *NodeRecord) node() *Node {
	if strings.EqualFold(r.Type, "text") || (r.Type == "" && r.Tag == "") {
		return NewText(r.Text)
	}

	n := NewElement(r.Tag)
	for k, v := range r.Attrs {
		n.Attrs[k] = v
	}
	for k, v := range r.Style {
		n.Style[k] = v
	}
	if r.Rect != nil {
		n.Rect = *r.Rect
	}
	if r.RangeRect != nil {
		rr := *r.RangeRect
		n.RangeRect = &rr
	}
	if r.SettledRect != nil {
		sr := *r.SettledRect
		n.SettledRect = &sr
	}
	n.NaturalWidth = r.NaturalWidth
	n.NaturalHeight = r.NaturalHeight

	// a text field on an element stands for a single text child
	if r.Text != "" && len(r.Children) == 0 {
		n.AppendChild(NewText(r.Text))
	}
	for _, c := range r.Children {
		if c == nil {
			continue
		}
		n.AppendChild(c.node())
	}
	return n
}

// FileSource reads a snapshot from a file, choosing the decoder from the
// file extension or, failing that, its content.
type FileSource struct {
	Path string

	// HTML configures fixture parsing when the file is HTML.
	HTML HTMLOptions
}

// Snapshot implements Source.
func (s FileSource) Snapshot(ctx context.Context) (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	f, err := format.Resolve(s.Path, data)
	if err != nil {
		return nil, err
	}

	switch f {
	case format.JSON:
		return DecodeJSON(bytes.NewReader(data))
	case format.YAML:
		return DecodeYAML(bytes.NewReader(data))
	case format.HTML:
		opts := s.HTML
		if opts.BaseDir == "" {
			opts.BaseDir = filepath.Dir(s.Path)
		}
		return ParseHTML(ctx, bytes.NewReader(data), opts)
	}
	return nil, fmt.Errorf("%w: %s is not a snapshot format", format.ErrUnknownFormat, f)
}

// ReaderSource decodes a snapshot of a known format from a reader.
type ReaderSource struct {
	Reader io.Reader
	Format format.Format
	HTML   HTMLOptions
}

// Snapshot implements Source.
func (s ReaderSource) Snapshot(ctx context.Context) (*Document, error) {
	switch s.Format {
	case format.JSON:
		return DecodeJSON(s.Reader)
	case format.YAML:
		return DecodeYAML(s.Reader)
	case format.HTML:
		return ParseHTML(ctx, s.Reader, s.HTML)
	}
	return nil, fmt.Errorf("%w: %s", format.ErrUnknownFormat, s.Format)
}
