package snapshot

import (
	"context"
	"errors"
)

var (
	// ErrNoRoot is returned when a snapshot has no root element.
	ErrNoRoot = errors.New("snapshot has no root element")

	// ErrUnsupportedVersion is returned for snapshot files written by an
	// unknown capture format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// Viewport is the size of the window the document was rendered in.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Document is a frozen rendered document.
type Document struct {
	Root     *Node
	Viewport Viewport
	URL      string

	// Warnings collects non-fatal problems met while building the snapshot,
	// such as images whose intrinsic size could not be probed.
	Warnings []string
}

// SlideRoots returns the elements carrying class in document order. When
// none exist it returns the whole-document root and fallback=true.
func (d *Document) SlideRoots(class string) (roots []*Node, fallback bool) {
	if d == nil || d.Root == nil {
		return nil, true
	}
	d.Root.Walk(func(n *Node) bool {
		if n.IsElement() && n.HasClass(class) {
			roots = append(roots, n)
		}
		return true
	})
	if len(roots) == 0 {
		return []*Node{d.Root}, true
	}
	return roots, false
}

// ElementCount returns the number of element nodes in the document.
func (d *Document) ElementCount() int {
	if d == nil || d.Root == nil {
		return 0
	}
	n := 0
	d.Root.Walk(func(node *Node) bool {
		if node.IsElement() {
			n++
		}
		return true
	})
	return n
}

// Source produces a snapshot. Implementations must return a document whose
// geometry and style are stable for the lifetime of the returned value.
type Source interface {
	Snapshot(ctx context.Context) (*Document, error)
}

// StaticSource serves an already-built document.
type StaticSource struct {
	Doc *Document
}

// Snapshot returns the wrapped document.
func (s StaticSource) Snapshot(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Doc == nil || s.Doc.Root == nil {
		return nil, ErrNoRoot
	}
	return s.Doc, nil
}
