package layout

import (
	"math"

	"github.com/tsawler/slidelayout/css"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// GeometryResolver computes slide-relative element boxes.
type GeometryResolver struct {
	config Config
}

// NewGeometryResolver creates a resolver with default configuration
func NewGeometryResolver() *GeometryResolver {
	return NewGeometryResolverWithConfig(DefaultConfig())
}

// NewGeometryResolverWithConfig creates a resolver with custom configuration
func NewGeometryResolverWithConfig(config Config) *GeometryResolver {
	return &GeometryResolver{config: config}
}

// Resolve returns the box of n relative to the slide root.
//
// Inline content with a positive range area starts from its text-range
// box. Flex containers, flex items, flex groups and footer descendants are
// then re-read from their settled box, or the element box when none was
// captured, overriding the range box. A parsable transform scales the size
// and shifts the origin. The result is rounded, clamped to non-negative
// coordinates with at least MinExtent of width and height, and clipped to
// the slide when ClipToSlide is set.
func (g *GeometryResolver) Resolve(n, root *snapshot.Node) model.BBox {
	rect := g.sourceRect(n, root)
	box := g.relative(rect, root)

	if m, ok := css.ParseTransform(n.StyleValue("transform")); ok && !m.IsIdentity() {
		box.Width *= math.Abs(m.ScaleX())
		box.Height *= math.Abs(m.ScaleY())
		tx, ty := m.Translation()
		box.X += tx
		box.Y += ty
	}

	box = box.Round(g.config.Precision)
	box = g.clamp(box)
	if g.config.ClipToSlide {
		box = g.clip(box, root)
	}
	return box.Round(g.config.Precision)
}

// Relative returns the plain slide-relative box of a nested node such as a
// list item, table cell or inline group. No refinement is applied.
func (g *GeometryResolver) Relative(n, root *snapshot.Node) model.BBox {
	return g.relative(n.Rect, root).Round(g.config.Precision)
}

// SlideSize returns the rounded width and height of the slide root.
func (g *GeometryResolver) SlideSize(root *snapshot.Node) (float64, float64) {
	return model.RoundTo(root.Rect.Width, g.config.Precision),
		model.RoundTo(root.Rect.Height, g.config.Precision)
}

func (g *GeometryResolver) sourceRect(n, root *snapshot.Node) snapshot.Rect {
	rect := n.Rect
	if isInlineDisplay(n.Display()) && n.RangeRect != nil && n.RangeRect.Area() > 0 {
		rect = *n.RangeRect
	}
	if g.wantsSettled(n, root) {
		rect = n.Rect
		if n.SettledRect != nil {
			rect = *n.SettledRect
		}
	}
	return rect
}

func (g *GeometryResolver) wantsSettled(n, root *snapshot.Node) bool {
	if isFlex(n.Display()) || (n.Parent != nil && isFlex(n.Parent.Display())) {
		return true
	}
	if g.config.hasFlexGroupClass(n.ClassList()) {
		return true
	}
	if g.config.FooterClass == "" {
		return false
	}
	for p := n; p != nil && p != root; p = p.Parent {
		if p.HasClass(g.config.FooterClass) {
			return true
		}
	}
	return false
}

func (g *GeometryResolver) relative(r snapshot.Rect, root *snapshot.Node) model.BBox {
	return model.NewBBox(r.Left-root.Rect.Left, r.Top-root.Rect.Top, r.Width, r.Height)
}

func (g *GeometryResolver) clamp(b model.BBox) model.BBox {
	b.X = math.Max(b.X, 0)
	b.Y = math.Max(b.Y, 0)
	b.Width = math.Max(b.Width, g.config.MinExtent)
	b.Height = math.Max(b.Height, g.config.MinExtent)
	return b
}

// clip keeps the box inside the slide while preserving the minimum extent.
func (g *GeometryResolver) clip(b model.BBox, root *snapshot.Node) model.BBox {
	w, h := g.SlideSize(root)
	if w < g.config.MinExtent || h < g.config.MinExtent {
		return b
	}
	b.X = math.Min(b.X, w-g.config.MinExtent)
	b.Y = math.Min(b.Y, h-g.config.MinExtent)
	b.Width = math.Max(math.Min(b.Width, w-b.X), g.config.MinExtent)
	b.Height = math.Max(math.Min(b.Height, h-b.Y), g.config.MinExtent)
	return b
}
