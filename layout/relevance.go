package layout

import (
	"strings"

	"github.com/tsawler/slidelayout/css"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// RelevanceFilter decides which nodes of a slide become elements.
type RelevanceFilter struct {
	config Config
}

// NewRelevanceFilter creates a filter with default configuration
func NewRelevanceFilter() *RelevanceFilter {
	return NewRelevanceFilterWithConfig(DefaultConfig())
}

// NewRelevanceFilterWithConfig creates a filter with custom configuration
func NewRelevanceFilterWithConfig(config Config) *RelevanceFilter {
	return &RelevanceFilter{config: config}
}

// IsRelevant reports whether n should be emitted (or redirected to a
// cluster extractor) for the slide rooted at root.
func (f *RelevanceFilter) IsRelevant(n, root *snapshot.Node) bool {
	if n == nil || n == root || !n.IsElement() || !root.Contains(n) {
		return false
	}

	kind, ok := model.LookupKind(n.Tag)
	if !ok || kind == model.KindLineBreak {
		return false
	}

	if f.IsHidden(n) {
		return false
	}

	if f.isForceRelevant(n, root) {
		return true
	}

	if kind.IsMedia() || kind == model.KindRule {
		return true
	}

	if strings.TrimSpace(n.TextContent()) == "" && n.Rect.Area() == 0 {
		return false
	}
	return true
}

// IsHidden reports whether the node is not painted: display none on the
// node or an ancestor, visibility hidden, or zero opacity.
func (f *RelevanceFilter) IsHidden(n *snapshot.Node) bool {
	switch n.StyleValue("visibility") {
	case "hidden", "collapse":
		return true
	}
	if css.ParseOpacity(n.StyleValue("opacity")) <= 0 {
		return true
	}
	for p := n; p != nil; p = p.Parent {
		if p.IsElement() && p.Display() == "none" {
			return true
		}
	}
	return false
}

// IsRedundantInline reports whether n is an inline formatting tag whose
// text is captured by its parent text container instead.
func (f *RelevanceFilter) IsRedundantInline(n *snapshot.Node) bool {
	if !isFormattingTag(n.Tag) || n.Parent == nil {
		return false
	}
	switch n.Parent.Tag {
	case "div", "p", "h1", "h2", "h3", "h4", "h5", "h6":
	default:
		return false
	}
	return f.config.clusterRule(n.Parent.ClassList()) == nil
}

func (f *RelevanceFilter) isForceRelevant(n, root *snapshot.Node) bool {
	if HasVisualBox(n) {
		return true
	}

	switch n.Tag {
	case "img", "span", "strong", "b", "em", "i", "u", "mark", "li", "td", "th":
		return true
	}

	classes := n.ClassList()
	if f.config.clusterRule(classes) != nil || f.config.hasFlexGroupClass(classes) {
		return true
	}
	if f.insideFooter(n, root) {
		return true
	}

	if f.config.KeepEmptyFlexItems {
		if isFlex(n.Display()) || (n.Parent != nil && isFlex(n.Parent.Display())) {
			return true
		}
	}
	return false
}

// insideFooter reports whether n or an ancestor below root is a footer.
func (f *RelevanceFilter) insideFooter(n, root *snapshot.Node) bool {
	if f.config.FooterClass == "" {
		return false
	}
	for p := n; p != nil && p != root; p = p.Parent {
		if p.HasClass(f.config.FooterClass) {
			return true
		}
	}
	return false
}

// HasVisualBox reports whether the node paints something of its own: a
// border, a non-transparent background or a box shadow.
func HasVisualBox(n *snapshot.Node) bool {
	for _, side := range css.Sides {
		if w, ok := css.ParseBorderWidth(n.StyleValue("border-" + side + "-width")); ok && w > 0 {
			return true
		}
	}
	if !css.IsTransparent(n.StyleValue("background-color")) {
		return true
	}
	shadow := strings.TrimSpace(n.StyleValue("box-shadow"))
	return shadow != "" && shadow != "none"
}

func isFlex(display string) bool {
	return display == "flex" || display == "inline-flex"
}

func isInlineDisplay(display string) bool {
	return display == "inline" || display == "inline-block"
}

// isFormattingTag reports whether the tag produces its own inline run.
func isFormattingTag(tag string) bool {
	switch tag {
	case "span", "strong", "b", "em", "i", "u", "mark":
		return true
	}
	return false
}
