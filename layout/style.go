package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/slidelayout/css"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// StyleResolver builds StyleRecord snapshots from resolved node styles.
type StyleResolver struct{}

// NewStyleResolver creates a style resolver
func NewStyleResolver() *StyleResolver {
	return &StyleResolver{}
}

// Resolve returns a fresh StyleRecord for n. The background colour is the
// first non-transparent background found walking from n up to the document
// root.
func (r *StyleResolver) Resolve(n *snapshot.Node) model.StyleRecord {
	s := n.StyleValue
	rec := model.StyleRecord{
		Version: model.StyleVersion,

		FontSize:       s("font-size"),
		FontFamily:     s("font-family"),
		FontWeight:     s("font-weight"),
		FontStyle:      s("font-style"),
		LineHeight:     s("line-height"),
		LetterSpacing:  s("letter-spacing"),
		TextAlign:      s("text-align"),
		TextDecoration: s("text-decoration"),
		WhiteSpace:     s("white-space"),
		WordWrap:       firstNonEmpty(s("word-wrap"), s("overflow-wrap")),
		TextOverflow:   s("text-overflow"),
		Color:          s("color"),

		BackgroundColor: r.ResolveBackground(n),

		Width:         s("width"),
		Height:        s("height"),
		Padding:       s("padding"),
		PaddingTop:    s("padding-top"),
		PaddingRight:  s("padding-right"),
		PaddingBottom: s("padding-bottom"),
		PaddingLeft:   s("padding-left"),
		Margin:        s("margin"),
		MarginTop:     s("margin-top"),
		MarginRight:   s("margin-right"),
		MarginBottom:  s("margin-bottom"),
		MarginLeft:    s("margin-left"),

		Border:            s("border"),
		BorderWidth:       s("border-width"),
		BorderStyle:       s("border-style"),
		BorderColor:       s("border-color"),
		BorderTopWidth:    s("border-top-width"),
		BorderTopStyle:    s("border-top-style"),
		BorderTopColor:    s("border-top-color"),
		BorderRightWidth:  s("border-right-width"),
		BorderRightStyle:  s("border-right-style"),
		BorderRightColor:  s("border-right-color"),
		BorderBottomWidth: s("border-bottom-width"),
		BorderBottomStyle: s("border-bottom-style"),
		BorderBottomColor: s("border-bottom-color"),
		BorderLeftWidth:   s("border-left-width"),
		BorderLeftStyle:   s("border-left-style"),
		BorderLeftColor:   s("border-left-color"),
		BorderRadius:      s("border-radius"),

		Position:   s("position"),
		Display:    s("display"),
		Visibility: s("visibility"),
		Opacity:    s("opacity"),
		ZIndex:     s("z-index"),
		BoxShadow:  s("box-shadow"),
		Transform:  s("transform"),
		Overflow:   s("overflow"),
		OverflowX:  s("overflow-x"),
		OverflowY:  s("overflow-y"),

		ListStyleType:     s("list-style-type"),
		ListStylePosition: s("list-style-position"),
		ListStyleImage:    s("list-style-image"),

		Flex:           s("flex"),
		FlexDirection:  s("flex-direction"),
		JustifyContent: s("justify-content"),
		AlignItems:     s("align-items"),
		Gap:            s("gap"),
	}
	rec.CustomProperties = customProperties(n)
	return rec
}

// ResolveBackground returns the colour visually behind n.
func (r *StyleResolver) ResolveBackground(n *snapshot.Node) string {
	own := n.StyleValue("background-color")
	for p := n; p != nil; p = p.Parent {
		if !p.IsElement() {
			continue
		}
		bg := p.StyleValue("background-color")
		if !css.IsTransparent(bg) {
			return bg
		}
	}
	if own == "" {
		return css.Transparent.String()
	}
	return own
}

// ListStyle returns the marker settings of a list element.
func (r *StyleResolver) ListStyle(n *snapshot.Node) model.ListStyle {
	return model.ListStyle{
		Type:         n.StyleValue("list-style-type"),
		Position:     n.StyleValue("list-style-position"),
		PaddingLeft:  n.StyleValue("padding-left"),
		MarginTop:    n.StyleValue("margin-top"),
		MarginBottom: n.StyleValue("margin-bottom"),
	}
}

func customProperties(n *snapshot.Node) map[string]string {
	var keys []string
	for k := range n.Style {
		if strings.HasPrefix(k, "--") {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	props := make(map[string]string, len(keys))
	for _, k := range keys {
		props[k] = n.Style[k]
	}
	return props
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
