package snapshot

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/tsawler/slidelayout/css"
)

// Geometry annotation attributes read from HTML fixtures.
const (
	AttrRect        = "data-rect"
	AttrRangeRect   = "data-range-rect"
	AttrSettledRect = "data-settled-rect"
	AttrNaturalSize = "data-natural-size"
)

// DefaultViewport is used when neither the options nor the body carry a size.
var DefaultViewport = Viewport{Width: 1280, Height: 720}

// ImageProber reports the intrinsic size of an image resource.
type ImageProber interface {
	ProbeSize(ctx context.Context, src string) (width, height int, err error)
}

// AltTexter produces alternative text for an image resource.
type AltTexter interface {
	AltText(ctx context.Context, src string) (string, error)
}

// HTMLOptions configures fixture parsing.
type HTMLOptions struct {
	Viewport Viewport
	URL      string

	// BaseDir is the directory relative image sources resolve against. It is
	// informational for the prober; ParseHTML does not read files itself.
	BaseDir string

	// Prober fills natural sizes of images lacking data-natural-size.
	Prober ImageProber

	// AltText fills empty alt attributes.
	AltText AltTexter
}

// skipTags are never copied into the snapshot.
var skipTags = map[string]bool{
	"head": true, "script": true, "style": true, "template": true,
	"noscript": true, "meta": true, "link": true, "title": true,
}

type naturalSize struct {
	w, h float64
}

// htmlBuilder converts a parsed HTML tree into snapshot nodes.
type htmlBuilder struct {
	natural  map[*html.Node]naturalSize
	alt      map[*html.Node]string
	warnings []string
}

// ParseHTML reads an annotated HTML fixture. Every element's box comes
// from its data-rect attribute ("left top width height" in document
// coordinates); elements without one have an empty box. Computed style is
// approximated from tag defaults, inheritance and the inline style
// attribute.
func ParseHTML(ctx context.Context, r io.Reader, opts HTMLOptions) (*Document, error) {
	top, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	b := &htmlBuilder{
		natural: make(map[*html.Node]naturalSize),
		alt:     make(map[*html.Node]string),
	}
	if err := b.probeImages(ctx, top, opts); err != nil {
		return nil, err
	}

	body := htmlquery.FindOne(top, "//body")
	if body == nil {
		return nil, ErrNoRoot
	}

	viewport := opts.Viewport
	root := b.element(body, nil)
	if _, ok := attr(body, AttrRect); !ok {
		if viewport.Width <= 0 || viewport.Height <= 0 {
			viewport = DefaultViewport
		}
		root.Rect = Rect{Width: viewport.Width, Height: viewport.Height}
		root.Style["width"] = css.FormatPx(viewport.Width)
		root.Style["height"] = css.FormatPx(viewport.Height)
	} else if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = Viewport{Width: root.Rect.Width, Height: root.Rect.Height}
	}

	return &Document{
		Root:     root,
		Viewport: viewport,
		URL:      opts.URL,
		Warnings: b.warnings,
	}, nil
}

// probeImages resolves natural sizes and alt text before conversion so the
// tree walk itself stays free of I/O.
func (b *htmlBuilder) probeImages(ctx context.Context, top *html.Node, opts HTMLOptions) error {
	if opts.Prober == nil && opts.AltText == nil {
		return nil
	}
	for _, img := range htmlquery.Find(top, "//img[@src]") {
		if err := ctx.Err(); err != nil {
			return err
		}
		src := htmlquery.SelectAttr(img, "src")

		if _, ok := attr(img, AttrNaturalSize); !ok && opts.Prober != nil {
			w, h, err := opts.Prober.ProbeSize(ctx, src)
			if err != nil {
				b.warnings = append(b.warnings, fmt.Sprintf("probing %s: %v", shortSrc(src), err))
			} else {
				b.natural[img] = naturalSize{float64(w), float64(h)}
			}
		}

		if alt, _ := attr(img, "alt"); strings.TrimSpace(alt) == "" && opts.AltText != nil {
			text, err := opts.AltText.AltText(ctx, src)
			if err != nil {
				b.warnings = append(b.warnings, fmt.Sprintf("describing %s: %v", shortSrc(src), err))
			} else if text != "" {
				b.alt[img] = text
			}
		}
	}
	return nil
}

func (b *htmlBuilder) element(h *html.Node, parent *Node) *Node {
	n := NewElement(h.Data)
	for _, a := range h.Attr {
		switch a.Key {
		case AttrRect, AttrRangeRect, AttrSettledRect, AttrNaturalSize:
			continue
		}
		n.Attrs[a.Key] = a.Val
	}
	if alt, ok := b.alt[h]; ok {
		n.Attrs["alt"] = alt
	}

	if v, ok := attr(h, AttrRect); ok {
		if r, ok := parseRect(v); ok {
			n.Rect = r
		} else {
			b.warnings = append(b.warnings, fmt.Sprintf("<%s>: malformed %s %q", h.Data, AttrRect, v))
		}
	}
	if v, ok := attr(h, AttrRangeRect); ok {
		if r, ok := parseRect(v); ok {
			n.RangeRect = &r
		}
	}
	if v, ok := attr(h, AttrSettledRect); ok {
		if r, ok := parseRect(v); ok {
			n.SettledRect = &r
		}
	}
	if v, ok := attr(h, AttrNaturalSize); ok {
		if f := parseFloats(v); len(f) == 2 {
			n.NaturalWidth, n.NaturalHeight = f[0], f[1]
		}
	} else if size, ok := b.natural[h]; ok {
		n.NaturalWidth, n.NaturalHeight = size.w, size.h
	}

	var parentStyle map[string]string
	if parent != nil {
		parentStyle = parent.Style
	}
	n.Style = computeStyle(n, parentStyle)

	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			n.AppendChild(NewText(c.Data))
		case html.ElementNode:
			if skipTags[c.Data] {
				continue
			}
			n.AppendChild(b.element(c, n))
		}
	}
	return n
}

// computeStyle approximates getComputedStyle for a fixture element.
func computeStyle(n *Node, parent map[string]string) map[string]string {
	style := make(map[string]string, len(initialStyle)+16)
	for k, v := range initialStyle {
		style[k] = v
	}
	for k, v := range parent {
		if inherited[k] || strings.HasPrefix(k, "--") {
			style[k] = v
		}
	}
	for k, v := range tagDefaults[n.Tag] {
		style[k] = v
	}
	if _, hidden := n.Attrs["hidden"]; hidden {
		style["display"] = "none"
	}

	inline, _ := n.Attr("style")
	for k, v := range css.Expand(css.ParseDeclarations(inline)) {
		switch strings.ToLower(v) {
		case "inherit":
			v = parent[k]
		case "initial":
			v = initialStyle[k]
		}
		style[k] = v
	}

	finishStyle(style, n)
	return style
}

// finishStyle derives computed values: normalised colours and weights,
// border widths zeroed for unstyled sides, shorthand summaries and used
// sizes.
func finishStyle(style map[string]string, n *Node) {
	style["color"] = css.NormalizeColor(style["color"])
	style["background-color"] = css.NormalizeColor(style["background-color"])

	switch style["font-weight"] {
	case "normal":
		style["font-weight"] = "400"
	case "bold", "bolder":
		style["font-weight"] = "700"
	case "lighter":
		style["font-weight"] = "300"
	}

	var widths, styles, colors [4]string
	for i, side := range css.Sides {
		prefix := "border-" + side + "-"
		if c := style[prefix+"color"]; c == "" || strings.EqualFold(c, "currentcolor") {
			style[prefix+"color"] = style["color"]
		}
		if s := style[prefix+"style"]; s == "none" || s == "hidden" {
			style[prefix+"width"] = "0px"
		}
		widths[i] = style[prefix+"width"]
		styles[i] = style[prefix+"style"]
		colors[i] = style[prefix+"color"]
	}
	style["border-width"] = css.JoinBox(widths[0], widths[1], widths[2], widths[3])
	style["border-style"] = css.JoinBox(styles[0], styles[1], styles[2], styles[3])
	style["border-color"] = css.JoinBox(colors[0], colors[1], colors[2], colors[3])
	if widths[0] == widths[1] && widths[0] == widths[2] && widths[0] == widths[3] &&
		styles[0] == styles[1] && styles[0] == styles[2] && styles[0] == styles[3] &&
		colors[0] == colors[1] && colors[0] == colors[2] && colors[0] == colors[3] {
		style["border"] = widths[0] + " " + styles[0] + " " + colors[0]
	} else {
		style["border"] = ""
	}

	style["padding"] = css.JoinBox(style["padding-top"], style["padding-right"], style["padding-bottom"], style["padding-left"])
	style["margin"] = css.JoinBox(style["margin-top"], style["margin-right"], style["margin-bottom"], style["margin-left"])

	if style["display"] == "inline" {
		style["width"], style["height"] = "auto", "auto"
	} else if !n.Rect.IsEmpty() {
		style["width"] = css.FormatPx(n.Rect.Width)
		style["height"] = css.FormatPx(n.Rect.Height)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// parseRect parses "left top width height".
func parseRect(s string) (Rect, bool) {
	f := parseFloats(s)
	if len(f) != 4 {
		return Rect{}, false
	}
	return Rect{Left: f[0], Top: f[1], Width: f[2], Height: f[3]}, true
}

func parseFloats(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

func shortSrc(src string) string {
	if strings.HasPrefix(src, "data:") && len(src) > 32 {
		return src[:32] + "..."
	}
	return src
}
