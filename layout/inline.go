package layout

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// InlineGrouper turns block containers that mix text with inline
// formatting into an ordered list of runs.
type InlineGrouper struct {
	config   Config
	filter   *RelevanceFilter
	styles   *StyleResolver
	geometry *GeometryResolver
}

// NewInlineGrouper creates a grouper with default configuration
func NewInlineGrouper() *InlineGrouper {
	return NewInlineGrouperWithConfig(DefaultConfig())
}

// NewInlineGrouperWithConfig creates a grouper with custom configuration
func NewInlineGrouperWithConfig(config Config) *InlineGrouper {
	return &InlineGrouper{
		config:   config,
		filter:   NewRelevanceFilterWithConfig(config),
		styles:   NewStyleResolver(),
		geometry: NewGeometryResolverWithConfig(config),
	}
}

// Group returns the inline group of container, or nil when the container
// is not a group tag, has no inline formatting descendant, or produces no
// runs.
func (g *InlineGrouper) Group(container, root *snapshot.Node) *model.InlineGroup {
	if container == nil || !g.config.isGroupTag(container.Tag) {
		return nil
	}
	if !g.hasFormatting(container, container) {
		return nil
	}

	containerStyle := g.styles.Resolve(container)
	var runs []model.Run
	g.walk(container, container, containerStyle, &runs)
	runs = finishRuns(runs)
	if len(runs) == 0 {
		return nil
	}

	return &model.InlineGroup{
		Text:        model.JoinRuns(runs),
		Runs:        runs,
		BoundingBox: g.geometry.Relative(container, root),
		Style:       containerStyle,
	}
}

// hasFormatting reports whether n has a formatting child directly or
// through inline wrappers such as links.
func (g *InlineGrouper) hasFormatting(n, container *snapshot.Node) bool {
	for _, c := range n.ElementChildren() {
		if g.skipChild(c, container) {
			continue
		}
		if isFormattingTag(c.Tag) {
			return true
		}
		if isInlineDisplay(c.Display()) && g.hasFormatting(c, container) {
			return true
		}
	}
	return false
}

func (g *InlineGrouper) skipChild(c, container *snapshot.Node) bool {
	if c.Display() == "none" {
		return true
	}
	return container.Tag == "li" && (c.Tag == "ul" || c.Tag == "ol")
}

func (g *InlineGrouper) walk(n, container *snapshot.Node, containerStyle model.StyleRecord, runs *[]model.Run) {
	for _, c := range n.Children {
		if c.IsText() {
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			*runs = append(*runs, model.Run{
				Kind:  model.RunText,
				Text:  collapseWhitespace(c.Data),
				Style: containerStyle.Clone(),
			})
			continue
		}
		if g.skipChild(c, container) {
			continue
		}

		kind, ok := model.RunKindForTag(c.Tag)
		switch {
		case ok && kind == model.RunLineBreak:
			*runs = append(*runs, model.Run{
				Kind:  model.RunLineBreak,
				Tag:   c.Tag,
				Text:  "\n",
				Style: containerStyle.Clone(),
			})
		case ok:
			*runs = append(*runs, model.Run{
				Kind:  kind,
				Tag:   c.Tag,
				Text:  normalizeLines(c.TextContent()),
				Style: g.styles.Resolve(c),
			})
		default:
			g.walk(c, container, containerStyle, runs)
		}
	}
}

// finishRuns drops blank runs other than line breaks, trims the outer text
// runs and normalises run text.
func finishRuns(runs []model.Run) []model.Run {
	out := runs[:0]
	for _, r := range runs {
		if r.Kind != model.RunLineBreak && strings.TrimSpace(r.Text) == "" {
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}

	if first := &out[0]; first.Kind == model.RunText {
		first.Text = strings.TrimLeft(first.Text, " \t\r\n")
	}
	if last := &out[len(out)-1]; last.Kind == model.RunText {
		last.Text = strings.TrimRight(last.Text, " \t\r\n")
	}

	final := out[:0]
	for _, r := range out {
		if r.Kind != model.RunLineBreak && r.Text == "" {
			continue
		}
		r.Text = norm.NFC.String(r.Text)
		final = append(final, r)
	}
	if len(final) == 0 {
		return nil
	}
	return final
}
