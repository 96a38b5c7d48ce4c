package layout

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tsawler/slidelayout/css"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// SlideAssembler produces the ordered, deduplicated element list of one
// slide. It holds no state between calls.
type SlideAssembler struct {
	config   Config
	logger   zerolog.Logger
	filter   *RelevanceFilter
	styles   *StyleResolver
	geometry *GeometryResolver
	grouper  *InlineGrouper
	lists    *ListExtractor
	tables   *TableExtractor
	clusters *ClusterExtractor
}

// NewSlideAssembler creates an assembler with default configuration
func NewSlideAssembler() *SlideAssembler {
	return NewSlideAssemblerWithConfig(DefaultConfig(), zerolog.Nop())
}

// NewSlideAssemblerWithConfig creates an assembler with custom configuration
func NewSlideAssemblerWithConfig(config Config, logger zerolog.Logger) *SlideAssembler {
	return &SlideAssembler{
		config:   config,
		logger:   logger,
		filter:   NewRelevanceFilterWithConfig(config),
		styles:   NewStyleResolver(),
		geometry: NewGeometryResolverWithConfig(config),
		grouper:  NewInlineGrouperWithConfig(config),
		lists:    NewListExtractorWithConfig(config),
		tables:   NewTableExtractorWithConfig(config),
		clusters: NewClusterExtractorWithConfig(config),
	}
}

// entry is a node scheduled for emission with its resolved box
type entry struct {
	node *snapshot.Node
	box  model.BBox
}

// Assemble builds the slide rooted at root. Warnings describe elements
// that fell back to a minimal record and truncated lists.
func (a *SlideAssembler) Assemble(root *snapshot.Node, id int) (model.Slide, []Warning) {
	width, height := a.geometry.SlideSize(root)
	slide := model.Slide{
		SlideID:  id,
		Width:    width,
		Height:   height,
		Position: model.Position{X: root.Rect.Left, Y: root.Rect.Top},
		Style:    a.styles.Resolve(root),
		Elements: []model.Element{},
	}

	var candidates []*snapshot.Node
	for _, d := range root.Descendants() {
		if a.filter.IsRelevant(d, root) && !a.filter.IsRedundantInline(d) {
			candidates = append(candidates, d)
		}
	}

	absorbed, members := a.absorb(candidates)

	entries := make([]entry, 0, len(candidates)+len(members))
	for _, n := range candidates {
		if !absorbed[n] {
			entries = append(entries, entry{node: n, box: a.geometry.Resolve(n, root)})
		}
	}
	for _, n := range members {
		entries = append(entries, entry{node: n, box: a.geometry.Resolve(n, root)})
	}
	SortRowBanded(entries, func(e entry) model.BBox { return e.box }, a.config.RowTolerance)

	var warnings []Warning
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		key := IdentityKey(e.node, a.config.TextPrefixLength)
		if seen[key] {
			continue
		}
		seen[key] = true

		el, notes, err := a.element(e.node, e.box, root)
		for _, msg := range notes {
			warnings = append(warnings, Warning{SlideID: id, Message: msg})
		}
		if err != nil {
			a.logger.Warn().Err(err).Int("slide", id).Str("tag", e.node.Tag).
				Msg("structured extraction failed, using minimal element")
			warnings = append(warnings, Warning{
				SlideID: id,
				Message: fmt.Sprintf("%s element: %v", e.node.Tag, err),
			})
			el = a.minimalElement(e.node, e.box)
		}
		slide.Elements = append(slide.Elements, el)
	}

	SortByZIndex(slide.Elements)

	a.logger.Debug().
		Int("slide", id).
		Int("candidates", len(candidates)).
		Int("absorbed", len(absorbed)).
		Int("elements", len(slide.Elements)).
		Msg("slide assembled")

	return slide, warnings
}

// absorb computes the nodes the main pass must not emit. Every cluster
// container is absorbed with its subtree and its members are returned for
// emission; the descendants of every remaining list and table are absorbed
// because their extractor already captured them.
func (a *SlideAssembler) absorb(candidates []*snapshot.Node) (map[*snapshot.Node]bool, []*snapshot.Node) {
	absorbed := make(map[*snapshot.Node]bool)
	var members []*snapshot.Node

	for _, n := range candidates {
		if absorbed[n] {
			continue
		}
		rule := a.clusters.Rule(n)
		if rule == nil {
			continue
		}
		members = append(members, a.clusters.Members(n, rule)...)
		n.Walk(func(d *snapshot.Node) bool {
			if d.IsElement() {
				absorbed[d] = true
			}
			return true
		})
	}

	for _, n := range candidates {
		if absorbed[n] {
			continue
		}
		if model.KindOf(n.Tag).IsComposite() {
			for _, d := range n.Descendants() {
				absorbed[d] = true
			}
		}
	}
	return absorbed, members
}

// element builds the element record of n in its content mode.
func (a *SlideAssembler) element(n *snapshot.Node, box model.BBox, root *snapshot.Node) (model.Element, []string, error) {
	el := a.minimalElement(n, box)
	el.Text = nil

	switch el.Kind {
	case model.KindList:
		info, notes, err := a.lists.Extract(n, root)
		if err != nil {
			return el, nil, err
		}
		el.ListInfo = info
		return el, notes, nil

	case model.KindTable:
		info, err := a.tables.Extract(n, root)
		if err != nil {
			return el, nil, err
		}
		el.TableInfo = info
		return el, nil, nil

	case model.KindImage, model.KindMedia:
		el.MediaInfo = mediaInfo(n, box, a.config.Precision)
		return el, nil, nil
	}

	if group := a.grouper.Group(n, root); group != nil {
		el.InlineGroup = group
		return el, nil, nil
	}
	el.Text = a.filter.plainText(n, el.Kind)
	return el, nil, nil
}

// minimalElement returns the generic record of n: geometry, style and
// identity plus its collapsed text.
func (a *SlideAssembler) minimalElement(n *snapshot.Node, box model.BBox) model.Element {
	classes := n.ClassList()
	if classes == nil {
		classes = []string{}
	}
	el := model.Element{
		Type:       n.Tag,
		Kind:       model.KindOf(n.Tag),
		Style:      a.styles.Resolve(n),
		ClassNames: classes,
		DomID:      n.ID(),
		ZIndex:     css.ParseZIndex(n.StyleValue("z-index")),
	}
	el.SetBoundingBox(box)
	if text := cleanText(n.TextContent()); text != "" {
		el.Text = &text
	}
	return el
}

// mediaInfo returns the media reference of an image or embedded media
// element.
func mediaInfo(n *snapshot.Node, box model.BBox, precision int) *model.MediaInfo {
	src, _ := n.Attr("src")
	if src == "" && n.Tag == "object" {
		src, _ = n.Attr("data")
	}
	if src == "" {
		for _, s := range n.ChildrenByTag("source") {
			if v, ok := s.Attr("src"); ok && v != "" {
				src = v
				break
			}
		}
	}
	alt, _ := n.Attr("alt")
	info := &model.MediaInfo{
		Src:           src,
		Alt:           alt,
		NaturalWidth:  n.NaturalWidth,
		NaturalHeight: n.NaturalHeight,
	}
	info.Scaling = info.ComputeScaling(box, precision)
	return info
}
