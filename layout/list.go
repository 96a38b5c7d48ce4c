package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// ListExtractor builds ListInfo records for ul and ol elements.
type ListExtractor struct {
	config   Config
	filter   *RelevanceFilter
	styles   *StyleResolver
	geometry *GeometryResolver
	grouper  *InlineGrouper
}

// NewListExtractor creates a list extractor with default configuration
func NewListExtractor() *ListExtractor {
	return NewListExtractorWithConfig(DefaultConfig())
}

// NewListExtractorWithConfig creates a list extractor with custom configuration
func NewListExtractorWithConfig(config Config) *ListExtractor {
	return &ListExtractor{
		config:   config,
		filter:   NewRelevanceFilterWithConfig(config),
		styles:   NewStyleResolver(),
		geometry: NewGeometryResolverWithConfig(config),
		grouper:  NewInlineGrouperWithConfig(config),
	}
}

// Extract returns the list record of n. The returned warnings report
// nesting that was cut at MaxListDepth.
func (e *ListExtractor) Extract(n, root *snapshot.Node) (*model.ListInfo, []string, error) {
	if n.Tag != "ul" && n.Tag != "ol" {
		return nil, nil, fmt.Errorf("not a list element: %s", n.Tag)
	}
	var warnings []string
	info := e.extract(n, root, 1, &warnings)
	return info, warnings, nil
}

func (e *ListExtractor) extract(n, root *snapshot.Node, depth int, warnings *[]string) *model.ListInfo {
	info := &model.ListInfo{
		Kind:        model.ListUnordered,
		BoundingBox: e.geometry.Relative(n, root),
		ListStyle:   e.styles.ListStyle(n),
		Items:       []model.ListItem{},
	}
	if n.Tag == "ol" {
		info.Kind = model.ListOrdered
		start := orderedStart(n)
		_, reversed := n.Attr("reversed")
		info.Start = &start
		info.Reversed = &reversed
	}

	for _, li := range n.ChildrenByTag("li") {
		if e.filter.IsHidden(li) {
			continue
		}
		item := model.ListItem{
			Index:       len(info.Items),
			Text:        listItemText(li),
			Style:       e.styles.Resolve(li),
			BoundingBox: e.geometry.Relative(li, root),
			InlineGroup: e.grouper.Group(li, root),
		}
		if nested := firstNestedList(li); nested != nil {
			if depth < e.config.MaxListDepth {
				item.NestedList = e.extract(nested, root, depth+1, warnings)
			} else {
				info.Truncated = true
				*warnings = append(*warnings,
					fmt.Sprintf("list nesting deeper than %d levels truncated", e.config.MaxListDepth))
			}
		}
		info.Items = append(info.Items, item)
	}
	info.ItemCount = len(info.Items)
	return info
}

// orderedStart returns the start attribute of an ol, defaulting to 1.
func orderedStart(n *snapshot.Node) int {
	v, ok := n.Attr("start")
	if !ok {
		return 1
	}
	start, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 1
	}
	return start
}

func firstNestedList(li *snapshot.Node) *snapshot.Node {
	for _, c := range li.ElementChildren() {
		if c.Tag == "ul" || c.Tag == "ol" {
			return c
		}
	}
	return nil
}
