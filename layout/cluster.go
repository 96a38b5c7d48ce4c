package layout

import (
	"github.com/tsawler/slidelayout/snapshot"
)

// ClusterExtractor splits logo and footer containers into their image and
// label members, which are emitted as independent sibling elements.
type ClusterExtractor struct {
	config Config
	filter *RelevanceFilter
}

// NewClusterExtractor creates a cluster extractor with default configuration
func NewClusterExtractor() *ClusterExtractor {
	return NewClusterExtractorWithConfig(DefaultConfig())
}

// NewClusterExtractorWithConfig creates a cluster extractor with custom configuration
func NewClusterExtractorWithConfig(config Config) *ClusterExtractor {
	return &ClusterExtractor{config: config, filter: NewRelevanceFilterWithConfig(config)}
}

// Rule returns the cluster rule of n, or nil if n is not a cluster.
func (e *ClusterExtractor) Rule(n *snapshot.Node) *ClusterRule {
	return e.config.clusterRule(n.ClassList())
}

// Members returns the nodes to emit for a cluster container, in document
// order. A container lacking an image or a label yields a partial result.
func (e *ClusterExtractor) Members(n *snapshot.Node, rule *ClusterRule) []*snapshot.Node {
	if rule == nil {
		return nil
	}
	if rule.Mode == ClusterAll {
		var out []*snapshot.Node
		for _, c := range n.ChildrenByTag("img", "span", "label") {
			if !e.filter.IsHidden(c) {
				out = append(out, c)
			}
		}
		return out
	}

	var out []*snapshot.Node
	if img := e.first(n, "img"); img != nil {
		out = append(out, img)
	}
	if label := e.first(n, "span", "label"); label != nil {
		out = append(out, label)
	}
	if len(out) == 2 && !precedes(out[0], out[1]) {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

// first returns the first visible direct child with one of the tags, or
// failing that the first visible descendant.
func (e *ClusterExtractor) first(n *snapshot.Node, tags ...string) *snapshot.Node {
	for _, c := range n.ChildrenByTag(tags...) {
		if !e.filter.IsHidden(c) {
			return c
		}
	}
	for _, d := range n.Descendants() {
		if hasTag(d, tags) && !e.filter.IsHidden(d) {
			return d
		}
	}
	return nil
}

func hasTag(n *snapshot.Node, tags []string) bool {
	for _, t := range tags {
		if n.Tag == t {
			return true
		}
	}
	return false
}

// precedes reports whether a comes before b in document order.
func precedes(a, b *snapshot.Node) bool {
	root := a
	for root.Parent != nil {
		root = root.Parent
	}
	found := false
	result := false
	root.Walk(func(n *snapshot.Node) bool {
		if found {
			return false
		}
		switch n {
		case a:
			found, result = true, true
		case b:
			found, result = true, false
		}
		return !found
	})
	return result
}
