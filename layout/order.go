package layout

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// RowBandLess orders two boxes in reading order: boxes whose top edges are
// closer than tolerance share a row and are ordered left to right,
// otherwise the higher box comes first.
func RowBandLess(a, b model.BBox, tolerance float64) bool {
	if math.Abs(a.Y-b.Y) < tolerance {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// SortRowBanded stable-sorts boxed items in row-banded reading order.
func SortRowBanded[T any](items []T, box func(T) model.BBox, tolerance float64) {
	sort.SliceStable(items, func(i, j int) bool {
		return RowBandLess(box(items[i]), box(items[j]), tolerance)
	})
}

// SortByZIndex stable-sorts elements by ascending z-index; elements with
// equal z-index keep their relative order.
func SortByZIndex(elements []model.Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].ZIndex < elements[j].ZIndex
	})
}

// IdentityKey returns the deduplication key of a node: tag, id, class,
// document box, a prefix of its text and its media source.
func IdentityKey(n *snapshot.Node, prefixLength int) string {
	src, _ := n.Attr("src")
	r := n.Rect
	parts := []string{
		n.Tag,
		n.ID(),
		strings.Join(n.ClassList(), " "),
		formatKeyFloat(r.Left),
		formatKeyFloat(r.Top),
		formatKeyFloat(r.Width),
		formatKeyFloat(r.Height),
		textPrefix(n.TextContent(), prefixLength),
		src,
	}
	return strings.Join(parts, "|")
}

func formatKeyFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
