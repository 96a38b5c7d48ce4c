package snapshot

import "strings"

// NodeType distinguishes element nodes from text nodes.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// String returns a string representation of the node type
func (t NodeType) String() string {
	if t == TextNode {
		return "text"
	}
	return "element"
}

// Rect is a box in document coordinates, as reported by
// getBoundingClientRect.
type Rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Area returns the area of the rect
func (r Rect) Area() float64 { return r.Width * r.Height }

// IsEmpty returns true if the rect has no area
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Node is one node of the rendered tree.
type Node struct {
	Type NodeType
	Tag  string // lower-case, elements only
	Data string // text nodes only

	Attrs map[string]string

	// Rect is the element box. RangeRect is the box of the element's text
	// range and SettledRect is a second read taken after late layout passes;
	// both are optional.
	Rect        Rect
	RangeRect   *Rect
	SettledRect *Rect

	// Style holds resolved style values keyed by property name.
	Style map[string]string

	NaturalWidth  float64
	NaturalHeight float64

	Parent   *Node
	Children []*Node
}

// NewElement creates an element node with empty attribute and style maps.
func NewElement(tag string) *Node {
	return &Node{
		Type:  ElementNode,
		Tag:   strings.ToLower(tag),
		Attrs: make(map[string]string),
		Style: make(map[string]string),
	}
}

// NewText creates a text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// AppendChild attaches child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// IsElement returns true for element nodes
func (n *Node) IsElement() bool { return n != nil && n.Type == ElementNode }

// IsText returns true for text nodes
func (n *Node) IsText() bool { return n != nil && n.Type == TextNode }

// Attr returns an attribute value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// ID returns the id attribute
func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// ClassList returns the class attribute split on whitespace.
func (n *Node) ClassList() []string {
	v, _ := n.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.ClassList() {
		if c == class {
			return true
		}
	}
	return false
}

// StyleValue returns a resolved style property, or "" if absent.
func (n *Node) StyleValue(prop string) string {
	if n.Style == nil {
		return ""
	}
	return n.Style[prop]
}

// Display returns the resolved display value.
func (n *Node) Display() string {
	return n.StyleValue("display")
}

// ElementChildren returns the element children in order.
func (n *Node) ElementChildren() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsElement() {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenByTag returns direct element children with one of the tags.
func (n *Node) ChildrenByTag(tags ...string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !c.IsElement() {
			continue
		}
		for _, t := range tags {
			if c.Tag == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Descendants returns all element descendants in document (pre-)order,
// excluding n itself.
func (n *Node) Descendants() []*Node {
	var out []*Node
	n.Walk(func(d *Node) bool {
		if d != n && d.IsElement() {
			out = append(out, d)
		}
		return true
	})
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Data
	}
	var sb strings.Builder
	n.Walk(func(d *Node) bool {
		if d.IsText() {
			sb.WriteString(d.Data)
		}
		return true
	})
	return sb.String()
}

// DirectText returns the concatenated data of n's direct text children.
func (n *Node) DirectText() string {
	var sb strings.Builder
	for _, c := range n.Children {
		if c.IsText() {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// Closest returns the nearest node, starting at n itself and walking up,
// for which match returns true.
func (n *Node) Closest(match func(*Node) bool) *Node {
	for p := n; p != nil; p = p.Parent {
		if p.IsElement() && match(p) {
			return p
		}
	}
	return nil
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
