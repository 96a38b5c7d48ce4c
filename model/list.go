package model

import "strings"

// ListKind distinguishes ordered from unordered lists.
type ListKind string

const (
	ListOrdered   ListKind = "ordered"
	ListUnordered ListKind = "unordered"
)

// ListInfo is the structured record of a ul or ol element.
type ListInfo struct {
	Kind        ListKind   `json:"kind"`
	ItemCount   int        `json:"itemCount"`
	BoundingBox BBox       `json:"boundingBox"`
	ListStyle   ListStyle  `json:"listStyle"`
	Items       []ListItem `json:"items"`

	// Ordered lists only
	Start    *int  `json:"start,omitempty"`
	Reversed *bool `json:"reversed,omitempty"`

	// Truncated is set when nesting deeper than the configured limit was cut.
	Truncated bool `json:"truncated,omitempty"`
}

// ListItem is one direct li child of a list.
type ListItem struct {
	Index       int          `json:"index"`
	Text        string       `json:"text"`
	Style       StyleRecord  `json:"style"`
	BoundingBox BBox         `json:"boundingBox"`
	InlineGroup *InlineGroup `json:"inlineGroup,omitempty"`
	NestedList  *ListInfo    `json:"nestedList,omitempty"`
}

// Depth returns the nesting depth of the list, 1 for a flat list.
func (l *ListInfo) Depth() int {
	max := 0
	for i := range l.Items {
		if l.Items[i].NestedList != nil {
			if d := l.Items[i].NestedList.Depth(); d > max {
				max = d
			}
		}
	}
	return max + 1
}

// PlainText returns item texts joined by newlines, nested items indented.
func (l *ListInfo) PlainText() string {
	var sb strings.Builder
	l.writeText(&sb, 0)
	return strings.TrimRight(sb.String(), "\n")
}

func (l *ListInfo) writeText(sb *strings.Builder, depth int) {
	for i := range l.Items {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(l.Items[i].Text)
		sb.WriteString("\n")
		if l.Items[i].NestedList != nil {
			l.Items[i].NestedList.writeText(sb, depth+1)
		}
	}
}
