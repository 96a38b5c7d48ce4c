package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

// collapseWhitespace replaces every run of whitespace with a single space.
// Leading and trailing whitespace is collapsed, not removed.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// cleanText collapses, trims and NFC-normalises s.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(collapseWhitespace(s)))
}

// normalizeLines keeps the first line as-is and strips leading horizontal
// whitespace from every following line.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimLeft(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}

func isPreformatted(whiteSpace string) bool {
	return strings.HasPrefix(whiteSpace, "pre") || whiteSpace == "break-spaces"
}

// captureText applies the node's white-space mode to raw text.
func captureText(n *snapshot.Node, raw string) string {
	if isPreformatted(n.StyleValue("white-space")) {
		return norm.NFC.String(strings.Trim(raw, "\r\n"))
	}
	return cleanText(raw)
}

// ownText returns the text a block element displays itself: its direct
// text nodes plus the text of inline formatting children that are not
// emitted on their own.
func (f *RelevanceFilter) ownText(n *snapshot.Node) string {
	var sb strings.Builder
	for _, c := range n.Children {
		switch {
		case c.IsText():
			sb.WriteString(c.Data)
		case c.Tag == "br":
			sb.WriteByte('\n')
		case f.IsRedundantInline(c) && !f.IsHidden(c):
			sb.WriteString(c.TextContent())
		}
	}
	return sb.String()
}

// plainText returns the plain text of an element of the given kind, or nil
// for kinds that carry no plain text or when the text is empty.
func (f *RelevanceFilter) plainText(n *snapshot.Node, kind model.Kind) *string {
	var raw string
	switch {
	case kind.IsComposite(), kind.IsMedia(),
		kind == model.KindRule, kind == model.KindLineBreak, kind == model.KindTableRow:
		return nil
	case kind.IsInline(), kind == model.KindControl:
		raw = n.TextContent()
	default:
		raw = f.ownText(n)
	}
	text := captureText(n, raw)
	if text == "" {
		return nil
	}
	return &text
}

// listItemText returns the item's text excluding nested lists.
func listItemText(li *snapshot.Node) string {
	var sb strings.Builder
	li.Walk(func(c *snapshot.Node) bool {
		if c != li && c.IsElement() && (c.Tag == "ul" || c.Tag == "ol") {
			return false
		}
		if c.IsText() {
			sb.WriteString(c.Data)
		}
		return true
	})
	return cleanText(sb.String())
}

// textPrefix returns up to n runes of the trimmed text.
func textPrefix(s string, n int) string {
	s = strings.TrimSpace(s)
	if n < 0 {
		return s
	}
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
