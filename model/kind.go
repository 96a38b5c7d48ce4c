package model

import (
	"fmt"
	"sort"
)

// Kind classifies a recognised markup tag into a closed set of element
// categories. Every tag outside the vocabulary maps to KindUnknown and is
// never emitted.
type Kind int

const (
	KindUnknown Kind = iota
	KindBlock
	KindHeading
	KindParagraph
	KindInlineSpan
	KindInlineFormat
	KindLink
	KindLineBreak
	KindImage
	KindMedia
	KindList
	KindListItem
	KindTable
	KindTableSection
	KindTableRow
	KindTableCell
	KindControl
	KindRule
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindInlineSpan:
		return "inline-span"
	case KindInlineFormat:
		return "inline-format"
	case KindLink:
		return "link"
	case KindLineBreak:
		return "linebreak"
	case KindImage:
		return "image"
	case KindMedia:
		return "media"
	case KindList:
		return "list"
	case KindListItem:
		return "list-item"
	case KindTable:
		return "table"
	case KindTableSection:
		return "table-section"
	case KindTableRow:
		return "table-row"
	case KindTableCell:
		return "table-cell"
	case KindControl:
		return "control"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialise by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for candidate := KindUnknown; candidate <= KindRule; candidate++ {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown element kind %q", text)
}

// IsInline reports whether elements of this kind are laid out inline.
func (k Kind) IsInline() bool {
	switch k {
	case KindInlineSpan, KindInlineFormat, KindLink, KindLineBreak:
		return true
	}
	return false
}

// IsMedia reports whether elements of this kind reference external media.
func (k Kind) IsMedia() bool {
	return k == KindImage || k == KindMedia
}

// IsComposite reports whether elements of this kind absorb their descendants.
func (k Kind) IsComposite() bool {
	return k == KindList || k == KindTable
}

// vocabulary is the static allow-list of recognised tags.
var vocabulary = map[string]Kind{
	// Generic and sectioning containers
	"div":        KindBlock,
	"article":    KindBlock,
	"section":    KindBlock,
	"aside":      KindBlock,
	"nav":        KindBlock,
	"header":     KindBlock,
	"footer":     KindBlock,
	"main":       KindBlock,
	"figure":     KindBlock,
	"figcaption": KindBlock,
	"details":    KindBlock,
	"summary":    KindBlock,
	"dialog":     KindBlock,
	"fieldset":   KindBlock,
	"legend":     KindBlock,
	"blockquote": KindBlock,
	"address":    KindBlock,
	"dl":         KindBlock,
	"dt":         KindBlock,
	"dd":         KindBlock,

	"h1": KindHeading,
	"h2": KindHeading,
	"h3": KindHeading,
	"h4": KindHeading,
	"h5": KindHeading,
	"h6": KindHeading,

	"p":   KindParagraph,
	"pre": KindParagraph,

	"span":  KindInlineSpan,
	"label": KindInlineSpan,

	"strong": KindInlineFormat,
	"b":      KindInlineFormat,
	"em":     KindInlineFormat,
	"i":      KindInlineFormat,
	"u":      KindInlineFormat,
	"mark":   KindInlineFormat,
	"small":  KindInlineFormat,
	"sub":    KindInlineFormat,
	"sup":    KindInlineFormat,
	"strike": KindInlineFormat,
	"s":      KindInlineFormat,
	"del":    KindInlineFormat,
	"ins":    KindInlineFormat,
	"code":   KindInlineFormat,
	"kbd":    KindInlineFormat,
	"samp":   KindInlineFormat,
	"var":    KindInlineFormat,
	"abbr":   KindInlineFormat,
	"bdi":    KindInlineFormat,
	"bdo":    KindInlineFormat,
	"cite":   KindInlineFormat,
	"dfn":    KindInlineFormat,
	"q":      KindInlineFormat,
	"time":   KindInlineFormat,
	"ruby":   KindInlineFormat,
	"rt":     KindInlineFormat,
	"rp":     KindInlineFormat,

	"a": KindLink,

	"br":  KindLineBreak,
	"wbr": KindLineBreak,

	"img": KindImage,
	"svg": KindImage,

	"video":  KindMedia,
	"audio":  KindMedia,
	"iframe": KindMedia,
	"embed":  KindMedia,
	"object": KindMedia,

	"ul": KindList,
	"ol": KindList,
	"li": KindListItem,

	"table":    KindTable,
	"thead":    KindTableSection,
	"tbody":    KindTableSection,
	"tfoot":    KindTableSection,
	"caption":  KindTableSection,
	"colgroup": KindTableSection,
	"col":      KindTableSection,
	"tr":       KindTableRow,
	"td":       KindTableCell,
	"th":       KindTableCell,

	"button":   KindControl,
	"input":    KindControl,
	"textarea": KindControl,
	"select":   KindControl,
	"option":   KindControl,

	"hr": KindRule,
}

// LookupKind returns the kind for a lower-case tag name and whether the tag
// is part of the recognised vocabulary.
func LookupKind(tag string) (Kind, bool) {
	k, ok := vocabulary[tag]
	return k, ok
}

// KindOf returns the kind for a tag, or KindUnknown.
func KindOf(tag string) Kind {
	return vocabulary[tag]
}

// Vocabulary returns the recognised tags in sorted order.
func Vocabulary() []string {
	tags := make([]string, 0, len(vocabulary))
	for tag := range vocabulary {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
