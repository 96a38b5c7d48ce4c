package model

import (
	"errors"
	"strings"
)

// ErrMultipleContentModes is returned by Element.Validate when more than one
// of text, inline group, list or table content is set.
var ErrMultipleContentModes = errors.New("element has more than one content mode")

// Element is one visual element of a slide. Geometry is relative to the
// slide's top-left corner.
type Element struct {
	Type   string  `json:"type"`
	Kind   Kind    `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Style      StyleRecord `json:"style"`
	ClassNames []string    `json:"classNames"`
	DomID      string      `json:"domId"`
	ZIndex     int         `json:"zIndex"`

	// Content modes, at most one is set
	Text        *string      `json:"text,omitempty"`
	InlineGroup *InlineGroup `json:"inlineGroup,omitempty"`
	ListInfo    *ListInfo    `json:"listInfo,omitempty"`
	TableInfo   *TableInfo   `json:"tableInfo,omitempty"`

	MediaInfo *MediaInfo `json:"mediaInfo,omitempty"`
}

// BoundingBox returns the element's slide-relative box
func (e *Element) BoundingBox() BBox {
	return BBox{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// SetBoundingBox copies a box into the element's geometry fields
func (e *Element) SetBoundingBox(b BBox) {
	e.X, e.Y, e.Width, e.Height = b.X, b.Y, b.Width, b.Height
}

// ContentMode returns the name of the element's content mode, or "" when
// it carries no content.
func (e *Element) ContentMode() string {
	switch {
	case e.InlineGroup != nil:
		return "inlineGroup"
	case e.ListInfo != nil:
		return "listInfo"
	case e.TableInfo != nil:
		return "tableInfo"
	case e.Text != nil:
		return "text"
	}
	return ""
}

// PlainText returns the element's textual content regardless of the mode.
func (e *Element) PlainText() string {
	switch {
	case e.Text != nil:
		return *e.Text
	case e.InlineGroup != nil:
		return e.InlineGroup.Text
	case e.ListInfo != nil:
		return e.ListInfo.PlainText()
	case e.TableInfo != nil:
		return e.TableInfo.PlainText()
	}
	return ""
}

// Validate checks the content-mode exclusivity invariant.
func (e *Element) Validate() error {
	n := 0
	if e.Text != nil {
		n++
	}
	if e.InlineGroup != nil {
		n++
	}
	if e.ListInfo != nil {
		n++
	}
	if e.TableInfo != nil {
		n++
	}
	if n > 1 {
		return ErrMultipleContentModes
	}
	return nil
}

// RunKind is the formatting category of an inline run.
type RunKind string

const (
	RunText      RunKind = "text"
	RunBold      RunKind = "bold"
	RunItalic    RunKind = "italic"
	RunUnderline RunKind = "underline"
	RunMark      RunKind = "mark"
	RunSpan      RunKind = "span"
	RunLineBreak RunKind = "linebreak"
)

// RunKindForTag maps an inline formatting tag to its run kind.
func RunKindForTag(tag string) (RunKind, bool) {
	switch tag {
	case "strong", "b":
		return RunBold, true
	case "em", "i":
		return RunItalic, true
	case "u":
		return RunUnderline, true
	case "mark":
		return RunMark, true
	case "span":
		return RunSpan, true
	case "br":
		return RunLineBreak, true
	}
	return "", false
}

// Run is one contiguous fragment of an inline group.
type Run struct {
	Kind  RunKind     `json:"kind"`
	Tag   string      `json:"tag,omitempty"`
	Text  string      `json:"text"`
	Style StyleRecord `json:"style"`
}

// InlineGroup holds the ordered runs of a block container that mixes plain
// text with inline formatting.
type InlineGroup struct {
	Text        string      `json:"text"`
	Runs        []Run       `json:"runs"`
	BoundingBox BBox        `json:"boundingBox"`
	Style       StyleRecord `json:"style"`
}

// JoinRuns concatenates the text of all runs.
func JoinRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
