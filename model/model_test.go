package model

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBox(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)
	if bbox.X != 10 || bbox.Y != 20 || bbox.Width != 100 || bbox.Height != 50 {
		t.Errorf("NewBBox() = %+v, want {10, 20, 100, 50}", bbox)
	}
}

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Right() != 110 {
		t.Errorf("Right() = %v, want 110", bbox.Right())
	}
	if bbox.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", bbox.Bottom())
	}
	if bbox.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", bbox.Area())
	}
}

func TestBBoxWithin(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want bool
	}{
		{"inside", BBox{10, 10, 50, 50}, true},
		{"touching edges", BBox{0, 0, 100, 100}, true},
		{"overflow right", BBox{60, 0, 50, 10}, false},
		{"negative x", BBox{-1, 0, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Within(100, 100); got != tt.want {
				t.Errorf("Within() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name      string
		v         float64
		precision int
		want      float64
	}{
		{"two decimals", 12.3456, 2, 12.35},
		{"integer", 12.5, 0, 13},
		{"full precision", 12.3456, -1, 12.3456},
		{"negative value", -0.004, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundTo(tt.v, tt.precision)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.precision, got, tt.want)
			}
		})
	}
}

func TestBBoxRound(t *testing.T) {
	got := BBox{1.234, 5.678, 9.999, 0.001}.Round(2)
	want := BBox{1.23, 5.68, 10, 0}
	if got != want {
		t.Errorf("Round(2) = %+v, want %+v", got, want)
	}
}

// ============================================================================
// Matrix Tests
// ============================================================================

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Errorf("Identity() is not identity: %v", m)
	}
	if m.ScaleX() != 1 || m.ScaleY() != 1 {
		t.Errorf("Identity() scale = (%v, %v), want (1, 1)", m.ScaleX(), m.ScaleY())
	}
}

func TestMatrixMultiply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		o    Matrix
		want Matrix
	}{
		{"identity", Identity(), Scale(2, 3), Scale(2, 3)},
		{"translate then scale", Translate(10, 20), Scale(2, 2), Matrix{2, 0, 0, 2, 10, 20}},
		{"scale then translate", Scale(2, 2), Translate(10, 20), Matrix{2, 0, 0, 2, 20, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Multiply(tt.o); got != tt.want {
				t.Errorf("Multiply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	if math.Abs(m[0]) > 1e-9 || math.Abs(m[1]-1) > 1e-9 {
		t.Errorf("Rotate(pi/2) = %v", m)
	}
}

func TestMatrixTranslation(t *testing.T) {
	tx, ty := Translate(7, -3).Translation()
	if tx != 7 || ty != -3 {
		t.Errorf("Translation() = (%v, %v), want (7, -3)", tx, ty)
	}
}

// ============================================================================
// Kind Tests
// ============================================================================

func TestLookupKind(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
		ok   bool
	}{
		{"div", KindBlock, true},
		{"h3", KindHeading, true},
		{"p", KindParagraph, true},
		{"span", KindInlineSpan, true},
		{"strong", KindInlineFormat, true},
		{"br", KindLineBreak, true},
		{"img", KindImage, true},
		{"video", KindMedia, true},
		{"ul", KindList, true},
		{"li", KindListItem, true},
		{"table", KindTable, true},
		{"td", KindTableCell, true},
		{"hr", KindRule, true},
		{"script", KindUnknown, false},
		{"style", KindUnknown, false},
		{"custom-element", KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := LookupKind(tt.tag)
			if got != tt.want || ok != tt.ok {
				t.Errorf("LookupKind(%q) = (%v, %v), want (%v, %v)", tt.tag, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestVocabularySize(t *testing.T) {
	tags := Vocabulary()
	if len(tags) < 60 {
		t.Errorf("Vocabulary() has %d tags, want at least 60", len(tags))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Fatalf("Vocabulary() not sorted at %d: %q >= %q", i, tags[i-1], tags[i])
		}
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for k := KindUnknown; k <= KindRule; k++ {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != k {
			t.Errorf("round trip %v -> %q -> %v", k, text, back)
		}
	}

	var k Kind
	if err := k.UnmarshalText([]byte("widget")); err == nil {
		t.Error("UnmarshalText(widget) should fail")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindInlineFormat.IsInline() || KindBlock.IsInline() {
		t.Error("IsInline() mismatch")
	}
	if !KindImage.IsMedia() || !KindMedia.IsMedia() || KindTable.IsMedia() {
		t.Error("IsMedia() mismatch")
	}
	if !KindList.IsComposite() || !KindTable.IsComposite() || KindListItem.IsComposite() {
		t.Error("IsComposite() mismatch")
	}
}

// ============================================================================
// Element Tests
// ============================================================================

func strPtr(s string) *string { return &s }

func TestElementValidate(t *testing.T) {
	tests := []struct {
		name    string
		el      Element
		wantErr bool
	}{
		{"empty", Element{}, false},
		{"text only", Element{Text: strPtr("a")}, false},
		{"inline only", Element{InlineGroup: &InlineGroup{}}, false},
		{"list and media", Element{ListInfo: &ListInfo{}, MediaInfo: &MediaInfo{}}, false},
		{"text and inline", Element{Text: strPtr("a"), InlineGroup: &InlineGroup{}}, true},
		{"list and table", Element{ListInfo: &ListInfo{}, TableInfo: &TableInfo{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.el.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMultipleContentModes) {
				t.Errorf("Validate() error = %v, want ErrMultipleContentModes", err)
			}
		})
	}
}

func TestElementContentMode(t *testing.T) {
	el := Element{InlineGroup: &InlineGroup{Text: "Hello world"}}
	if el.ContentMode() != "inlineGroup" {
		t.Errorf("ContentMode() = %q, want inlineGroup", el.ContentMode())
	}
	if el.PlainText() != "Hello world" {
		t.Errorf("PlainText() = %q", el.PlainText())
	}
}

func TestElementJSONShape(t *testing.T) {
	el := Element{
		Type:       "p",
		Kind:       KindParagraph,
		X:          1.5,
		Width:      10,
		Height:     2,
		ClassNames: []string{"lead"},
		Text:       strPtr("hi"),
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"type":"p"`, `"kind":"paragraph"`, `"x":1.5`, `"classNames":["lead"]`, `"domId":""`, `"zIndex":0`, `"text":"hi"`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s: %s", want, s)
		}
	}
	for _, absent := range []string{`"inlineGroup"`, `"listInfo"`, `"tableInfo"`, `"mediaInfo"`, `"customProperties"`} {
		if strings.Contains(s, absent) {
			t.Errorf("JSON should omit %s: %s", absent, s)
		}
	}
}

func TestRunKindForTag(t *testing.T) {
	tests := []struct {
		tag  string
		want RunKind
		ok   bool
	}{
		{"b", RunBold, true},
		{"strong", RunBold, true},
		{"i", RunItalic, true},
		{"em", RunItalic, true},
		{"u", RunUnderline, true},
		{"mark", RunMark, true},
		{"span", RunSpan, true},
		{"br", RunLineBreak, true},
		{"a", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := RunKindForTag(tt.tag)
			if got != tt.want || ok != tt.ok {
				t.Errorf("RunKindForTag(%q) = (%q, %v), want (%q, %v)", tt.tag, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// ============================================================================
// Style Tests
// ============================================================================

func TestStyleRecordClone(t *testing.T) {
	orig := StyleRecord{Color: "red", CustomProperties: map[string]string{"--accent": "blue"}}
	clone := orig.Clone()
	clone.CustomProperties["--accent"] = "green"
	clone.Color = "black"

	if orig.CustomProperties["--accent"] != "blue" {
		t.Error("Clone() aliased CustomProperties")
	}
	if orig.Color != "red" {
		t.Error("Clone() aliased Color")
	}
}

func TestStyleRecordFontFlags(t *testing.T) {
	if !(StyleRecord{FontWeight: "700"}).IsBold() {
		t.Error("700 should be bold")
	}
	if (StyleRecord{FontWeight: "400"}).IsBold() {
		t.Error("400 should not be bold")
	}
	if !(StyleRecord{FontStyle: "italic"}).IsItalic() {
		t.Error("italic should be italic")
	}
}

// ============================================================================
// List and Table Tests
// ============================================================================

func TestListDepthAndText(t *testing.T) {
	list := ListInfo{
		Items: []ListItem{
			{Index: 0, Text: "one"},
			{Index: 1, Text: "two", NestedList: &ListInfo{Items: []ListItem{{Text: "two.a"}}}},
		},
	}
	if list.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", list.Depth())
	}
	want := "one\ntwo\n  two.a"
	if got := list.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestComputeColumnCount(t *testing.T) {
	rows := []TableRow{
		{Cells: []TableCell{{ColSpan: 1}, {ColSpan: 1}}},
		{Cells: []TableCell{{ColSpan: 1}, {ColSpan: 1}, {ColSpan: 1}}},
		{Cells: []TableCell{{ColSpan: 2}, {ColSpan: 1}}},
	}
	if got := ComputeColumnCount(rows); got != 3 {
		t.Errorf("ComputeColumnCount() = %d, want 3", got)
	}

	zero := []TableRow{{Cells: []TableCell{{ColSpan: 0}, {ColSpan: -2}}}}
	if got := ComputeColumnCount(zero); got != 2 {
		t.Errorf("ComputeColumnCount() with invalid spans = %d, want 2", got)
	}
}

func TestTablePlainText(t *testing.T) {
	table := TableInfo{Rows: []TableRow{
		{Cells: []TableCell{{Kind: "th", Text: strPtr("A")}, {Kind: "th", Text: strPtr("B")}}},
		{Cells: []TableCell{{Kind: "td", InlineGroup: &InlineGroup{Text: "x"}}, {Kind: "td"}}},
	}}
	want := "A\tB\nx\t"
	if got := table.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	if !table.Rows[0].Cells[0].IsHeader() || table.Rows[1].Cells[0].IsHeader() {
		t.Error("IsHeader() mismatch")
	}
}

// ============================================================================
// Media and Deck Tests
// ============================================================================

func TestMediaScaling(t *testing.T) {
	m := MediaInfo{NaturalWidth: 200, NaturalHeight: 100}
	s := m.ComputeScaling(BBox{Width: 100, Height: 50}, 2)
	if s == nil {
		t.Fatal("ComputeScaling() = nil")
	}
	if s.ScaleX != 0.5 || s.ScaleY != 0.5 || s.AspectRatio != 2 {
		t.Errorf("ComputeScaling() = %+v", s)
	}

	unknown := MediaInfo{}
	if unknown.ComputeScaling(BBox{Width: 1, Height: 1}, 2) != nil {
		t.Error("ComputeScaling() without natural size should be nil")
	}
}

func TestDeckCounts(t *testing.T) {
	deck := Deck{
		{SlideID: 1, Elements: []Element{{Kind: KindHeading}, {Kind: KindImage}}},
		{SlideID: 2, Elements: []Element{{Kind: KindImage}}},
	}
	if deck.ElementCount() != 3 {
		t.Errorf("ElementCount() = %d, want 3", deck.ElementCount())
	}
	counts := deck[0].CountByKind()
	if counts[KindImage] != 1 || counts[KindHeading] != 1 {
		t.Errorf("CountByKind() = %v", counts)
	}
	if err := deck.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	data, err := json.Marshal(deck)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.HasPrefix(string(data), "[") {
		t.Errorf("Deck JSON should be an array: %s", data)
	}
}
