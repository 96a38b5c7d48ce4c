package layout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/snapshot"
)

func extractMarkup(t *testing.T, markup string) *Result {
	t.Helper()
	doc, _ := parseSlide(t, markup)
	result, err := NewEngine().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result.Deck) != 1 {
		t.Fatalf("Extract() returned %d slides", len(result.Deck))
	}
	return result
}

func elementIDs(elements []model.Element) []string {
	ids := make([]string, len(elements))
	for i := range elements {
		ids[i] = elements[i].DomID
	}
	return ids
}

// ============================================================================
// Engine Tests
// ============================================================================

func TestExtractErrors(t *testing.T) {
	e := NewEngine()

	if _, err := e.Extract(nil); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Extract(nil) error = %v, want ErrNilDocument", err)
	}
	if _, err := e.Extract(&snapshot.Document{}); !errors.Is(err, snapshot.ErrNoRoot) {
		t.Errorf("Extract(empty) error = %v, want ErrNoRoot", err)
	}
}

func TestExtractFallbackRoot(t *testing.T) {
	src := `<html><body data-rect="0 0 800 600"><p data-rect="10 10 100 20">hello</p></body></html>`
	doc, err := snapshot.ParseHTML(context.Background(), strings.NewReader(src), snapshot.HTMLOptions{})
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	result, err := NewEngine().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !result.Fallback || len(result.Warnings) != 1 || result.Warnings[0].SlideID != 0 {
		t.Errorf("Fallback = %v, warnings = %v", result.Fallback, result.Warnings)
	}
	if len(result.Deck) != 1 || result.Deck[0].Width != 800 || len(result.Deck[0].Elements) != 1 {
		t.Fatalf("deck = %+v", result.Deck)
	}
	if text := result.Deck[0].Elements[0].Text; text == nil || *text != "hello" {
		t.Errorf("text = %v", text)
	}
}

func TestExtractEmptySlide(t *testing.T) {
	result := extractMarkup(t, ``)
	slide := result.Deck[0]
	if slide.SlideID != 1 || slide.Elements == nil || len(slide.Elements) != 0 {
		t.Errorf("slide = %+v", slide)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestExtractMultipleSlides(t *testing.T) {
	src := `<html><body data-rect="0 0 1280 1440">
<div class="slide" data-rect="0 0 1280 720" style="background: #123456"><h1 id="a" data-rect="40 40 400 50">One</h1></div>
<div class="slide" data-rect="0 720 1280 720"><h1 id="b" data-rect="40 760 400 50">Two</h1></div>
</body></html>`
	doc, err := snapshot.ParseHTML(context.Background(), strings.NewReader(src), snapshot.HTMLOptions{})
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	result, err := NewEngine().Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(result.Deck) != 2 || result.Fallback {
		t.Fatalf("got %d slides, fallback %v", len(result.Deck), result.Fallback)
	}

	second := result.Deck[1]
	if second.SlideID != 2 || second.Position != (model.Position{X: 0, Y: 720}) {
		t.Errorf("slide 2 id %d position %+v", second.SlideID, second.Position)
	}
	if got := second.Elements[0].BoundingBox(); got != model.NewBBox(40, 40, 400, 50) {
		t.Errorf("slide 2 heading box = %+v", got)
	}
	if result.Deck[0].Style.BackgroundColor != "rgb(18, 52, 86)" {
		t.Errorf("slide 1 background = %q", result.Deck[0].Style.BackgroundColor)
	}
}

func TestRedundantInlineSuppression(t *testing.T) {
	result := extractMarkup(t, `<div id="d" data-rect="10 10 200 40"><strong data-rect="10 10 50 20">X</strong></div>`)
	elements := result.Deck[0].Elements

	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	el := elements[0]
	if el.Type != "div" || el.Kind != model.KindBlock {
		t.Errorf("element = %s/%s", el.Type, el.Kind)
	}
	if el.InlineGroup == nil || el.Text != nil {
		t.Fatalf("content mode = %q", el.ContentMode())
	}
	if runs := el.InlineGroup.Runs; len(runs) != 1 || runs[0].Kind != model.RunBold || runs[0].Text != "X" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestHeadingKeepsFormattedText(t *testing.T) {
	result := extractMarkup(t, `<h1 data-rect="0 0 400 40">Big <strong>News</strong></h1>`)
	elements := result.Deck[0].Elements
	if len(elements) != 1 || elements[0].Text == nil || *elements[0].Text != "Big News" {
		t.Errorf("elements = %+v", elements)
	}
}

func TestRowBandOrder(t *testing.T) {
	result := extractMarkup(t, `
<div id="c" style="background: red" data-rect="300 100 50 50"></div>
<div id="a" style="background: red" data-rect="100 103 50 50"></div>
<div id="b" style="background: red" data-rect="0 120 50 50"></div>
`)
	got := strings.Join(elementIDs(result.Deck[0].Elements), ",")
	if got != "a,c,b" {
		t.Errorf("order = %s, want a,c,b", got)
	}
}

func TestZIndexOrder(t *testing.T) {
	result := extractMarkup(t, `
<div id="top" style="z-index: 5; background: red" data-rect="0 0 100 100"></div>
<div id="mid" style="background: blue" data-rect="200 0 100 100"></div>
<div id="low" style="z-index: -1; background: green" data-rect="400 0 100 100"></div>
<div id="mid2" style="background: blue" data-rect="0 200 100 100"></div>
`)
	elements := result.Deck[0].Elements
	got := strings.Join(elementIDs(elements), ",")
	if got != "low,mid,mid2,top" {
		t.Errorf("order = %s, want low,mid,mid2,top", got)
	}
	if elements[0].ZIndex != -1 || elements[3].ZIndex != 5 {
		t.Errorf("z-index = %d, %d", elements[0].ZIndex, elements[3].ZIndex)
	}
}

func TestDeduplication(t *testing.T) {
	result := extractMarkup(t, `<section data-rect="0 0 500 100"><span class="tag" data-rect="10 10 50 20">Same</span><span class="tag" data-rect="10 10 50 20">Same</span><span class="tag" data-rect="70 10 50 20">Same</span></section>`)
	elements := result.Deck[0].Elements

	if len(elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(elements))
	}
	if elements[0].Type != "section" || elements[0].Text != nil {
		t.Errorf("first element = %s text %v", elements[0].Type, elements[0].Text)
	}
	if elements[1].X != 10 || elements[2].X != 70 {
		t.Errorf("span x = %v, %v", elements[1].X, elements[2].X)
	}
}

func TestListAndTableAbsorbDescendants(t *testing.T) {
	result := extractMarkup(t, `
<ul data-rect="0 0 400 40"><li data-rect="0 0 400 20"><span>One</span></li><li data-rect="0 20 400 20">Two</li></ul>
<table data-rect="0 100 400 40"><tr><td><img src="x.png">cell</td></tr></table>
`)
	elements := result.Deck[0].Elements
	if len(elements) != 2 {
		t.Fatalf("got %d elements %v, want 2", len(elements), elementTypes(elements))
	}
	if elements[0].ListInfo == nil || elements[0].ListInfo.ItemCount != 2 {
		t.Errorf("list = %+v", elements[0].ListInfo)
	}
	if elements[1].TableInfo == nil || elements[1].TableInfo.RowCount != 1 {
		t.Errorf("table = %+v", elements[1].TableInfo)
	}
}

func elementTypes(elements []model.Element) []string {
	types := make([]string, len(elements))
	for i := range elements {
		types[i] = elements[i].Type
	}
	return types
}

func TestClusters(t *testing.T) {
	result := extractMarkup(t, `
<div class="companies" style="display: flex" data-rect="0 600 1280 100" data-settled-rect="0 610 1280 100">
<div class="company" data-rect="0 600 300 100"><img src="a.png" data-rect="0 600 100 100" data-natural-size="200 200"><span data-rect="110 640 150 20">Acme</span></div>
</div>
<div class="footer" data-rect="0 700 1280 20"><span data-rect="0 700 100 20">Left</span><img src="f.png" data-rect="600 700 20 20"><span data-rect="1180 700 100 20">Right</span></div>
`)
	elements := result.Deck[0].Elements

	want := []string{"img", "div", "span", "span", "img", "span"}
	if got := elementTypes(elements); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("types = %v, want %v", got, want)
	}
	if elements[1].Y != 610 {
		t.Errorf("flex group y = %v, want settled 610", elements[1].Y)
	}
	if elements[1].Text != nil {
		t.Errorf("flex group text = %q", *elements[1].Text)
	}

	logo := elements[0].MediaInfo
	if logo == nil || logo.Src != "a.png" || logo.Scaling == nil || logo.Scaling.ScaleX != 0.5 {
		t.Errorf("logo media = %+v", logo)
	}
	if elements[2].Text == nil || *elements[2].Text != "Acme" {
		t.Errorf("label = %+v", elements[2].Text)
	}
	if elements[5].Text == nil || *elements[5].Text != "Right" || elements[5].X != 1180 {
		t.Errorf("footer right = %+v", elements[5])
	}
}

func TestMediaInfo(t *testing.T) {
	result := extractMarkup(t, `
<img id="img" src="logo.png" alt="Logo" data-rect="0 0 200 100" data-natural-size="400 200">
<video id="video" data-rect="300 0 100 100"><source src="clip.mp4"></video>
<object id="object" data="chart.svg" data-rect="500 0 100 100"></object>
<img id="unsized" src="x.png" data-rect="700 0 10 10">
`)
	byDomID := make(map[string]model.Element)
	for _, el := range result.Deck[0].Elements {
		byDomID[el.DomID] = el
	}

	img := byDomID["img"].MediaInfo
	if img == nil || img.Src != "logo.png" || img.Alt != "Logo" || img.NaturalWidth != 400 {
		t.Fatalf("img media = %+v", img)
	}
	if img.Scaling == nil || img.Scaling.ScaleX != 0.5 || img.Scaling.ScaleY != 0.5 || img.Scaling.AspectRatio != 2 {
		t.Errorf("img scaling = %+v", img.Scaling)
	}
	if byDomID["img"].Kind != model.KindImage || byDomID["img"].Text != nil {
		t.Errorf("img element = %+v", byDomID["img"])
	}

	if v := byDomID["video"].MediaInfo; v == nil || v.Src != "clip.mp4" || v.Scaling != nil {
		t.Errorf("video media = %+v", v)
	}
	if o := byDomID["object"].MediaInfo; o == nil || o.Src != "chart.svg" {
		t.Errorf("object media = %+v", o)
	}
	if u := byDomID["unsized"].MediaInfo; u == nil || u.Scaling != nil {
		t.Errorf("unsized media = %+v", u)
	}
}

func TestTableFallback(t *testing.T) {
	result := extractMarkup(t, `<table data-rect="0 0 100 100"></table>`)
	elements := result.Deck[0].Elements

	if len(elements) != 1 || elements[0].Kind != model.KindTable || elements[0].TableInfo != nil {
		t.Fatalf("elements = %+v", elements)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].SlideID != 1 ||
		!strings.Contains(result.Warnings[0].Message, ErrEmptyTable.Error()) {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if !strings.HasPrefix(result.Warnings[0].String(), "slide 1: ") {
		t.Errorf("String() = %q", result.Warnings[0].String())
	}
}

func TestBackgroundResolution(t *testing.T) {
	result := extractMarkup(t, `<section style="background: red" data-rect="0 0 100 100"><span data-rect="0 0 50 20">S</span></section>`)
	elements := result.Deck[0].Elements
	if len(elements) != 2 {
		t.Fatalf("got %d elements", len(elements))
	}
	if span := elements[1]; span.Type != "span" || span.Style.BackgroundColor != "rgb(255, 0, 0)" {
		t.Errorf("span %s background = %q", span.Type, span.Style.BackgroundColor)
	}
}

// ============================================================================
// Deck Property Tests
// ============================================================================

const deckMarkup = `
<h1 data-rect="40 20 800 60" style="z-index: 2">Quarterly <em>results</em></h1>
<p data-rect="40 100 600 40">Revenue grew <b>12%</b> while costs <i>fell</i>.</p>
<ol start="3" data-rect="40 160 600 80"><li data-rect="40 160 600 20">One</li><li data-rect="40 180 600 20">Two <mark>!</mark></li></ol>
<table data-rect="40 260 600 60"><tr><th>Q</th><th>Value</th></tr><tr><td>1</td><td>10</td></tr></table>
<div style="transform: scale(2)" data-rect="1200 600 100 100">big</div>
<div style="position: absolute; z-index: -3; background: #eee" data-rect="-20 -20 2000 2000"></div>
<div class="companies" style="display: flex" data-rect="40 640 600 60">
<div class="company"><img src="a.png" data-rect="40 640 60 60"><span data-rect="110 660 80 20">Acme</span></div>
<div class="company"><img src="b.png" data-rect="240 640 60 60"><span data-rect="310 660 80 20">Beta</span></div>
</div>
`

func TestDeckProperties(t *testing.T) {
	result := extractMarkup(t, deckMarkup)
	slide := result.Deck[0]

	if err := result.Deck.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	for i, el := range slide.Elements {
		box := el.BoundingBox()
		if !box.Within(slide.Width, slide.Height) {
			t.Errorf("element %d (%s) box %+v outside %vx%v", i, el.Type, box, slide.Width, slide.Height)
		}
		if box.Width < 0.1 || box.Height < 0.1 {
			t.Errorf("element %d (%s) box %+v below minimum extent", i, el.Type, box)
		}
		if i > 0 && slide.Elements[i-1].ZIndex > el.ZIndex {
			t.Errorf("element %d breaks z-order", i)
		}
	}

	if first := slide.Elements[0]; first.ZIndex != -3 || first.X != 0 || first.Width != 1280 {
		t.Errorf("background element = %+v", first.BoundingBox())
	}
	if last := slide.Elements[len(slide.Elements)-1]; last.Type != "h1" || last.InlineGroup != nil || last.Text == nil {
		t.Errorf("last element = %s", last.Type)
	}

	counts := slide.CountByKind()
	if counts[model.KindImage] != 2 || counts[model.KindInlineSpan] != 2 || counts[model.KindList] != 1 || counts[model.KindTable] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestIdempotence(t *testing.T) {
	doc, _ := parseSlide(t, deckMarkup)
	e := NewEngine()

	first, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	second, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	a, _ := json.Marshal(first.Deck)
	b, _ := json.Marshal(second.Deck)
	if !bytes.Equal(a, b) {
		t.Error("repeated extraction produced different output")
	}
}

func TestConcurrentExtraction(t *testing.T) {
	doc, _ := parseSlide(t, deckMarkup)
	e := NewEngine()

	want, err := e.Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	wantJSON, _ := json.Marshal(want.Deck)

	var wg sync.WaitGroup
	outputs := make([][]byte, 8)
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := e.Extract(doc)
			if err != nil {
				return
			}
			outputs[i], _ = json.Marshal(r.Deck)
		}(i)
	}
	wg.Wait()

	for i, out := range outputs {
		if !bytes.Equal(out, wantJSON) {
			t.Errorf("run %d differs", i)
		}
	}
}

func TestOutputShape(t *testing.T) {
	result := extractMarkup(t, `<p id="p" class="lead intro" data-rect="0 0 100 20">x</p>`)
	data, err := json.Marshal(result.Deck)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not an array of slides: %v", err)
	}
	for _, key := range []string{"slideId", "width", "height", "position", "style", "elements"} {
		if _, ok := decoded[0][key]; !ok {
			t.Errorf("slide record missing %q", key)
		}
	}

	el := decoded[0]["elements"].([]any)[0].(map[string]any)
	for _, key := range []string{"type", "kind", "x", "y", "width", "height", "style", "classNames", "domId", "zIndex", "text"} {
		if _, ok := el[key]; !ok {
			t.Errorf("element record missing %q", key)
		}
	}
	for _, key := range []string{"inlineGroup", "listInfo", "tableInfo", "mediaInfo"} {
		if _, ok := el[key]; ok {
			t.Errorf("element record carries unset %q", key)
		}
	}
	if el["kind"] != "paragraph" || el["domId"] != "p" {
		t.Errorf("element = %v", el)
	}
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	base := NewEngine()
	logged := base.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	doc, _ := parseSlide(t, `<table data-rect="0 0 10 10"></table>`)
	if _, err := logged.Extract(doc); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "slide assembled") || !strings.Contains(out, "structured extraction failed") {
		t.Errorf("log output = %s", out)
	}

	buf.Reset()
	if _, err := base.Extract(doc); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("WithLogger must not change the original engine")
	}
}

func TestExtractSlide(t *testing.T) {
	_, root := parseSlide(t, `<p data-rect="0 0 10 10">a</p>`)
	slide, warnings := NewEngine().ExtractSlide(root, 7)
	if slide.SlideID != 7 || len(slide.Elements) != 1 || len(warnings) != 0 {
		t.Errorf("slide = %+v, warnings = %v", slide, warnings)
	}
}

// ============================================================================
// Ordering Helper Tests
// ============================================================================

func TestRowBandLess(t *testing.T) {
	tests := []struct {
		name string
		a, b model.BBox
		want bool
	}{
		{"same row by x", model.NewBBox(100, 3, 1, 1), model.NewBBox(300, 0, 1, 1), true},
		{"same row reversed", model.NewBBox(300, 0, 1, 1), model.NewBBox(100, 3, 1, 1), false},
		{"different rows by y", model.NewBBox(500, 10, 1, 1), model.NewBBox(0, 20, 1, 1), true},
		{"tolerance boundary", model.NewBBox(500, 0, 1, 1), model.NewBBox(0, 5, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowBandLess(tt.a, tt.b, 5); got != tt.want {
				t.Errorf("RowBandLess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentityKey(t *testing.T) {
	_, root := parseSlide(t, `<img id="a" class="x y" src="s.png" data-rect="1 2 3 4"><p id="b" data-rect="0 0 1 1">`+strings.Repeat("z", 80)+`</p>`)

	if got := IdentityKey(byID(t, root, "a"), 50); got != "img|a|x y|1|2|3|4||s.png" {
		t.Errorf("IdentityKey(img) = %q", got)
	}
	key := IdentityKey(byID(t, root, "b"), 50)
	if !strings.Contains(key, "|"+strings.Repeat("z", 50)+"|") || strings.Contains(key, strings.Repeat("z", 51)) {
		t.Errorf("IdentityKey(p) = %q", key)
	}
}
