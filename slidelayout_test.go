package slidelayout

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/slidelayout/format"
	"github.com/tsawler/slidelayout/layout"
	"github.com/tsawler/slidelayout/model"
	"github.com/tsawler/slidelayout/preview"
)

const deckMarkup = `<html><body data-rect="0 0 960 1080">
<div class="slide" data-rect="0 0 960 540">
  <h1 id="title" data-rect="40 40 600 60">Quarterly <strong>Review</strong></h1>
  <img id="logo" src="logo.png" data-rect="800 40 120 60">
</div>
<div class="slide" data-rect="0 540 960 540">
  <ul id="points" data-rect="40 600 400 60">
    <li data-rect="60 600 380 30">Revenue up</li>
    <li data-rect="60 630 380 30">Costs <b>down</b></li>
  </ul>
</div>
</body></html>`

// writeDeck writes the fixture and a 4x2 logo into a temp directory.
func writeDeck(t *testing.T, markup string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.html")
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func findElement(deck model.Deck, id string) *model.Element {
	for i := range deck {
		for j := range deck[i].Elements {
			if deck[i].Elements[j].DomID == id {
				return &deck[i].Elements[j]
			}
		}
	}
	return nil
}

// ============================================================================
// Source Tests
// ============================================================================

func TestOpen(t *testing.T) {
	_, _, err := Open("nonexistent.html").Deck()
	if err == nil {
		t.Error("expected error for non-existent file")
	}

	if _, _, err := (&Extractor{options: defaultOptions()}).Deck(); err == nil {
		t.Error("expected error without a source")
	}
}

func TestOpenDeck(t *testing.T) {
	path := writeDeck(t, deckMarkup)

	deck, warnings, err := Open(path).Deck()
	if err != nil {
		t.Fatalf("Deck() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", FormatWarnings(warnings))
	}
	if len(deck) != 2 {
		t.Fatalf("got %d slides, want 2", len(deck))
	}

	title := findElement(deck, "title")
	if title == nil || title.PlainText() != "Quarterly Review" {
		t.Errorf("title = %+v", title)
	}

	points := findElement(deck, "points")
	if points == nil || points.ListInfo == nil || points.ListInfo.ItemCount != 2 {
		t.Fatalf("points = %+v", points)
	}
	if points.Y != 60 {
		t.Errorf("list y = %v, want 60 (slide-relative)", points.Y)
	}

	// natural size is not probed unless asked
	logo := findElement(deck, "logo")
	if logo == nil || logo.MediaInfo == nil || logo.MediaInfo.NaturalWidth != 0 {
		t.Errorf("logo = %+v", logo)
	}
}

func TestProbeMedia(t *testing.T) {
	path := writeDeck(t, deckMarkup)

	deck, _, err := Open(path).ProbeMedia().Deck()
	if err != nil {
		t.Fatalf("Deck() error = %v", err)
	}
	logo := findElement(deck, "logo")
	if logo == nil || logo.MediaInfo == nil {
		t.Fatal("logo not extracted")
	}
	if logo.MediaInfo.NaturalWidth != 4 || logo.MediaInfo.NaturalHeight != 2 {
		t.Errorf("natural size = %vx%v, want 4x2", logo.MediaInfo.NaturalWidth, logo.MediaInfo.NaturalHeight)
	}
	if logo.MediaInfo.Scaling == nil || logo.MediaInfo.Scaling.ScaleX != 30 {
		t.Errorf("scaling = %+v", logo.MediaInfo.Scaling)
	}
}

func TestFromReader(t *testing.T) {
	src := `{"version": 1, "viewport": {"width": 800, "height": 600},
"root": {"tag": "body", "rect": {"left": 0, "top": 0, "width": 800, "height": 600}, "children": [
  {"tag": "section", "attrs": {"class": "slide"}, "rect": {"left": 0, "top": 0, "width": 800, "height": 600}, "children": [
    {"tag": "h2", "attrs": {"id": "h"}, "text": "Hello", "rect": {"left": 10, "top": 10, "width": 200, "height": 30}}
  ]}
]}}`

	deck, _, err := FromReader(strings.NewReader(src), format.JSON).Deck()
	if err != nil {
		t.Fatalf("Deck() error = %v", err)
	}
	h := findElement(deck, "h")
	if len(deck) != 1 || h == nil || h.PlainText() != "Hello" {
		t.Errorf("deck = %+v", deck)
	}
}

func TestFromDocument(t *testing.T) {
	doc, err := Open(writeDeck(t, deckMarkup)).Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	deck, _, err := FromDocument(doc).Deck()
	if err != nil || len(deck) != 2 {
		t.Fatalf("Deck() = %d slides, %v", len(deck), err)
	}

	if _, _, err := FromDocument(nil).Deck(); err == nil {
		t.Error("expected error for a nil document")
	}
}

// ============================================================================
// Option Tests
// ============================================================================

func TestOptionsImmutable(t *testing.T) {
	base := Open("deck.html")
	page := base.SlideClass("page").Precision(0)

	if base.options.config.SlideClass != "slide" || base.options.config.Precision != 2 {
		t.Errorf("base options changed: %+v", base.options.config)
	}
	if page.options.config.SlideClass != "page" || page.options.config.Precision != 0 {
		t.Errorf("derived options = %+v", page.options.config)
	}

	config := layout.DefaultConfig()
	withConfig := base.WithConfig(config)
	config.GroupTags[0] = "changed"
	if withConfig.options.config.GroupTags[0] == "changed" {
		t.Error("WithConfig must copy slices")
	}
}

func TestSlideClassFallback(t *testing.T) {
	path := writeDeck(t, deckMarkup)

	deck, warnings, err := Open(path).SlideClass("page").Deck()
	if err != nil {
		t.Fatalf("Deck() error = %v", err)
	}
	if len(deck) != 1 {
		t.Errorf("got %d slides, want the whole document", len(deck))
	}
	if len(warnings) != 1 || warnings[0].Stage != StageLayout || warnings[0].SlideID != 0 {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestSlide(t *testing.T) {
	ext := Open(writeDeck(t, deckMarkup))

	slide, _, err := ext.Slide(2)
	if err != nil || slide.SlideID != 2 {
		t.Fatalf("Slide(2) = %+v, %v", slide, err)
	}
	if _, _, err := ext.Slide(3); err == nil {
		t.Error("Slide(3) should be out of range")
	}
}

// ============================================================================
// Output Tests
// ============================================================================

func TestJSON(t *testing.T) {
	path := writeDeck(t, deckMarkup)

	data, _, err := Open(path).JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !bytes.Contains(data, []byte("\n  {")) {
		t.Error("default output should be indented")
	}

	var slides []map[string]any
	if err := json.Unmarshal(data, &slides); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(slides) != 2 || slides[0]["slideId"] != float64(1) {
		t.Errorf("slides = %v", slides)
	}

	compact, _, err := Open(path).Indent("").JSON()
	if err != nil || bytes.Contains(compact, []byte("\n")) {
		t.Errorf("compact output = %q, %v", compact, err)
	}

	again, _, _ := Open(path).JSON()
	if !bytes.Equal(data, again) {
		t.Error("extraction must be idempotent")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Open(writeDeck(t, deckMarkup)).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "[") || !strings.HasSuffix(buf.String(), "]\n") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	warnings, err := Open(writeDeck(t, deckMarkup)).Preview(&buf, preview.DefaultOptions())
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
	// logo.png resolves against the fixture directory
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
}

// ============================================================================
// Warning Tests
// ============================================================================

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Stage: StageLayout, Message: "no slides"},
		{Stage: StageMedia, SlideID: 2, Message: "probe failed"},
	}
	want := "[layout] no slides\n[media] slide 2: probe failed"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}

func TestMust(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustDeck should panic on error")
		}
	}()
	MustDeck(Open("nonexistent.html").Deck())
}
