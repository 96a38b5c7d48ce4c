package model

// Position is a slide's offset within the full document.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slide is one slide container with its elements in paint order.
type Slide struct {
	SlideID  int         `json:"slideId"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Position Position    `json:"position"`
	Style    StyleRecord `json:"style"`
	Elements []Element   `json:"elements"`
}

// ElementCount returns the number of elements on the slide
func (s *Slide) ElementCount() int {
	return len(s.Elements)
}

// CountByKind returns element counts keyed by kind.
func (s *Slide) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range s.Elements {
		counts[s.Elements[i].Kind]++
	}
	return counts
}

// Deck is the extraction result: an ordered sequence of slides. It
// serialises as a top-level JSON array.
type Deck []Slide

// ElementCount returns the total element count across slides
func (d Deck) ElementCount() int {
	n := 0
	for i := range d {
		n += len(d[i].Elements)
	}
	return n
}

// Validate checks every element's content-mode invariant.
func (d Deck) Validate() error {
	for i := range d {
		for j := range d[i].Elements {
			if err := d[i].Elements[j].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
