package model

// MediaInfo references the media shown by an image or embedded media
// element. The element's own geometry is the rendered box; the natural
// dimensions are the intrinsic size of the resource.
type MediaInfo struct {
	Src           string   `json:"src"`
	Alt           string   `json:"alt"`
	NaturalWidth  float64  `json:"naturalWidth"`
	NaturalHeight float64  `json:"naturalHeight"`
	Scaling       *Scaling `json:"scaling,omitempty"`
}

// Scaling relates the rendered box to the natural dimensions.
type Scaling struct {
	ScaleX      float64 `json:"scaleX"`
	ScaleY      float64 `json:"scaleY"`
	AspectRatio float64 `json:"aspectRatio"`
}

// HasNaturalSize reports whether intrinsic dimensions are known
func (m *MediaInfo) HasNaturalSize() bool {
	return m.NaturalWidth > 0 && m.NaturalHeight > 0
}

// ComputeScaling returns the scale factors of a rendered box against the
// natural size, or nil when the natural size is unknown.
func (m *MediaInfo) ComputeScaling(rendered BBox, precision int) *Scaling {
	if !m.HasNaturalSize() {
		return nil
	}
	return &Scaling{
		ScaleX:      RoundTo(rendered.Width/m.NaturalWidth, precisionOrDefault(precision)),
		ScaleY:      RoundTo(rendered.Height/m.NaturalHeight, precisionOrDefault(precision)),
		AspectRatio: RoundTo(m.NaturalWidth/m.NaturalHeight, precisionOrDefault(precision)),
	}
}

// ratios keep at least four decimals so integer geometry does not zero them
func precisionOrDefault(p int) int {
	if p >= 0 && p < 4 {
		return 4
	}
	return p
}
