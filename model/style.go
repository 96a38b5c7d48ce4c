package model

// StyleVersion identifies the property set captured in a StyleRecord.
const StyleVersion = 1

// StyleRecord is a snapshot of resolved style values for one node.
// Values are kept exactly as the renderer reports them (e.g. "16px",
// "rgb(0, 0, 0)"), except BackgroundColor which holds the colour visually
// behind the node after walking transparent ancestors.
//
// A StyleRecord is a plain value; copying it never aliases the source apart
// from CustomProperties, which Clone copies explicitly.
type StyleRecord struct {
	Version int `json:"version"`

	// Typography
	FontSize       string `json:"fontSize"`
	FontFamily     string `json:"fontFamily"`
	FontWeight     string `json:"fontWeight"`
	FontStyle      string `json:"fontStyle"`
	LineHeight     string `json:"lineHeight"`
	LetterSpacing  string `json:"letterSpacing"`
	TextAlign      string `json:"textAlign"`
	TextDecoration string `json:"textDecoration"`
	WhiteSpace     string `json:"whiteSpace"`
	WordWrap       string `json:"wordWrap"`
	TextOverflow   string `json:"textOverflow"`
	Color          string `json:"color"`

	BackgroundColor string `json:"backgroundColor"`

	// Box model
	Width         string `json:"width"`
	Height        string `json:"height"`
	Padding       string `json:"padding"`
	PaddingTop    string `json:"paddingTop"`
	PaddingRight  string `json:"paddingRight"`
	PaddingBottom string `json:"paddingBottom"`
	PaddingLeft   string `json:"paddingLeft"`
	Margin        string `json:"margin"`
	MarginTop     string `json:"marginTop"`
	MarginRight   string `json:"marginRight"`
	MarginBottom  string `json:"marginBottom"`
	MarginLeft    string `json:"marginLeft"`

	// Borders
	Border            string `json:"border"`
	BorderWidth       string `json:"borderWidth"`
	BorderStyle       string `json:"borderStyle"`
	BorderColor       string `json:"borderColor"`
	BorderTopWidth    string `json:"borderTopWidth"`
	BorderTopStyle    string `json:"borderTopStyle"`
	BorderTopColor    string `json:"borderTopColor"`
	BorderRightWidth  string `json:"borderRightWidth"`
	BorderRightStyle  string `json:"borderRightStyle"`
	BorderRightColor  string `json:"borderRightColor"`
	BorderBottomWidth string `json:"borderBottomWidth"`
	BorderBottomStyle string `json:"borderBottomStyle"`
	BorderBottomColor string `json:"borderBottomColor"`
	BorderLeftWidth   string `json:"borderLeftWidth"`
	BorderLeftStyle   string `json:"borderLeftStyle"`
	BorderLeftColor   string `json:"borderLeftColor"`
	BorderRadius      string `json:"borderRadius"`

	// Positioning and effects
	Position   string `json:"position"`
	Display    string `json:"display"`
	Visibility string `json:"visibility"`
	Opacity    string `json:"opacity"`
	ZIndex     string `json:"zIndex"`
	BoxShadow  string `json:"boxShadow"`
	Transform  string `json:"transform"`
	Overflow   string `json:"overflow"`
	OverflowX  string `json:"overflowX"`
	OverflowY  string `json:"overflowY"`

	// List markers
	ListStyleType     string `json:"listStyleType"`
	ListStylePosition string `json:"listStylePosition"`
	ListStyleImage    string `json:"listStyleImage"`

	// Flex
	Flex           string `json:"flex"`
	FlexDirection  string `json:"flexDirection"`
	JustifyContent string `json:"justifyContent"`
	AlignItems     string `json:"alignItems"`
	Gap            string `json:"gap"`

	CustomProperties map[string]string `json:"customProperties,omitempty"`
}

// Clone returns a deep copy of the record.
func (s StyleRecord) Clone() StyleRecord {
	if s.CustomProperties != nil {
		props := make(map[string]string, len(s.CustomProperties))
		for k, v := range s.CustomProperties {
			props[k] = v
		}
		s.CustomProperties = props
	}
	return s
}

// IsBold returns true if the font weight is bold or heavier
func (s StyleRecord) IsBold() bool {
	switch s.FontWeight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// IsItalic returns true if the font style is italic or oblique
func (s StyleRecord) IsItalic() bool {
	return s.FontStyle == "italic" || s.FontStyle == "oblique"
}

// ListStyle describes the marker of a list.
type ListStyle struct {
	Type         string `json:"listStyleType"`
	Position     string `json:"listStylePosition"`
	PaddingLeft  string `json:"paddingLeft"`
	MarginTop    string `json:"marginTop"`
	MarginBottom string `json:"marginBottom"`
}
