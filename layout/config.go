package layout

// ClusterMode selects how a cluster container is split into elements.
type ClusterMode int

const (
	// ClusterPair extracts the first image and the first label of the
	// container (logo + company name).
	ClusterPair ClusterMode = iota
	// ClusterAll extracts every direct image and label child (footers).
	ClusterAll
)

// String returns a string representation of the cluster mode
func (m ClusterMode) String() string {
	if m == ClusterAll {
		return "all"
	}
	return "pair"
}

// ClusterRule marks containers carrying Class as composite clusters.
type ClusterRule struct {
	Class string
	Mode  ClusterMode
}

// Config holds configuration for slide extraction.
type Config struct {
	// SlideClass is the class that marks slide root containers.
	SlideClass string

	// RowTolerance is the maximum top-edge difference, in pixels, for two
	// elements to be ordered as the same visual row.
	// Default: 5
	RowTolerance float64

	// Precision is the number of decimal places kept in geometry. -1 keeps
	// full precision, 0 rounds to whole pixels.
	// Default: 2
	Precision int

	// MinExtent is the smallest width/height an element box is clamped to.
	// Default: 0.1
	MinExtent float64

	// ClipToSlide clips element boxes to the slide's bounds.
	ClipToSlide bool

	// Clusters lists the composite cluster containers.
	Clusters []ClusterRule

	// FooterClass marks footer containers; their descendants take the
	// settled box and are always relevant.
	FooterClass string

	// FlexGroupClasses are flex wrappers whose own box is read after layout.
	FlexGroupClasses []string

	// GroupTags are the block containers eligible for inline run grouping.
	GroupTags []string

	// MaxListDepth bounds nested list recursion.
	MaxListDepth int

	// TextPrefixLength is the number of characters of text that take part
	// in an element's identity key.
	TextPrefixLength int

	// KeepEmptyFlexItems keeps flex containers and flex children that have
	// no text and no visual styling.
	KeepEmptyFlexItems bool
}

// DefaultConfig returns a configuration matching the common slide markup
// conventions: .slide roots, .company logo/name pairs and a .footer strip.
func DefaultConfig() Config {
	return Config{
		SlideClass:   "slide",
		RowTolerance: 5,
		Precision:    2,
		MinExtent:    0.1,
		ClipToSlide:  true,
		Clusters: []ClusterRule{
			{Class: "company", Mode: ClusterPair},
			{Class: "footer", Mode: ClusterAll},
		},
		FooterClass:        "footer",
		FlexGroupClasses:   []string{"companies"},
		GroupTags:          []string{"p", "div", "li", "td", "th"},
		MaxListDepth:       16,
		TextPrefixLength:   50,
		KeepEmptyFlexItems: true,
	}
}

// clusterRule returns the rule matching one of the classes, or nil.
func (c *Config) clusterRule(classes []string) *ClusterRule {
	for i := range c.Clusters {
		for _, cl := range classes {
			if cl == c.Clusters[i].Class {
				return &c.Clusters[i]
			}
		}
	}
	return nil
}

func (c *Config) isGroupTag(tag string) bool {
	for _, t := range c.GroupTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (c *Config) hasFlexGroupClass(classes []string) bool {
	for _, g := range c.FlexGroupClasses {
		for _, cl := range classes {
			if cl == g {
				return true
			}
		}
	}
	return false
}
