package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB colour with alpha.
type Color struct {
	colorful.Color
	Alpha float64
}

// Transparent is fully transparent black, the value browsers report for an
// unset background.
var Transparent = Color{Alpha: 0}

// IsTransparent reports whether the colour has zero alpha.
func (c Color) IsTransparent() bool {
	return c.Alpha <= 0
}

// String formats the colour the way getComputedStyle does.
func (c Color) String() string {
	r, g, b := c.Clamped().RGB255()
	if c.Alpha >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

// ParseColor parses hex, rgb(), rgba(), hsl(), hsla() and named colours.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, false
	}
	if s == "transparent" {
		return Transparent, true
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	name, args, ok := splitFunction(s)
	if !ok {
		return Color{}, false
	}
	switch name {
	case "rgb", "rgba":
		return parseRGBArgs(args)
	case "hsl", "hsla":
		return parseHSLArgs(args)
	}
	return Color{}, false
}

// IsTransparent reports whether a colour value is empty or has zero alpha.
// Unrecognised keywords such as currentcolor count as painted.
func IsTransparent(s string) bool {
	c, ok := ParseColor(s)
	if !ok {
		return strings.TrimSpace(s) == ""
	}
	return c.IsTransparent()
}

// NormalizeColor rewrites a colour into rgb()/rgba() form. Values that do not
// parse are returned unchanged.
func NormalizeColor(s string) string {
	c, ok := ParseColor(s)
	if !ok {
		return s
	}
	return c.String()
}

func parseHex(s string) (Color, bool) {
	alpha := 1.0
	switch len(s) {
	case 5: // #rgba
		a, err := strconv.ParseUint(strings.Repeat(s[4:5], 2), 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = float64(a) / 255
		s = s[:4]
	case 9: // #rrggbbaa
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{Color: c, Alpha: roundAlpha(alpha)}, true
}

func parseRGBArgs(args []string) (Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, ok := parseChannel(args[i], 255)
		if !ok {
			return Color{}, false
		}
		ch[i] = v / 255
	}
	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseChannel(args[3], 1)
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, Alpha: alpha}, true
}

func parseHSLArgs(args []string) (Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, false
	}
	sat, ok1 := parseChannel(args[1], 1)
	light, ok2 := parseChannel(args[2], 1)
	if !ok1 || !ok2 {
		return Color{}, false
	}
	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseChannel(args[3], 1)
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	return Color{Color: colorful.Hsl(h, sat, light), Alpha: alpha}, true
}

// parseChannel parses a number or percentage scaled to max.
func parseChannel(s string, max float64) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clamp(v/100*max, 0, max), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp(v, 0, max), true
}

// splitFunction splits "name(a, b c / d)" into its name and arguments.
func splitFunction(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(s[:open])
	body := s[open+1 : len(s)-1]
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	return name, strings.Fields(body), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundAlpha(a float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(a, 'f', 3, 64), 64)
	return v
}

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"purple":  "#800080",
	"teal":    "#008080",
	"navy":    "#000080",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
	"tomato":  "#ff6347",
	"crimson": "#dc143c",
	"khaki":   "#f0e68c",
	"beige":   "#f5f5dc",
	"ivory":   "#fffff0",
	"tan":     "#d2b48c",
	"plum":    "#dda0dd",
	"orchid":  "#da70d6",

	"darkgray":      "#a9a9a9",
	"darkgrey":      "#a9a9a9",
	"lightgray":     "#d3d3d3",
	"lightgrey":     "#d3d3d3",
	"dimgray":       "#696969",
	"gainsboro":     "#dcdcdc",
	"whitesmoke":    "#f5f5f5",
	"darkblue":      "#00008b",
	"darkred":       "#8b0000",
	"darkgreen":     "#006400",
	"lightblue":     "#add8e6",
	"lightgreen":    "#90ee90",
	"skyblue":       "#87ceeb",
	"steelblue":     "#4682b4",
	"royalblue":     "#4169e1",
	"slategray":     "#708090",
	"midnightblue":  "#191970",
	"forestgreen":   "#228b22",
	"seagreen":      "#2e8b57",
	"firebrick":     "#b22222",
	"chocolate":     "#d2691e",
	"goldenrod":     "#daa520",
	"lavender":      "#e6e6fa",
	"turquoise":     "#40e0d0",
	"rebeccapurple": "#663399",
}
