package css

import (
	"strconv"
	"strings"
)

// Declaration is one property: value pair from a style attribute.
type Declaration struct {
	Property string
	Value    string
}

// Sides lists box sides in CSS shorthand order.
var Sides = [4]string{"top", "right", "bottom", "left"}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "solid": true, "dashed": true, "dotted": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// ParseDeclarations parses an inline style attribute. Property names are
// lower-cased except custom properties, which keep their case.
// "!important" markers are dropped.
func ParseDeclarations(style string) []Declaration {
	var decls []Declaration
	for _, part := range splitOutsideParens(style, ';') {
		colon := strings.IndexByte(part, ':')
		if colon <= 0 {
			continue
		}
		prop := strings.TrimSpace(part[:colon])
		value := strings.TrimSpace(part[colon+1:])
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		if prop == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(prop, "--") {
			prop = strings.ToLower(prop)
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	return decls
}

// Expand rewrites shorthand declarations into their longhand properties.
// Unknown properties are passed through unchanged. Later declarations win.
func Expand(decls []Declaration) map[string]string {
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		for k, v := range ExpandDeclaration(d.Property, d.Value) {
			out[k] = v
		}
	}
	return out
}

// ExpandDeclaration expands one declaration.
func ExpandDeclaration(prop, value string) map[string]string {
	switch prop {
	case "background":
		return map[string]string{"background-color": backgroundColor(value)}
	case "border":
		out := make(map[string]string, 12)
		for _, side := range Sides {
			for k, v := range expandBorderSide(side, value) {
				out[k] = v
			}
		}
		return out
	case "border-top", "border-right", "border-bottom", "border-left":
		return expandBorderSide(strings.TrimPrefix(prop, "border-"), value)
	case "border-width", "border-style", "border-color":
		part := strings.TrimPrefix(prop, "border-")
		out := make(map[string]string, 4)
		for i, v := range expandBox(value) {
			out["border-"+Sides[i]+"-"+part] = normalizeBorderPart(part, v)
		}
		return out
	case "margin", "padding":
		out := make(map[string]string, 4)
		for i, v := range expandBox(value) {
			out[prop+"-"+Sides[i]] = v
		}
		return out
	case "list-style":
		return expandListStyle(value)
	case "overflow":
		t := Tokens(value)
		x, y := value, value
		if len(t) == 2 {
			x, y = t[0], t[1]
		}
		return map[string]string{"overflow": value, "overflow-x": x, "overflow-y": y}
	}
	if strings.HasSuffix(prop, "color") {
		return map[string]string{prop: NormalizeColor(value)}
	}
	return map[string]string{prop: value}
}

func backgroundColor(value string) string {
	for _, tok := range Tokens(value) {
		if c, ok := ParseColor(tok); ok {
			return c.String()
		}
	}
	return Transparent.String()
}

func expandBorderSide(side, value string) map[string]string {
	width, style, color := "medium", "none", ""
	for _, tok := range Tokens(value) {
		switch {
		case borderStyles[strings.ToLower(tok)]:
			style = strings.ToLower(tok)
		case isBorderWidth(tok):
			width = tok
		default:
			if c, ok := ParseColor(tok); ok {
				color = c.String()
			}
		}
	}
	prefix := "border-" + side + "-"
	out := map[string]string{
		prefix + "width": normalizeBorderPart("width", width),
		prefix + "style": style,
	}
	if color != "" {
		out[prefix+"color"] = color
	}
	return out
}

func isBorderWidth(tok string) bool {
	_, ok := ParseBorderWidth(tok)
	return ok
}

// normalizeBorderPart formats widths as px the way computed styles do.
func normalizeBorderPart(part, v string) string {
	switch part {
	case "width":
		if px, ok := ParseBorderWidth(v); ok {
			return FormatPx(px)
		}
	case "color":
		return NormalizeColor(v)
	}
	return v
}

func expandListStyle(value string) map[string]string {
	out := make(map[string]string, 2)
	for _, tok := range Tokens(value) {
		switch strings.ToLower(tok) {
		case "inside", "outside":
			out["list-style-position"] = strings.ToLower(tok)
		default:
			if strings.HasPrefix(tok, "url(") {
				out["list-style-image"] = tok
			} else {
				out["list-style-type"] = tok
			}
		}
	}
	return out
}

// expandBox applies the 1-4 value box shorthand rule.
func expandBox(value string) [4]string {
	t := Tokens(value)
	switch len(t) {
	case 1:
		return [4]string{t[0], t[0], t[0], t[0]}
	case 2:
		return [4]string{t[0], t[1], t[0], t[1]}
	case 3:
		return [4]string{t[0], t[1], t[2], t[1]}
	case 4:
		return [4]string{t[0], t[1], t[2], t[3]}
	}
	return [4]string{"0px", "0px", "0px", "0px"}
}

// JoinBox collapses four side values into the shortest shorthand.
func JoinBox(top, right, bottom, left string) string {
	switch {
	case top == right && right == bottom && bottom == left:
		return top
	case top == bottom && right == left:
		return top + " " + right
	case right == left:
		return top + " " + right + " " + bottom
	}
	return top + " " + right + " " + bottom + " " + left
}

// FormatPx formats a pixel length without trailing zeros.
func FormatPx(v float64) string {
	return formatFloat(v) + "px"
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitOutsideParens(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
