package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/slidelayout/model"
)

// ParseLength parses an absolute length in px (or unitless number) and
// returns it in pixels. pt lengths are converted at 96 dpi.
func ParseLength(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	factor := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSuffix(s, "pt")
		factor = 96.0 / 72.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v * factor, true
}

// ParseBorderWidth parses a border width, including the thin/medium/thick
// keywords.
func ParseBorderWidth(s string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return 1, true
	case "medium":
		return 3, true
	case "thick":
		return 5, true
	}
	return ParseLength(s)
}

// ParseZIndex parses a z-index value. "auto" and unparsable values are 0.
func ParseZIndex(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseOpacity parses an opacity value. Empty input is fully opaque.
func ParseOpacity(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 1
		}
		return v / 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return v
}

// ParseTransform folds a transform value into one affine matrix. "none" and
// the empty string yield the identity. The boolean is false when any
// function cannot be interpreted.
func ParseTransform(s string) (model.Matrix, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return model.Identity(), true
	}

	m := model.Identity()
	for _, fn := range Tokens(s) {
		name, args, ok := splitFunction(fn)
		if !ok {
			return model.Identity(), false
		}
		step, ok := transformFunction(name, args)
		if !ok {
			return model.Identity(), false
		}
		m = m.Multiply(step)
	}
	return m, true
}

func transformFunction(name string, args []string) (model.Matrix, bool) {
	nums := func(parse func(string) (float64, bool)) ([]float64, bool) {
		out := make([]float64, len(args))
		for i, a := range args {
			v, ok := parse(a)
			if !ok {
				return nil, false
			}
			out[i] = v
		}
		return out, true
	}

	switch name {
	case "matrix":
		v, ok := nums(parseNumber)
		if !ok || len(v) != 6 {
			return model.Matrix{}, false
		}
		return model.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}, true
	case "matrix3d":
		v, ok := nums(parseNumber)
		if !ok || len(v) != 16 {
			return model.Matrix{}, false
		}
		return model.Matrix{v[0], v[1], v[4], v[5], v[12], v[13]}, true
	case "translate", "translate3d":
		v, ok := nums(ParseLength)
		if !ok || len(v) == 0 || len(v) > 3 {
			return model.Matrix{}, false
		}
		ty := 0.0
		if len(v) > 1 {
			ty = v[1]
		}
		return model.Translate(v[0], ty), true
	case "translatex":
		v, ok := nums(ParseLength)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Translate(v[0], 0), true
	case "translatey":
		v, ok := nums(ParseLength)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Translate(0, v[0]), true
	case "scale", "scale3d":
		v, ok := nums(parseNumber)
		if !ok || len(v) == 0 || len(v) > 3 {
			return model.Matrix{}, false
		}
		sy := v[0]
		if len(v) > 1 {
			sy = v[1]
		}
		return model.Scale(v[0], sy), true
	case "scalex":
		v, ok := nums(parseNumber)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Scale(v[0], 1), true
	case "scaley":
		v, ok := nums(parseNumber)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Scale(1, v[0]), true
	case "rotate", "rotatez":
		v, ok := nums(parseAngle)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Rotate(v[0]), true
	case "skewx":
		v, ok := nums(parseAngle)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Matrix{1, 0, math.Tan(v[0]), 1, 0, 0}, true
	case "skewy":
		v, ok := nums(parseAngle)
		if !ok || len(v) != 1 {
			return model.Matrix{}, false
		}
		return model.Matrix{1, math.Tan(v[0]), 0, 1, 0, 0}, true
	}
	return model.Matrix{}, false
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseAngle returns radians.
func parseAngle(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "deg"):
		v, ok := parseNumber(strings.TrimSuffix(s, "deg"))
		return v * math.Pi / 180, ok
	case strings.HasSuffix(s, "grad"):
		v, ok := parseNumber(strings.TrimSuffix(s, "grad"))
		return v * math.Pi / 200, ok
	case strings.HasSuffix(s, "rad"):
		return parseNumber(strings.TrimSuffix(s, "rad"))
	case strings.HasSuffix(s, "turn"):
		v, ok := parseNumber(strings.TrimSuffix(s, "turn"))
		return v * 2 * math.Pi, ok
	case s == "0":
		return 0, true
	}
	return 0, false
}

// Tokens splits a value on whitespace, keeping parenthesised function
// arguments together: "1px solid rgb(0, 0, 0)" yields three tokens.
func Tokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
			cur.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			cur.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
