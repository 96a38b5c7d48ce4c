package model

import "math"

// BBox represents a bounding box in slide coordinates. The origin is the
// slide's top-left corner and Y grows downward.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Within reports whether b lies entirely inside the rectangle
// [0, width] x [0, height].
func (b BBox) Within(width, height float64) bool {
	const eps = 1e-9
	return b.X >= 0 && b.Y >= 0 &&
		b.Right() <= width+eps && b.Bottom() <= height+eps
}

// Round rounds every component to the given number of decimal places.
// A negative precision leaves the box untouched.
func (b BBox) Round(precision int) BBox {
	if precision < 0 {
		return b
	}
	return BBox{
		X:      RoundTo(b.X, precision),
		Y:      RoundTo(b.Y, precision),
		Width:  RoundTo(b.Width, precision),
		Height: RoundTo(b.Height, precision),
	}
}

// RoundTo rounds v to precision decimal places. Negative precision returns v.
func RoundTo(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

// Matrix represents a 2D affine transformation matrix in CSS order
// matrix(a, b, c, d, e, f).
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Multiply returns m followed by other, i.e. the CSS composition
// "transform: m other" applied to a point.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// ScaleX returns the horizontal scale component (a)
func (m Matrix) ScaleX() float64 { return m[0] }

// ScaleY returns the vertical scale component (d)
func (m Matrix) ScaleY() float64 { return m[3] }

// Translation returns the translation components (e, f)
func (m Matrix) Translation() (float64, float64) { return m[4], m[5] }

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
