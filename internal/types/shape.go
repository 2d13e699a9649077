// Package types holds all shared data structures (records) used across
// the application. Keeping them in one place prevents import cycles —
// the exercises, codecs, and storage can all import types without
// depending on each other.
package types

import "fmt"

// Shape is implemented by every record that can report its own area
// and perimeter.
//
// Go interfaces are satisfied implicitly: Rectangle and Square never
// mention Shape, they simply have the right methods.
type Shape interface {
	Area() uint32
	Perimeter() uint32
	WhoAmI() string
}

// Rectangle is an axis-aligned rectangle. Dimensions are unsigned, so
// a negative width or height cannot be constructed.
type Rectangle struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// WhoAmI introduces the shape kind.
func (Rectangle) WhoAmI() string { return "I am a rectangle" }

// Area returns width × height. Like all shape arithmetic here it is
// uint32 and wraps on overflow.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// Perimeter returns 2 × (width + height).
func (r Rectangle) Perimeter() uint32 {
	return 2 * (r.Width + r.Height)
}

// Square is a rectangle with all four sides equal.
type Square struct {
	Side uint32 `json:"side"`
}

func (Square) WhoAmI() string { return "I am a square" }

func (s Square) Area() uint32 {
	return s.Side * s.Side
}

func (s Square) Perimeter() uint32 {
	return 4 * s.Side
}

// ─────────────────────────────────────────────────────────────────────────────
// Describe returns the lines printed for a shape in the shapes exercise:
//
//	I am a rectangle
//	the area of the rectangle is 200
//	the perimeter of the rectangle is 60
//
// The noun comes from the concrete type. A type switch is Go's way of
// branching on the dynamic type stored inside an interface value.
// ─────────────────────────────────────────────────────────────────────────────
func Describe(s Shape) []string {
	var noun string
	switch s.(type) {
	case Rectangle, *Rectangle:
		noun = "rectangle"
	case Square, *Square:
		noun = "square"
	default:
		noun = "shape"
	}

	return []string{
		s.WhoAmI(),
		fmt.Sprintf("the area of the %s is %d", noun, s.Area()),
		fmt.Sprintf("the perimeter of the %s is %d", noun, s.Perimeter()),
	}
}
