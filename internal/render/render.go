package render

import (
	"image/color"
	"math"
)

// Drawer is the set of primitives the icon is painted with. Coordinates are
// in canvas space: pixel (x, y) covers [x, x+1) × [y, y+1).
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillRoundedRect(r Rect, radius float64, c color.RGBA)
	StrokeLine(from, to Point, width float64, c color.RGBA)
	FillCircle(center Point, radius float64, c color.RGBA)
}

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle spanning the two corners, normalized.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Normalize()
}

// Normalize ensures Min is <= Max on both axes.
func (r Rect) Normalize() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// clampRadius limits a corner radius to half the shorter side.
func clampRadius(r Rect, radius float64) float64 {
	limit := math.Min(r.Dx(), r.Dy()) / 2
	if radius > limit {
		return limit
	}
	if radius < 0 {
		return 0
	}
	return radius
}
