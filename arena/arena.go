// Package arena describes the static walls that bound a round. Layouts come
// from Tiled maps or are built as a plain rectangle.
package arena

import "github.com/jakecoffman/cp"

// Wall is a static segment of the given thickness.
type Wall struct {
	Name      string
	A, B      cp.Vector
	Thickness float64
}

type Layout struct {
	Name   string
	Width  float64
	Height float64
	Walls  []Wall
}

// Rectangle returns four walls running along the edges of a width x height
// area.
func Rectangle(width, height, thickness float64) Layout {
	return Layout{
		Name:   "rectangle",
		Width:  width,
		Height: height,
		Walls: []Wall{
			{Name: "top", A: cp.Vector{X: 0, Y: 0}, B: cp.Vector{X: width, Y: 0}, Thickness: thickness},
			{Name: "bottom", A: cp.Vector{X: 0, Y: height}, B: cp.Vector{X: width, Y: height}, Thickness: thickness},
			{Name: "left", A: cp.Vector{X: 0, Y: 0}, B: cp.Vector{X: 0, Y: height}, Thickness: thickness},
			{Name: "right", A: cp.Vector{X: width, Y: 0}, B: cp.Vector{X: width, Y: height}, Thickness: thickness},
		},
	}
}

// Distance returns how far p is from the wall's center line.
func (w Wall) Distance(p cp.Vector) float64 {
	ab := w.B.Sub(w.A)
	lengthSq := ab.LengthSq()
	if lengthSq == 0 {
		return p.Distance(w.A)
	}
	t := min(1, max(0, p.Sub(w.A).Dot(ab)/lengthSq))
	return p.Distance(w.A.Add(ab.Mult(t)))
}

// Bounds returns the wall's axis-aligned bounding box including thickness.
func (w Wall) Bounds() (x, y, width, height float64) {
	half := w.Thickness / 2
	x = min(w.A.X, w.B.X) - half
	y = min(w.A.Y, w.B.Y) - half
	width = max(w.A.X, w.B.X) + half - x
	height = max(w.A.Y, w.B.Y) + half - y
	return x, y, width, height
}
