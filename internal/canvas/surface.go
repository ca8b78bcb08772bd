package canvas

import "image/color"

// Point is a position in surface-local coordinates.
type Point struct {
	X, Y float64
}

// Cubic is one cubic bezier segment continuing from the current point.
type Cubic struct {
	C1, C2, To Point
}

// Surface is a 2D immediate-mode drawing context sized to the viewport.
type Surface interface {
	Size() (width, height float64)
	Resize(width, height int)

	ClearRect(x, y, width, height float64)

	Save()
	Restore()
	Translate(x, y float64)
	// Rotate rotates the local frame by theta radians.
	Rotate(theta float64)
	SetGlobalAlpha(alpha float64)
	SetFillColor(c color.Color)

	FillBezier(start Point, curves ...Cubic)
	FillRect(x, y, width, height float64)
}
