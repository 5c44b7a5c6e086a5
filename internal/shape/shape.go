package shape

import "image/color"

// Point is a position in surface pixel space.
type Point struct {
	X, Y float64
}

// Add returns p offset by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Surface is the drawing target a frame is rendered onto.
// A thickness of 0 asks for a filled shape.
type Surface interface {
	Size() (width, height int)
	Fill(c color.Color)
	DrawCircle(center Point, size float64, c color.Color, thickness float64)
	DrawLine(from, to Point, c color.Color, thickness float64)
}

// Circle is a center and a diameter. The diameter is the size handed to the
// surface's circle call, so backends that take a radius draw it as one.
type Circle struct {
	Center   Point
	Diameter float64
}

// Draw issues a single circle draw on s. Non-positive diameters draw nothing.
func (c Circle) Draw(s Surface, col color.Color, thickness float64) {
	if c.Diameter <= 0 {
		return
	}
	s.DrawCircle(c.Center, c.Diameter, col, thickness)
}
