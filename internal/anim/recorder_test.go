package anim

import (
	"image/color"

	"github.com/iburimskiy/eyes-on-circles/internal/shape"
)

type drawnCircle struct {
	center    shape.Point
	size      float64
	colour    color.Color
	thickness float64
}

type drawnLine struct {
	from, to  shape.Point
	colour    color.Color
	thickness float64
}

// recorder is a shape.Surface that keeps every call.
type recorder struct {
	w, h    int
	fills   []color.Color
	circles []drawnCircle
	lines   []drawnLine
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Fill(c color.Color) { r.fills = append(r.fills, c) }

func (r *recorder) DrawCircle(center shape.Point, size float64, c color.Color, thickness float64) {
	r.circles = append(r.circles, drawnCircle{center, size, c, thickness})
}

func (r *recorder) DrawLine(from, to shape.Point, c color.Color, thickness float64) {
	r.lines = append(r.lines, drawnLine{from, to, c, thickness})
}
