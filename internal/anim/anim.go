package anim

import (
	"math"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
	"github.com/iburimskiy/eyes-on-circles/internal/shape"
)

// frame holds what is derived once per rendered frame.
type frame struct {
	st      *State
	s       shape.Surface
	osc     Oscillator
	spacing float64
}

// Render draws one frame of st onto s and advances the phase.
func Render(st *State, s shape.Surface) {
	osc := EffectFor(st.Effect)
	f := &frame{st: st, s: s, osc: osc, spacing: osc.Spacing(st.Lines)}

	s.Fill(config.Background)

	f.drawOuterCircle()
	f.drawRadialLines()
	f.drawInnerCircles()
}

func (f *frame) drawOuterCircle() {
	w, h := f.s.Size()
	f.st.Outer = shape.Circle{
		Center:   shape.Point{X: float64(w / 2), Y: float64(h / 2)},
		Diameter: float64(min(w, h)/2 - config.WindowMargin),
	}
	f.st.Outer.Draw(f.s, config.Foreground, config.OuterCircleThickness)
}

// drawRadialLine spans the outer circle through its center.
func (f *frame) drawRadialLine(angle float64) {
	dx, dy := polar(angle, f.st.Outer.Diameter)
	c := f.st.Outer.Center
	f.s.DrawLine(c.Add(-dx, -dy), c.Add(dx, dy), config.LineColour, config.LineThickness)
}

func (f *frame) drawRadialLines() {
	for i := 0; i < f.st.Lines; i++ {
		f.drawRadialLine(float64(i) * f.spacing)
	}
}

func (f *frame) drawInnerCircleAt(angle, offset float64) {
	diam := f.st.Outer.Diameter / config.DegreesInRotation * offset
	dx, dy := polar(angle, diam)
	c := f.st.Outer.Center.Add(dx, dy)

	circle := shape.Circle{
		Center:   shape.Point{X: math.Trunc(c.X), Y: math.Trunc(c.Y)},
		Diameter: config.InnerCircleDiameter,
	}
	circle.Draw(f.s, innerColour(angle, f.st.Colour), config.InnerCircleThickness)
}

func (f *frame) drawInnerCircles() {
	f.st.Advance()
	for i := 0; i < f.st.Lines; i++ {
		angle := float64(i) * f.spacing
		f.drawInnerCircleAt(angle, f.osc.Offset(angle, f.st.Step))
	}
}

// polar returns the offset of length r along angle degrees, measured from
// the +y axis.
func polar(angle, r float64) (dx, dy float64) {
	rads := radians(angle)
	return math.Sin(rads) * r, math.Cos(rads) * r
}
