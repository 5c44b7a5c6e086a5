package anim

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
)

func TestInnerColourFixed(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 270} {
		if got := innerColour(angle, false); got != config.InnerColour {
			t.Errorf("innerColour(%v, false) = %v, want accent", angle, got)
		}
	}
}

func TestInnerColourCycling(t *testing.T) {
	tests := []struct {
		angle float64
		want  color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{90, color.RGBA{G: 255, B: 255, A: 255}},
		// hue 30: the green channel is 127.5 before conversion and rounds up
		{15, color.RGBA{R: 255, G: 128, A: 255}},
		// angle/180 wraps, so the hue repeats every half turn
		{180, color.RGBA{R: 255, A: 255}},
		{270, color.RGBA{G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := innerColour(tt.angle, true); got != tt.want {
			t.Errorf("innerColour(%v, true) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestToggleColourTwiceRestores(t *testing.T) {
	st := NewState()
	st.Step = 42
	before := innerColour(30, st.Colour)
	st.ToggleColour()
	if innerColour(30, st.Colour) == before {
		t.Fatal("colour mode did not change the draw colour")
	}
	st.ToggleColour()
	if got := innerColour(30, st.Colour); got != before {
		t.Errorf("colour after two toggles = %v, want %v", got, before)
	}
}
