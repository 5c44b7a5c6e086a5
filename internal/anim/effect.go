package anim

import (
	"math"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
)

const (
	EffectSawtooth  = 1
	EffectBreathing = 2
)

// Oscillator maps a line angle and the animation phase to a pseudo-radius
// in degree units; 360 reaches the outer circle.
type Oscillator interface {
	Offset(angle float64, step int) float64
	// Spacing is the angle between neighbouring lines.
	Spacing(lines int) float64
}

// sawtooth sweeps outwards linearly and snaps back to the center once per
// revolution.
type sawtooth struct{}

func (sawtooth) Offset(angle float64, step int) float64 {
	return phase(angle, step)
}

func (sawtooth) Spacing(lines int) float64 {
	return config.DegreesInRotation / float64(lines)
}

// breathing swings each circle back and forth through the center on a sine.
// A negative offset already reaches the far side, so lines cover half a turn.
type breathing struct{}

func (breathing) Offset(angle float64, step int) float64 {
	return math.Sin(radians(phase(angle, step))) * config.DegreesInRotation
}

func (breathing) Spacing(lines int) float64 {
	return config.DegreesInRotation / float64(lines) / 2
}

// EffectFor returns the oscillator for an effect number. Anything other than
// EffectSawtooth selects breathing.
func EffectFor(effect int) Oscillator {
	if effect == EffectSawtooth {
		return sawtooth{}
	}
	return breathing{}
}

// ComputeInnerOffset is the pseudo-radius of the inner circle on the line at
// angle for the given phase and effect.
func ComputeInnerOffset(angle float64, step, effect int) float64 {
	return EffectFor(effect).Offset(angle, step)
}

func phase(angle float64, step int) float64 {
	return math.Mod(angle+float64(step), config.DegreesInRotation)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
