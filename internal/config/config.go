package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 500
	WindowHeight = 500
	WindowTitle  = "Keep your eyes on the circles ..."

	// Frame cadence
	FrameInterval  = 20 * time.Millisecond
	TicksPerSecond = int(time.Second / FrameInterval)

	// Animation parameters
	DefaultLines      = 12
	DefaultEffect     = 2
	MaxEffect         = 2
	DegreesInRotation = 360

	// Geometry
	WindowMargin         = 5
	OuterCircleThickness = 2
	LineThickness        = 1
	InnerCircleDiameter  = 10
	InnerCircleThickness = 2

	// Status text position
	HUDX = 8
	HUDY = 8
)

var (
	Background  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Foreground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LineColour  = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	InnerColour = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)
