package anim

import (
	"fmt"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
	"github.com/iburimskiy/eyes-on-circles/internal/shape"
)

// State is everything that changes while the animation runs.
type State struct {
	// Outer is rebuilt from the surface size at the start of every frame.
	Outer shape.Circle

	Step   int
	Lines  int
	Effect int
	Colour bool

	// HUD shows the status line over the picture.
	HUD bool
}

func NewState() *State {
	return &State{
		Lines:  config.DefaultLines,
		Effect: config.DefaultEffect,
	}
}

// Advance moves the phase on by one degree.
func (st *State) Advance() {
	st.Step = (st.Step + 1) % config.DegreesInRotation
}

func (st *State) MoreLines() { st.Lines++ }

func (st *State) FewerLines() {
	if st.Lines > 1 {
		st.Lines--
	}
}

func (st *State) NextEffect() {
	if st.Effect < config.MaxEffect {
		st.Effect++
	}
}

func (st *State) PrevEffect() {
	if st.Effect > 1 {
		st.Effect--
	}
}

func (st *State) ToggleColour() { st.Colour = !st.Colour }

func (st *State) ToggleHUD() { st.HUD = !st.HUD }

func (st *State) String() string {
	colour := "off"
	if st.Colour {
		colour = "on"
	}
	return fmt.Sprintf("lines %d  effect %d  colour %s", st.Lines, st.Effect, colour)
}
