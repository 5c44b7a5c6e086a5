package input

import "github.com/iburimskiy/eyes-on-circles/internal/anim"

// Event is a discrete user request delivered by a poll.
type Event int

const (
	LinesUp Event = iota
	LinesDown
	EffectUp
	EffectDown
	ToggleColour
	ToggleHUD
	Quit
)

func (e Event) String() string {
	switch e {
	case LinesUp:
		return "lines-up"
	case LinesDown:
		return "lines-down"
	case EffectUp:
		return "effect-up"
	case EffectDown:
		return "effect-down"
	case ToggleColour:
		return "toggle-colour"
	case ToggleHUD:
		return "toggle-hud"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Apply mutates st with events in order. It stops at the first Quit and
// reports true; events queued after it are dropped.
func Apply(st *anim.State, events []Event) (quit bool) {
	for _, e := range events {
		switch e {
		case LinesUp:
			st.MoreLines()
		case LinesDown:
			st.FewerLines()
		case EffectUp:
			st.NextEffect()
		case EffectDown:
			st.PrevEffect()
		case ToggleColour:
			st.ToggleColour()
		case ToggleHUD:
			st.ToggleHUD()
		case Quit:
			return true
		}
	}
	return false
}
