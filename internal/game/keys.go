package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/eyes-on-circles/internal/input"
)

var bindings = map[ebiten.Key]input.Event{
	ebiten.KeyArrowRight: input.LinesUp,
	ebiten.KeyArrowLeft:  input.LinesDown,
	ebiten.KeyArrowUp:    input.EffectUp,
	ebiten.KeyArrowDown:  input.EffectDown,
	ebiten.KeyC:          input.ToggleColour,
	ebiten.KeyH:          input.ToggleHUD,
	ebiten.KeyEscape:     input.Quit,
}

// keyboard turns key presses since the previous tick, and a request to
// close the window, into events.
type keyboard struct {
	keys []ebiten.Key
}

func (k *keyboard) Poll(dst []input.Event) []input.Event {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	dst = translate(dst, k.keys)
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, input.Quit)
	}
	return dst
}

// translate appends the event bound to each key; unbound keys are skipped.
func translate(dst []input.Event, keys []ebiten.Key) []input.Event {
	for _, key := range keys {
		if e, ok := bindings[key]; ok {
			dst = append(dst, e)
		}
	}
	return dst
}
