package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/eyes-on-circles/internal/anim"
	"github.com/iburimskiy/eyes-on-circles/internal/config"
	"github.com/iburimskiy/eyes-on-circles/internal/input"
	"github.com/iburimskiy/eyes-on-circles/internal/shape"
)

// EventSource drains the input events queued since the last poll.
type EventSource interface {
	Poll(dst []input.Event) []input.Event
}

// frameBuffer is where a tick renders its frame before Draw shows it.
type frameBuffer interface {
	shape.Surface
	Resize(width, height int)
	Present(screen *ebiten.Image)
}

// Game runs the animation under ebiten. Every tick applies pending input and
// then renders exactly one frame, so the picture advances at the tick rate
// whatever the display refresh rate is.
type Game struct {
	state  *anim.State
	source EventSource
	frame  frameBuffer
	events []input.Event

	width, height int
	quit          bool
}

func New() *Game {
	return newGame(&keyboard{}, &offscreen{})
}

func newGame(src EventSource, fb frameBuffer) *Game {
	return &Game{
		state:  anim.NewState(),
		source: src,
		frame:  fb,
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.events = g.source.Poll(g.events[:0])
	if input.Apply(g.state, g.events) {
		g.quit = true
		return ebiten.Termination
	}

	g.frame.Resize(g.width, g.height)
	anim.Render(g.state, g.frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.quit {
		return
	}
	g.frame.Present(screen)

	if g.state.HUD {
		ebitenutil.DebugPrintAt(screen, g.state.String(), config.HUDX, config.HUDY)
	}
}

// Layout keeps the logical screen the size of the window so the outer circle
// follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
