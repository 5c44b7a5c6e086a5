package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/eyes-on-circles/internal/shape"
)

// offscreen renders frames into an image the size of the window.
type offscreen struct {
	img *ebiten.Image
}

func (o *offscreen) Resize(width, height int) {
	if o.img != nil {
		b := o.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		o.img.Deallocate()
	}
	o.img = ebiten.NewImage(width, height)
}

func (o *offscreen) Present(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}

func (o *offscreen) Size() (int, int) {
	b := o.img.Bounds()
	return b.Dx(), b.Dy()
}

func (o *offscreen) Fill(c color.Color) {
	o.img.Fill(c)
}

// DrawCircle treats size as the radius.
func (o *offscreen) DrawCircle(center shape.Point, size float64, c color.Color, thickness float64) {
	if thickness == 0 {
		vector.DrawFilledCircle(o.img, float32(center.X), float32(center.Y), float32(size), c, true)
		return
	}
	vector.StrokeCircle(o.img, float32(center.X), float32(center.Y), float32(size), float32(thickness), c, true)
}

func (o *offscreen) DrawLine(from, to shape.Point, c color.Color, thickness float64) {
	vector.StrokeLine(o.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(thickness), c, true)
}
