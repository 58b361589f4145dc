//go:build ebiten

package ui

import (
	"image/color"

	"golife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// minGridScale is the smallest cell size that still gets grid lines.
const minGridScale = 6

// Overlay draws optional visuals on top of the board: grid lines and, while
// paused, an outline around the cell under the cursor.
type Overlay struct {
	showGrid bool

	hoverX, hoverY int
	hover          bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{showGrid: true}
}

// Update tracks the hovered cell and toggles grid lines on G.
func (o *Overlay) Update(v render.Viewport, mx, my int, paused bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.hover = false
	if !paused {
		return
	}
	o.hoverX, o.hoverY, o.hover = v.CellAt(mx, my)
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, v render.Viewport) {
	if o.showGrid && v.Scale >= minGridScale {
		o.drawGrid(screen, v)
	}
	if o.hover {
		x, y := v.CellOrigin(o.hoverX, o.hoverY)
		vector.StrokeRect(screen, float32(x), float32(y), float32(v.Scale), float32(v.Scale), 1,
			color.RGBA{R: 120, G: 200, B: 140, A: 255}, false)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, v render.Viewport) {
	x0, y0, x1, y1 := v.Bounds()
	c := color.RGBA{R: 255, G: 255, B: 255, A: 18}
	for x := x0; x <= x1; x += v.Scale {
		vector.StrokeLine(screen, float32(x), float32(y0), float32(x), float32(y1), 1, c, false)
	}
	for y := y0; y <= y1; y += v.Scale {
		vector.StrokeLine(screen, float32(x0), float32(y), float32(x1), float32(y), 1, c, false)
	}
}
