//go:build ebiten

package render

import (
	"image/color"

	"golife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a grid into a one-pixel-per-cell image and draws it
// scaled onto the screen.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for grids of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	return &GridPainter{
		size: size,
		img:  ebiten.NewImage(size.W, size.H),
		buf:  make([]byte, 4*size.Area()),
	}
}

// Size returns the grid size the painter was built for.
func (gp *GridPainter) Size() core.Size { return gp.size }

// Blit draws g into dst through the viewport. Grids of another size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, v Viewport, on, off color.Color) {
	if g == nil || g.Size() != gp.size {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale()), float64(v.scale()))
	op.GeoM.Translate(float64(v.OriginX), float64(v.OriginY))
	dst.DrawImage(gp.img, op)
}

// Dispose releases the GPU image.
func (gp *GridPainter) Dispose() {
	if gp.img != nil {
		gp.img.Dispose()
		gp.img = nil
	}
}
