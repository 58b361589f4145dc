package render

import "golife/internal/core"

// Viewport places a grid on screen: each cell is Scale pixels square and the
// top-left cell starts at (OriginX, OriginY).
type Viewport struct {
	Board   core.Size
	Scale   int
	OriginX int
	OriginY int
}

// Bounds returns the board area in screen pixels.
func (v Viewport) Bounds() (x0, y0, x1, y1 int) {
	s := v.scale()
	return v.OriginX, v.OriginY, v.OriginX + v.Board.W*s, v.OriginY + v.Board.H*s
}

// CellAt resolves a screen position to grid coordinates. ok is false for
// positions outside the board.
func (v Viewport) CellAt(px, py int) (x, y int, ok bool) {
	x0, y0, x1, y1 := v.Bounds()
	if px < x0 || py < y0 || px >= x1 || py >= y1 {
		return 0, 0, false
	}
	s := v.scale()
	return (px - x0) / s, (py - y0) / s, true
}

// CellOrigin returns the screen position of the top-left pixel of a cell.
func (v Viewport) CellOrigin(x, y int) (int, int) {
	s := v.scale()
	return v.OriginX + x*s, v.OriginY + y*s
}

func (v Viewport) scale() int {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// FitScale picks the largest cell size not above preferred that keeps the
// board within maxW x maxH pixels. It never returns less than 1.
func FitScale(board core.Size, preferred, maxW, maxH int) int {
	scale := max(1, preferred)
	if board.W > 0 && maxW > 0 {
		scale = min(scale, maxW/board.W)
	}
	if board.H > 0 && maxH > 0 {
		scale = min(scale, maxH/board.H)
	}
	return max(1, scale)
}
