// Package life implements Conway's Game of Life on a bounded plane.
package life

import (
	"fmt"

	"golife/internal/core"
)

// Next returns the state of a cell in the following generation given its
// current state and the number of live neighbors.
func Next(c core.Cell, neighbors int) core.Cell {
	if neighbors == 3 || (c == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

// Step returns a new grid holding the generation after g. g is not modified.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Width(), g.Height())
	StepInto(next, g)
	return next
}

// StepInto writes the generation after src into dst. Every cell is computed
// from src alone, so dst must be a different grid of the same size.
func StepInto(dst, src *core.Grid) {
	if dst == src {
		panic("life: StepInto requires distinct buffers")
	}
	if dst.Size() != src.Size() {
		panic(fmt.Sprintf("life: cannot step %dx%d grid into %dx%d", src.Width(), src.Height(), dst.Width(), dst.Height()))
	}
	w, h := src.Width(), src.Height()
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = Next(cur[idx], src.AliveNeighbors(x, y))
		}
	}
}
