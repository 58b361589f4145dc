package core

import "fmt"

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c == Alive }

// Grid stores a bounded 2D plane of cells in row-major order. Its dimensions
// are fixed at construction; only cell contents change.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// GridFrom wraps an existing row-major buffer. It panics when the buffer
// length does not match w*h.
func GridFrom(w, h int, cells []Cell) *Grid {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		panic(fmt.Sprintf("core: buffer of %d cells cannot back a %dx%d grid", len(cells), w, h))
	}
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the row-major backing slice. Callers outside the simulation
// must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At returns the cell at (x, y). It panics for out-of-range coordinates.
func (g *Grid) At(x, y int) Cell {
	g.mustContain(x, y)
	return g.cells[g.Index(x, y)]
}

// Set stores c at (x, y). It panics for out-of-range coordinates.
func (g *Grid) Set(x, y int, c Cell) {
	g.mustContain(x, y)
	g.cells[g.Index(x, y)] = c
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) Cell {
	g.mustContain(x, y)
	idx := g.Index(x, y)
	g.cells[idx] ^= Alive
	return g.cells[idx]
}

// AliveNeighbors counts live cells in the Moore neighborhood of (x, y).
// Positions past the edge are not counted; the plane does not wrap.
func (g *Grid) AliveNeighbors(x, y int) int {
	g.mustContain(x, y)
	minX, maxX := max(0, x-1), min(g.w-1, x+1)
	minY, maxY := max(0, y-1), min(g.h-1, y+1)
	n := 0
	for ny := minY; ny <= maxY; ny++ {
		row := g.cells[ny*g.w : (ny+1)*g.w]
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			n += int(row[nx])
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
}
