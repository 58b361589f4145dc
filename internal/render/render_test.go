package render

import (
	"image/color"
	"slices"
	"testing"

	"golife/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []core.Cell{core.Alive, core.Dead}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.RGBA{A: 255})
	want := []byte{10, 20, 30, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("unexpected pixels %v, expected %v", buf, want)
	}
}

func TestViewportCellAt(t *testing.T) {
	v := Viewport{Board: core.Size{W: 4, H: 3}, Scale: 10, OriginX: 5, OriginY: 20}
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{5, 20, 0, 0, true},
		{14, 29, 0, 0, true},
		{15, 20, 1, 0, true},
		{44, 49, 3, 2, true},
		{45, 20, 0, 0, false},
		{5, 50, 0, 0, false},
		{4, 25, 0, 0, false},
		{10, 19, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := v.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
	if x, y := v.CellOrigin(3, 2); x != 35 || y != 40 {
		t.Fatalf("CellOrigin(3,2) = (%d,%d), expected (35,40)", x, y)
	}
}

func TestViewportZeroScale(t *testing.T) {
	v := Viewport{Board: core.Size{W: 2, H: 2}}
	if x, y, ok := v.CellAt(1, 1); !ok || x != 1 || y != 1 {
		t.Fatalf("zero scale must act as 1, got (%d,%d,%v)", x, y, ok)
	}
}

func TestFitScale(t *testing.T) {
	cases := []struct {
		board     core.Size
		preferred int
		want      int
	}{
		{core.Size{W: 10, H: 10}, 16, 16},
		{core.Size{W: 100, H: 50}, 16, 9},
		{core.Size{W: 512, H: 512}, 16, 1},
		{core.Size{W: 4000, H: 1}, 16, 1},
		{core.Size{W: 3, H: 3}, 0, 1},
	}
	for _, tc := range cases {
		if got := FitScale(tc.board, tc.preferred, 960, 720); got != tc.want {
			t.Fatalf("FitScale(%+v, %d) = %d, expected %d", tc.board, tc.preferred, got, tc.want)
		}
	}
}
