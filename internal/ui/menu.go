//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"golife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Menu draws the board size entry screen.
type Menu struct {
	width, height int
}

// NewMenu returns a menu renderer for a screen of the given size.
func NewMenu(width, height int) *Menu {
	return &Menu{width: width, height: height}
}

// Draw renders the size input. A nil input draws nothing.
func (m *Menu) Draw(screen *ebiten.Image, in *session.SizeInput) {
	if in == nil {
		return
	}
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13

	text.Draw(screen, "Game of Life", face, panelPadding, 32, headerColor)
	text.Draw(screen, "Enter board size", face, panelPadding, 56, labelColor)

	fieldW := (m.width - 3*panelPadding) / 2
	for i, f := range []session.Field{session.FieldWidth, session.FieldHeight} {
		x := panelPadding + i*(fieldW+panelPadding)
		m.drawField(screen, x, 80, fieldW, f, in)
	}

	hints := []string{
		"0-9 type   - delete   <- -> switch field",
		fmt.Sprintf("enter start (empty or 0 becomes 1, max %d)", in.MaxDimension()),
		"esc quit",
	}
	y := 160
	for _, line := range hints {
		text.Draw(screen, line, face, panelPadding, y, dimColor)
		y += textLine
	}
}

func (m *Menu) drawField(screen *ebiten.Image, x, y, w int, f session.Field, in *session.SizeInput) {
	face := basicfont.Face7x13
	const h = 40

	border := color.RGBA{R: 70, G: 72, B: 84, A: 255}
	if in.Focus() == f {
		border = color.RGBA{R: 120, G: 200, B: 140, A: 255}
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), h, color.RGBA{R: 28, G: 30, B: 36, A: 255}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), h, 2, border, false)

	label := "Width"
	if f == session.FieldHeight {
		label = "Height"
	}
	text.Draw(screen, label, face, x+8, y+16, dimColor)

	value := in.Digits(f)
	if in.Focus() == f {
		value += "_"
	}
	text.Draw(screen, value, face, x+8, y+33, valueColor)
}
