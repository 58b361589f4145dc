//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/session"
	"golife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth   = 220
	maxBoardW  = 960
	maxBoardH  = 720
	menuWidth  = 480
	menuHeight = 220
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	session *session.Session

	painter *render.GridPainter
	view    render.Viewport
	hud     *ui.HUD
	menu    *ui.Menu
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	frame   time.Duration
	rawKeys []ebiten.Key
	keys    []session.Key
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config) *Game {
	g := &Game{
		cfg:      cfg,
		session:  s,
		hud:      ui.NewHUD(s, hudWidth),
		menu:     ui.NewMenu(menuWidth, menuHeight),
		overlay:  ui.NewOverlay(),
		onColor:  color.RGBA{R: 240, G: 240, B: 220, A: 255},
		offColor: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		frame:    core.FrameDelta(cfg.TPS),
	}
	g.syncBoard()
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		(inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.session.Phase() == session.PhaseRunning) {
		return ebiten.Termination
	}

	g.rawKeys, g.keys = justPressed(g.rawKeys, g.keys)
	for _, k := range g.keys {
		g.session.HandleKey(k)
	}
	g.syncBoard()

	if g.session.Phase() == session.PhaseRunning {
		mx, my := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if x, y, ok := g.view.CellAt(mx, my); ok {
				g.session.Apply(session.ToggleCell(x, y))
			}
		}
		g.overlay.Update(g.view, mx, my, !g.session.Running())
		_, _, boardRight, _ := g.view.Bounds()
		g.hud.Update(boardRight)
	}

	g.session.Update(g.frame)
	return nil
}

// syncBoard rebuilds size-dependent state after the session changed phase or
// board size.
func (g *Game) syncBoard() {
	grid := g.session.Grid()
	if grid == nil {
		if g.painter != nil {
			g.painter.Dispose()
			g.painter = nil
			ebiten.SetWindowSize(menuWidth, menuHeight)
		}
		return
	}
	if g.painter != nil && g.painter.Size() == grid.Size() {
		return
	}
	if g.painter != nil {
		g.painter.Dispose()
	}
	size := grid.Size()
	g.painter = render.NewGridPainter(size)
	g.view = render.Viewport{Board: size, Scale: render.FitScale(size, g.cfg.Scale, maxBoardW, maxBoardH)}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	log.Printf("board %dx%d at %dpx per cell", size.W, size.H, g.view.Scale)
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Phase() == session.PhaseMenu {
		g.menu.Draw(screen, g.session.Menu())
		return
	}
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	g.painter.Blit(screen, g.session.Grid(), g.view, g.onColor, g.offColor)
	g.overlay.Draw(screen, g.view)
	_, _, boardRight, boardBottom := g.view.Bounds()
	g.hud.Draw(screen, boardRight, boardBottom)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.session.Phase() == session.PhaseMenu {
		return menuWidth, menuHeight
	}
	_, _, w, h := g.view.Bounds()
	return w + hudWidth, max(h, ui.HUDMinHeight)
}
