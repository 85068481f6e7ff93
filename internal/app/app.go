//go:build ebiten

package app

import (
	"image/color"
	"time"

	"rtlife/internal/render"
	"rtlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 200

// Game adapts a Session to the ebiten.Game interface. Update and Draw run on
// ebiten's goroutine; the simulation runs elsewhere and is never waited on.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	frame   []uint32

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	n := s.Size()
	scale := s.Scale()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(n, n),
		hud:      ui.NewHUD(s, "Life", HUDWidth),
		overlay:  ui.NewOverlay(n, scale),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input and forwards edits to the grid and rate controller.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if repeating(ebiten.KeyUp) {
		s.Faster()
	}
	if repeating(ebiten.KeyDown) {
		s.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Reset(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	if g.inBoard(mx, my) {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			s.PaintAt(mx, my, g.scale)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			if row, col, ok := CellAt(mx, my, g.scale); ok {
				s.Flip(row, col)
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(g.boardPixels())
	return nil
}

// repeating reports a key press and its auto-repeat after a short hold.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 15 && d%3 == 0)
}

func (g *Game) boardPixels() int { return g.session.Size() * g.scale }

func (g *Game) inBoard(x, y int) bool {
	px := g.boardPixels()
	return x >= 0 && y >= 0 && x < px && y < px
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.frame = g.session.Frame(g.frame)
	g.painter.Blit(screen, g.frame, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardPixels())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := g.boardPixels()
	return px + HUDWidth, max(px, ui.MinHUDHeight)
}
