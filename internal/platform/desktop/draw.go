package desktop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/spiralfill/internal/engine"
)

var (
	backgroundColor = color.RGBA{0x1b, 0x1d, 0x24, 0xff}
	hudColor        = color.RGBA{0x25, 0x28, 0x31, 0xff}
	emptyColor      = color.RGBA{0x33, 0x37, 0x42, 0xff}
	blockedColor    = color.RGBA{0x12, 0x13, 0x17, 0xff}
	gridLineColor   = color.RGBA{0x44, 0x48, 0x55, 0xff}
	flashColor      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	spawnerColor    = color.RGBA{0xe0, 0x5c, 0xd0, 0xff}
	spawningColor   = color.RGBA{0x5c, 0xe0, 0x8a, 0xff}
	buttonColor     = color.RGBA{0x3a, 0x4a, 0x7a, 0xff}
	buttonHotColor  = color.RGBA{0x50, 0x66, 0xaa, 0xff}
	textColor       = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	dimTextColor    = color.RGBA{0x99, 0x99, 0xa5, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var itemColors = map[engine.Color]color.RGBA{
	engine.Red:    {0xe0, 0x4a, 0x4a, 0xff},
	engine.Green:  {0x4a, 0xc0, 0x5a, 0xff},
	engine.Blue:   {0x4a, 0x7a, 0xe0, 0xff},
	engine.Yellow: {0xe8, 0xc8, 0x3a, 0xff},
	engine.Purple: {0x9a, 0x5a, 0xd8, 0xff},
	engine.Orange: {0xf0, 0x8a, 0x2a, 0xff},
	engine.Cyan:   {0x3a, 0xc8, 0xd8, 0xff},
}

var face = basicfont.Face7x13

// Draw renders the HUD, board, spawner and overlays.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	m := a.game.Machine()
	if m == nil {
		drawCentered(screen, screen.Bounds(), "Cannot start: "+a.game.Status(), textColor)
		return
	}

	a.drawHUD(screen)
	b := m.Board()
	inset := float32(1)
	if a.view.cell < 6 {
		inset = 0
	}
	for _, c := range b.Cells() {
		r := a.view.cellRect(c.Pos)
		fill := emptyColor
		switch {
		case a.game.Flash(c.Pos) > 0:
			fill = flashColor
		case c.Blocked:
			fill = blockedColor
		case c.Occupied:
			fill = itemColors[c.Color]
		}
		vector.DrawFilledRect(screen,
			float32(r.Min.X)+inset, float32(r.Min.Y)+inset,
			float32(r.Dx())-2*inset, float32(r.Dy())-2*inset,
			fill, false)
	}
	br := a.view.boardRect()
	vector.StrokeRect(screen, float32(br.Min.X), float32(br.Min.Y), float32(br.Dx()), float32(br.Dy()), 2, gridLineColor, false)

	cr := a.view.cellRect(a.game.Cursor())
	vector.StrokeRect(screen, float32(cr.Min.X), float32(cr.Min.Y), float32(cr.Dx()), float32(cr.Dy()), 1, dimTextColor, false)
	a.drawSpawner(screen, m)

	st := a.game.State()
	switch {
	case st.GameOver:
		a.drawOverlay(screen, "NO MOVES LEFT", fmt.Sprintf("Score %d - R to play again", st.Score))
	case st.Paused:
		a.drawOverlay(screen, "PAUSED", "P to resume")
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	w, _ := a.view.size()
	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, hudColor, false)

	st := a.game.State()
	text.Draw(screen, fmt.Sprintf("Score %d   Placed %d   Cleared %d", st.Score, st.Placed, st.Cleared),
		face, margin, 18, textColor)
	text.Draw(screen, a.game.Status(), face, margin, 34, dimTextColor)

	hot := a.view.buttonAt(a.cursorX, a.cursorY)
	for i, btn := range buttons {
		r := a.view.buttonRect(i)
		fill := buttonColor
		if i == hot {
			fill = buttonHotColor
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
		label := btn.label
		if btn.label == "Spawn" && a.game.Machine().Mode() == engine.Spawning {
			label = "Stop"
		}
		drawCentered(screen, r, label, textColor)
	}
}

func (a *App) drawSpawner(screen *ebiten.Image, m *engine.Machine) {
	cx, cy := a.view.toPixel(m.SpawnerWorldPos())
	radius := float32(a.view.cell) * 0.38
	fill := spawnerColor
	if m.Mode() == engine.Spawning {
		fill = spawningColor
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	if m.Mode() == engine.Dragging {
		// Outline the anchor cell the spawner returns to on a bad drop.
		r := a.view.cellRect(m.Position())
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, spawnerColor, false)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	br := a.view.boardRect()
	vector.DrawFilledRect(screen, float32(br.Min.X), float32(br.Min.Y), float32(br.Dx()), float32(br.Dy()), overlayColor, false)
	mid := br.Min.Y + br.Dy()/2
	drawCentered(screen, image.Rect(br.Min.X, mid-20, br.Max.X, mid), title, textColor)
	drawCentered(screen, image.Rect(br.Min.X, mid, br.Max.X, mid+20), subtitle, dimTextColor)
}

// drawCentered draws s centered in r.
func drawCentered(screen *ebiten.Image, r image.Rectangle, s string, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
