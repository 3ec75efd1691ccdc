package spiralfill

import (
	"fmt"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
)

// itemColors maps item colors to terminal colors.
var itemColors = map[engine.Color]core.Color{
	engine.Red:    core.ColorRed,
	engine.Green:  core.ColorGreen,
	engine.Blue:   core.ColorBlue,
	engine.Yellow: core.ColorYellow,
	engine.Purple: core.ColorMagenta,
	engine.Orange: core.ColorOrange,
	engine.Cyan:   core.ColorCyan,
}

// ItemColor returns the terminal color used for an item color.
func ItemColor(c engine.Color) core.Color {
	if tc, ok := itemColors[c]; ok {
		return tc
	}
	return core.ColorDefault
}

const helpLine = "arrows move  space grab/drop  s spawn  c clear  p pause  q quit"

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	if g.failed || g.board == nil {
		dst.DrawTextCenteredColored(dst.Height()/2-1, "Cannot start SpiralFill", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, g.status)
		dst.DrawTextCentered(dst.Height()/2+2, "Press Q to quit")
		return
	}
	if g.layout.cols != g.board.Width() || dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)
	if !g.layout.fits {
		need := fmt.Sprintf("Terminal too small for a %dx%d board", g.board.Width(), g.board.Height())
		dst.DrawTextCenteredColored(dst.Height()/2, need, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Enlarge the window or pick a smaller --size")
		return
	}

	dst.DrawBox(g.layout.frame(), core.ColorGray)
	for _, cell := range g.board.Cells() {
		g.renderCell(dst, cell)
	}
	g.renderCursor(dst)
	g.renderSpawner(dst)
	g.renderFooter(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "NO MOVES LEFT", fmt.Sprintf("Score %d  -  R to play again", g.score))
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s  %dx%d", g.Title(), g.board.Width(), g.board.Height())
	right := fmt.Sprintf("Score %d  Placed %d  Cleared %d  %s ", g.score, g.placed, g.cleared, g.machine.Mode())
	dst.DrawTextColored(0, 0, left, core.ColorCyan)
	dst.DrawText(dst.Width()-len(right), 0, right)
}

func (g *Game) renderCell(dst *core.Screen, cell engine.Cell) {
	sx, sy := g.layout.cellToScreen(cell.Pos)
	bg := core.ColorLightGray
	if (cell.Pos.X+cell.Pos.Y)%2 == 1 {
		bg = core.ColorGray
	}

	var fill core.Cell
	switch {
	case cell.Blocked:
		fill = core.Cell{Rune: '░', Fg: core.ColorDarkGray, Bg: core.ColorBlack}
	case g.flashes[cell.Pos] > 0:
		fill = core.Cell{Rune: '*', Fg: core.ColorWhite, Bg: bg}
	case cell.Occupied:
		fill = core.Cell{Rune: '█', Fg: ItemColor(cell.Color), Bg: bg}
	default:
		fill = core.Cell{Rune: ' ', Bg: bg}
	}
	for i := 0; i < g.layout.cellW; i++ {
		dst.SetCell(sx+i, sy, fill)
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	if g.cursor == g.machine.Position() && g.machine.Mode() != engine.Dragging {
		return
	}
	sx, sy := g.layout.cellToScreen(g.cursor)
	for i := 0; i < g.layout.cellW; i++ {
		c := dst.GetCell(sx+i, sy)
		c.Bg = core.ColorYellow
		dst.SetCell(sx+i, sy, c)
	}
}

func (g *Game) renderSpawner(dst *core.Screen) {
	sx, sy := g.layout.worldToScreen(g.machine.SpawnerWorldPos())
	if !g.layout.contains(sx, sy) {
		return
	}
	glyph := []rune("<>")
	fg := core.ColorWhite
	bg := core.ColorMagenta
	if g.machine.Mode() == engine.Spawning {
		bg = core.ColorGreen
	}
	if g.machine.Mode() == engine.Dragging {
		glyph = []rune("[]")
		bg = core.ColorCyan
	}
	if g.layout.cellW == 1 {
		glyph = glyph[:1]
	}
	for i, r := range glyph {
		dst.SetCell(sx+i, sy, core.Cell{Rune: r, Fg: fg, Bg: bg})
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	frame := g.layout.frame()
	statusY := frame.Bottom()
	if g.status != "" {
		dst.DrawTextCenteredColored(statusY, g.status, core.ColorYellow)
	}
	dst.DrawTextCenteredColored(dst.Height()-1, helpLine, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 4)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorYellow)
	dst.DrawTextCentered(box.Y+2, subtitle)
}
