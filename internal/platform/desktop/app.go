// Package desktop runs SpiralFill in a native window with Ebitengine.
// The pointer drags the spawner directly; the HUD buttons act as an
// interaction gate for the board.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
	"github.com/vovakirdan/spiralfill/internal/games/spiralfill"
	"github.com/vovakirdan/spiralfill/internal/storage"
)

// Options configures the desktop frontend.
type Options struct {
	Store   *storage.Store // nil disables score saving
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// App implements ebiten.Game around a SpiralFill game.
type App struct {
	game   *spiralfill.Game
	store  *storage.Store
	rc     core.RuntimeConfig
	logger *log.Logger

	view       view
	frame      core.InputFrame
	cursorX    int
	cursorY    int
	dragging   bool // left button went down on the board
	pointerHUD bool
	saved      bool
}

// New creates an App and starts the first board.
func New(game *spiralfill.Game, opts Options) *App {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = ebiten.DefaultTPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	a := &App{
		game:   game,
		store:  opts.Store,
		rc:     opts.Runtime,
		logger: opts.Logger,
		frame:  core.NewInputFrame(),
	}
	game.SetGate(engine.GateFunc(func() bool { return a.pointerHUD }))
	a.reset()
	return a
}

func (a *App) reset() {
	a.game.Reset(a.rc)
	a.saved = false
	a.dragging = false
	if m := a.game.Machine(); m != nil {
		a.view = newView(m.Board())
	}
	a.logger.Debug("board ready", "seed", a.rc.Seed, "size", a.game.State().BoardW)
}

// keyActions maps keyboard keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeySpace:      core.ActionGrab,
	ebiten.KeyS:          core.ActionSpawn,
	ebiten.KeyC:          core.ActionClear,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
}

// Update runs one simulation tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			a.frame.Set(action)
		}
	}
	a.handlePointer()

	if a.frame.Has(core.ActionRestart) && a.game.State().GameOver {
		a.rc.Seed = time.Now().UnixNano()
		a.reset()
		a.frame.Clear()
		return nil
	}

	st := a.game.Step(a.frame).State
	a.frame.Clear()
	if st.GameOver && !a.saved {
		a.saveScore(st)
		a.saved = true
	}
	return nil
}

// handlePointer turns mouse state into button actions and world-space
// pointer events.
func (a *App) handlePointer() {
	x, y := ebiten.CursorPosition()
	moved := x != a.cursorX || y != a.cursorY
	a.cursorX, a.cursorY = x, y
	a.pointerHUD = a.view.overHUD(y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := a.view.buttonAt(x, y); i >= 0 {
			a.frame.Set(buttons[i].action)
			return
		}
		a.dragging = true
		a.game.PushPointer(engine.PointerDown, a.view.toWorld(x, y))
		return
	}
	if !a.dragging {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.dragging = false
		a.game.PushPointer(engine.PointerUp, a.view.toWorld(x, y))
		return
	}
	if moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		a.game.PushPointer(engine.PointerMove, a.view.toWorld(x, y))
	}
}

func (a *App) saveScore(st core.GameState) {
	if a.store == nil || st.Score <= 0 {
		return
	}
	_, err := a.store.SaveScore(storage.ScoreEntry{
		GameID:  a.game.ID(),
		Score:   st.Score,
		BoardW:  st.BoardW,
		BoardH:  st.BoardH,
		Placed:  st.Placed,
		Cleared: st.Cleared,
	})
	if err != nil {
		a.logger.Error("save score", "err", err)
		return
	}
	a.logger.Info("score saved", "game", a.game.ID(), "score", st.Score)
}

// Layout keeps a fixed logical size; Ebitengine scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	if a.view.cell == 0 {
		return 480, 240
	}
	return a.view.size()
}

// Run opens the window and blocks until it is closed.
func Run(game *spiralfill.Game, opts Options) error {
	app := New(game, opts)
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.rc.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
