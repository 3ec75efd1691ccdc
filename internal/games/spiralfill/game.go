// Package spiralfill is the SpiralFill game: a board that fills in a spiral
// around a draggable spawner, and clears same-colored groups on demand.
package spiralfill

import (
	"math/rand"

	"github.com/vovakirdan/spiralfill/internal/config"
	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
	"github.com/vovakirdan/spiralfill/internal/registry"
)

// Variant selects the board layout rules.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantOpen    Variant = "open" // no blocked cells
)

// Game IDs registered with the platform.
const (
	GameID     = "spiralfill"
	OpenGameID = "spiralfill_open"
)

// flashTicks is how long cleared cells stay highlighted.
const flashTicks = 12

// Game implements registry.Game on top of the engine state machine.
type Game struct {
	variant Variant
	preset  config.DifficultyPreset // per-instance overrides from Configure
	size    int
	gate    engine.InteractionGate // frontend gate, kept across resets
	cfg     config.SpiralConfig
	rng     *rand.Rand
	tick    uint64

	board      *engine.Board
	machine    *engine.Machine
	input      engine.InputQueue
	events     engine.EventLog
	palette    []engine.Color
	difficulty *config.DifficultyManager

	tickRate  int
	nextSpawn uint64

	score   int
	placed  int
	cleared int

	cursor  engine.Coord
	flashes map[engine.Coord]int
	status  string

	screenW int
	screenH int
	layout  layout

	paused   bool
	gameOver bool
	failed   bool // config or board setup error; status holds the reason
}

// New creates a classic game with randomly blocked cells.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewOpen creates a game on a board without blocked cells.
func NewOpen() *Game {
	return &Game{variant: VariantOpen}
}

var (
	_ registry.Described    = (*Game)(nil)
	_ registry.Resizable    = (*Game)(nil)
	_ registry.Configurable = (*Game)(nil)
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(OpenGameID, func() registry.Game {
		return NewOpen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantOpen {
		return OpenGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantOpen {
		return "SpiralFill (Open Board)"
	}
	return "SpiralFill"
}

// Description implements registry.Described.
func (g *Game) Description() string {
	if g.variant == VariantOpen {
		return "Every cell is playable"
	}
	return "A quarter of the board starts blocked"
}

// Configure implements registry.Configurable. The overrides apply from the
// next Reset and win over the package-level settings.
func (g *Game) Configure(opts registry.Options) error {
	if opts.Difficulty != "" {
		p, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return err
		}
		g.preset = p
	}
	if opts.Size < 0 {
		return &engine.ConfigError{Field: "size", Reason: "must not be negative"}
	}
	g.size = opts.Size
	return nil
}

// Reset builds a fresh board from the current configuration.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.resetState(rc)
	cfg, err := loadConfig(g.variant, g.preset, g.size)
	if err != nil {
		g.fail(err)
		return
	}
	if err := g.setup(cfg); err != nil {
		g.fail(err)
		return
	}
	logger.Debug("board ready",
		"game", g.ID(),
		"size", g.board.Width(),
		"blocked", g.board.BlockedCount(),
		"seed", rc.Seed)
}

// ResetWithConfig starts a new board from an explicit configuration,
// bypassing the config search path.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.SpiralConfig) error {
	g.resetState(rc)
	if err := g.setup(cfg); err != nil {
		g.fail(err)
		return err
	}
	return nil
}

func (g *Game) resetState(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.nextSpawn = 0
	g.score = 0
	g.placed = 0
	g.cleared = 0
	g.flashes = make(map[engine.Coord]int)
	g.status = ""
	g.paused = false
	g.gameOver = false
	g.failed = false
	g.board = nil
	g.machine = nil
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.input = engine.InputQueue{}
	g.events = engine.EventLog{}
}

func (g *Game) setup(cfg config.SpiralConfig) error {
	palette, err := cfg.Colors()
	if err != nil {
		return err
	}

	var board *engine.Board
	if blocked := cfg.BlockedCells(); len(blocked) > 0 {
		board, err = engine.NewBoardWithBlocked(cfg.Grid.Width, cfg.Grid.Height, blocked)
	} else {
		board, err = engine.NewBoard(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.BlockChance, g.rng)
	}
	if err != nil {
		return err
	}

	machine, err := engine.NewMachine(board, engine.MachineConfig{
		Palette: palette,
		Random:  g.rng,
		Gate:    engine.GateFunc(g.uiBlocking),
		Input:   &g.input,
		Events:  &g.events,
	})
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.palette = palette
	g.board = board
	g.machine = machine
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.cursor = machine.Position()
	g.layout = newLayout(g.screenW, g.screenH, board)
	g.events.Drain()
	return nil
}

func (g *Game) fail(err error) {
	g.failed = true
	g.status = err.Error()
	logger.Error("cannot start game", "game", g.ID(), "err", err)
}

// uiBlocking gates board drags while an overlay owns the screen.
func (g *Game) uiBlocking() bool {
	if g.paused || g.gameOver {
		return true
	}
	return g.gate != nil && g.gate.IsUIBlocking()
}

// SetGate installs a frontend gate, e.g. for pointers over HUD buttons.
// Drags cannot start while it blocks.
func (g *Game) SetGate(gate engine.InteractionGate) {
	g.gate = gate
}

// PushPointer queues a pointer event in world coordinates for the next
// Step. Frontends with their own layout use it instead of InputFrame
// pointers. Events are dropped while the game is paused or over.
func (g *Game) PushPointer(kind engine.InputKind, p engine.WorldPos) {
	if g.failed || g.board == nil || g.paused || g.gameOver {
		return
	}
	g.input.Push(engine.InputEvent{Kind: kind, Pos: p})
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.board != nil {
		g.layout = newLayout(w, h, g.board)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.failed || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		if g.paused && g.machine.Mode() == engine.Dragging {
			// Releasing on the anchor cancels the drag.
			g.machine.EndDrag(engine.NewGridMapper(g.board).ToWorld(g.machine.Position()))
			g.events.Drain()
		}
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	g.handlePointers(in.Pointers)
	if in.Has(core.ActionSpawn) {
		g.input.Push(engine.InputEvent{Kind: engine.ToggleSpawn})
	}
	if in.Has(core.ActionClear) {
		g.input.Push(engine.InputEvent{Kind: engine.ClearRequested})
	}

	g.machine.Update()
	g.applyEvents()

	if g.machine.Mode() == engine.Spawning && g.tick >= g.nextSpawn {
		g.machine.Tick()
		g.nextSpawn = g.tick + g.spawnTicks()
		g.applyEvents()
	}

	g.decayFlashes()
	g.checkGameOver()
	return core.StepResult{State: g.State()}
}

// handleKeys drives the keyboard cursor. Grab picks the spawner up at the
// cursor and drops it where the cursor is when pressed again.
func (g *Game) handleKeys(in core.InputFrame) {
	moved := false
	move := func(a core.Action, d engine.Coord) {
		if in.Has(a) {
			next := g.cursor.Add(d)
			if g.board.InBounds(next) {
				g.cursor = next
				moved = true
			}
		}
	}
	move(core.ActionUp, engine.C(0, -1))
	move(core.ActionDown, engine.C(0, 1))
	move(core.ActionLeft, engine.C(-1, 0))
	move(core.ActionRight, engine.C(1, 0))

	dragging := g.machine.Mode() == engine.Dragging
	if moved && dragging {
		g.pushPointer(engine.PointerMove, g.cursor)
	}
	if !in.Has(core.ActionGrab) {
		return
	}
	if dragging {
		g.pushPointer(engine.PointerUp, g.cursor)
		return
	}
	if g.machine.Mode() == engine.Spawning {
		g.status = "stop spawning before moving the spawner"
		return
	}
	g.cursor = g.machine.Position()
	g.pushPointer(engine.PointerDown, g.cursor)
}

func (g *Game) pushPointer(kind engine.InputKind, c engine.Coord) {
	g.input.Push(engine.InputEvent{Kind: kind, Pos: engine.NewGridMapper(g.board).ToWorld(c)})
}

// handlePointers forwards terminal mouse events. Presses off the board are
// ignored; motion and release are always forwarded so a drag can end
// anywhere.
func (g *Game) handlePointers(ptrs []core.PointerEvent) {
	if !g.layout.fits {
		return
	}
	for _, p := range ptrs {
		pos := g.layout.toWorld(p.X, p.Y)
		switch p.Kind {
		case core.PointerPress:
			if !g.layout.contains(p.X, p.Y) {
				continue
			}
			g.input.Push(engine.InputEvent{Kind: engine.PointerDown, Pos: pos})
		case core.PointerMotion:
			g.input.Push(engine.InputEvent{Kind: engine.PointerMove, Pos: pos})
		case core.PointerRelease:
			g.input.Push(engine.InputEvent{Kind: engine.PointerUp, Pos: pos})
		}
		if g.layout.contains(p.X, p.Y) {
			g.cursor = engine.NewGridMapper(g.board).ToGrid(pos)
		}
	}
}

// applyEvents folds engine events into score, counters and the status line.
func (g *Game) applyEvents() {
	for _, e := range g.events.Drain() {
		switch ev := e.(type) {
		case engine.ItemPlaced:
			g.placed++
		case engine.GroupCleared:
			n := len(ev.Cells)
			g.cleared += n
			g.score += GroupScore(n)
			for _, c := range ev.Cells {
				g.flashes[c] = flashTicks
			}
			logger.Debug("group cleared", "color", ev.Color, "size", n, "score", g.score)
		case engine.SpawnerMoved:
			g.cursor = ev.To
			g.status = "spawner moved to " + ev.To.String()
			logger.Debug("spawner moved", "from", ev.From, "to", ev.To)
		case engine.SpawnerReturned:
			g.cursor = ev.Pos
			g.status = "cannot drop on " + ev.Target.String()
		case engine.SpawningExhausted:
			g.status = "spiral complete"
			logger.Debug("spawning exhausted", "placed", g.placed)
		case engine.ModeChanged:
			if ev.To == engine.Spawning {
				g.nextSpawn = g.tick
			}
		}
	}
}

// spawnTicks converts the current spawn interval into ticks.
func (g *Game) spawnTicks() uint64 {
	ms := g.difficulty.SpawnInterval(g.cfg.Spawn.IntervalMS, g.cfg.Spawn.MinIntervalMS, g.score, int(g.tick))
	ticks := ms * g.tickRate / 1000
	return uint64(max(ticks, 1))
}

func (g *Game) decayFlashes() {
	for c, n := range g.flashes {
		if n <= 1 {
			delete(g.flashes, c)
		} else {
			g.flashes[c] = n - 1
		}
	}
}

// checkGameOver ends the run once no cell is left to fill and no group can
// be cleared.
func (g *Game) checkGameOver() {
	if g.machine.Mode() == engine.Dragging {
		return
	}
	spawner := g.machine.Position()
	for _, c := range g.board.OpenCells() {
		if c != spawner {
			return
		}
	}
	if engine.HasMatches(g.board, g.palette) {
		return
	}
	g.gameOver = true
	if g.machine.Mode() == engine.Spawning {
		g.machine.ToggleSpawn()
		g.events.Drain()
	}
	logger.Info("game over", "game", g.ID(), "score", g.score, "placed", g.placed, "cleared", g.cleared)
}

// GroupScore is the score for clearing one group of n items. Larger groups
// earn a quadratic bonus.
func GroupScore(n int) int {
	if n < engine.MinGroupSize {
		return 0
	}
	extra := n - engine.MinGroupSize
	return n*10 + extra*extra*5
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.failed,
		Placed:   g.placed,
		Cleared:  g.cleared,
	}
	if g.board != nil {
		st.BoardW = g.board.Width()
		st.BoardH = g.board.Height()
	}
	return st
}

// Flash returns how many ticks cell c stays highlighted after a clear.
func (g *Game) Flash(c engine.Coord) int {
	return g.flashes[c]
}

// Machine exposes the engine state machine to frontends that drive it
// directly.
func (g *Game) Machine() *engine.Machine {
	return g.machine
}

// Palette returns the item colors in clear order.
func (g *Game) Palette() []engine.Color {
	return append([]engine.Color(nil), g.palette...)
}

// Status returns the latest status message.
func (g *Game) Status() string {
	return g.status
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() engine.Coord {
	return g.cursor
}
