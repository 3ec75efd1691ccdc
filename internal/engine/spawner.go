package engine

import "math"

// Mode is the spawner interaction state.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Spawning
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Spawning:
		return "Spawning"
	default:
		return "Unknown"
	}
}

// MachineConfig wires a Machine to its collaborators. Palette and Random are
// required; the rest fall back to neutral defaults.
type MachineConfig struct {
	Palette []Color
	Random  Random
	Mapper  CoordinateMapper
	Gate    InteractionGate
	Input   InputSource
	Events  EventSink

	// Start overrides the initial spawner cell, which is otherwise the
	// board center.
	Start *Coord
}

// Machine is the spawner controller. It owns the spawner position and the
// current spawn order, and sequences drag, spawn and clear against a board.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	board   *Board
	palette []Color
	rng     Random
	mapper  CoordinateMapper
	gate    InteractionGate
	input   InputSource
	events  EventSink

	mode     Mode
	pos      Coord
	anchor   Coord
	dragPos  WorldPos
	order    *SpawnOrder
	rebuilds int
}

// NewMachine creates an idle Machine with the spawner on the board center
// (or cfg.Start) and a fresh spawn order around it.
func NewMachine(b *Board, cfg MachineConfig) (*Machine, error) {
	if b == nil {
		return nil, configErrorf("board", "is required")
	}
	if len(cfg.Palette) == 0 {
		return nil, configErrorf("palette", "must contain at least one color")
	}
	for _, c := range cfg.Palette {
		if c == ColorNone {
			return nil, configErrorf("palette", "contains the empty color")
		}
	}
	if cfg.Random == nil {
		return nil, configErrorf("random", "is required")
	}

	m := &Machine{
		board:   b,
		palette: append([]Color(nil), cfg.Palette...),
		rng:     cfg.Random,
		mapper:  cfg.Mapper,
		gate:    cfg.Gate,
		input:   cfg.Input,
		events:  cfg.Events,
		pos:     b.Center(),
	}
	if m.mapper == nil {
		m.mapper = NewGridMapper(b)
	}
	if m.events == nil {
		m.events = discardSink{}
	}
	if cfg.Start != nil {
		m.pos = *cfg.Start
	}

	cell, err := b.Get(m.pos)
	if err != nil {
		return nil, configErrorf("start", "%v is outside the board", m.pos)
	}
	if cell.Blocked {
		return nil, configErrorf("start", "%v is blocked", m.pos)
	}

	m.order = NewSpawnOrder(b.width, b.height, m.pos)
	return m, nil
}

// Board returns the board the machine drives.
func (m *Machine) Board() *Board { return m.board }

// Mode returns the current interaction state.
func (m *Machine) Mode() Mode { return m.mode }

// Position returns the spawner's grid cell.
func (m *Machine) Position() Coord { return m.pos }

// Palette returns a copy of the item colors.
func (m *Machine) Palette() []Color {
	return append([]Color(nil), m.palette...)
}

// Order returns the current spawn order. Callers must not pop from it.
func (m *Machine) Order() *SpawnOrder { return m.order }

// Regenerations returns how many times the spawn order was rebuilt since
// construction.
func (m *Machine) Regenerations() int { return m.rebuilds }

// SpawnerWorldPos returns where the spawner should be drawn: the pointer
// while dragging, the center of its cell otherwise.
func (m *Machine) SpawnerWorldPos() WorldPos {
	if m.mode == Dragging {
		return m.dragPos
	}
	return m.mapper.ToWorld(m.pos)
}

// HitsSpawner reports whether p lies within the spawner's cell.
func (m *Machine) HitsSpawner(p WorldPos) bool {
	w := m.mapper.ToWorld(m.pos)
	return math.Abs(p.X-w.X) <= 0.5 && math.Abs(p.Y-w.Y) <= 0.5
}

// Update drains the input source and applies every event in order.
func (m *Machine) Update() {
	if m.input == nil {
		return
	}
	for _, e := range m.input.Poll() {
		m.Handle(e)
	}
}

// Handle applies a single interaction event.
func (m *Machine) Handle(e InputEvent) {
	switch e.Kind {
	case PointerDown:
		m.BeginDrag(e.Pos)
	case PointerMove:
		m.UpdateDrag(e.Pos)
	case PointerUp:
		m.EndDrag(e.Pos)
	case ToggleSpawn:
		m.ToggleSpawn()
	case ClearRequested:
		m.ClearAction()
	}
}

// BeginDrag starts dragging when the machine is idle, p is over the spawner
// and no UI element is blocking the pointer.
func (m *Machine) BeginDrag(p WorldPos) bool {
	if m.mode != Idle {
		return false
	}
	if m.gate != nil && m.gate.IsUIBlocking() {
		return false
	}
	if !m.HitsSpawner(p) {
		return false
	}
	m.anchor = m.pos
	m.dragPos = p
	m.setMode(Dragging)
	return true
}

// UpdateDrag moves the dragged spawner visually. The board is not touched.
func (m *Machine) UpdateDrag(p WorldPos) {
	if m.mode != Dragging {
		return
	}
	m.dragPos = p
}

// EndDrag drops the spawner on the cell nearest to p. It reports whether
// the spawner changed cells. Dropping on a blocked or occupied cell returns
// the spawner to where the drag began.
func (m *Machine) EndDrag(p WorldPos) bool {
	if m.mode != Dragging {
		return false
	}
	defer m.setMode(Idle)

	target := m.mapper.ToGrid(p)
	if target == m.anchor {
		m.pos = m.anchor
		return false
	}
	if !m.board.IsValidTarget(target) {
		m.pos = m.anchor
		m.events.Emit(SpawnerReturned{Pos: m.anchor, Target: target})
		return false
	}

	from := m.pos
	m.pos = target
	m.regenerate()
	m.events.Emit(SpawnerMoved{From: from, To: target})
	return true
}

// ToggleSpawn switches between Idle and Spawning. It is refused mid-drag.
func (m *Machine) ToggleSpawn() bool {
	switch m.mode {
	case Idle:
		m.setMode(Spawning)
	case Spawning:
		m.setMode(Idle)
	default:
		return false
	}
	return true
}

// Tick performs one spawn step while Spawning. The second result is false
// when no step ran. Exhaustion returns the machine to Idle.
func (m *Machine) Tick() (Outcome, bool) {
	if m.mode != Spawning {
		return Outcome{}, false
	}
	out, err := SpawnNext(m.board, m.order, m.palette, m.rng)
	if err != nil {
		// Palette is validated at construction.
		return Outcome{}, false
	}
	switch out.Kind {
	case Placed:
		m.events.Emit(ItemPlaced{Pos: out.Pos, Color: out.Color})
	case Exhausted:
		m.events.Emit(SpawningExhausted{})
		m.setMode(Idle)
	}
	return out, true
}

// ClearAction removes matching groups and rebuilds the spawn order around
// the spawner. The mode is left unchanged. It is refused mid-drag.
func (m *Machine) ClearAction() (ClearResult, bool) {
	if m.mode == Dragging {
		return ClearResult{}, false
	}
	res := ClearMatches(m.board, m.palette)
	for _, g := range res.Groups {
		m.events.Emit(GroupCleared{Color: g.Color, Cells: g.Cells})
	}
	m.regenerate()
	return res, true
}

func (m *Machine) regenerate() {
	m.order = NewSpawnOrder(m.board.width, m.board.height, m.pos)
	m.rebuilds++
}

func (m *Machine) setMode(next Mode) {
	if next == m.mode {
		return
	}
	prev := m.mode
	m.mode = next
	m.events.Emit(ModeChanged{From: prev, To: next})
}
