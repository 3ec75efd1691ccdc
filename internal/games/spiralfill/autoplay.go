package spiralfill

import (
	"math/rand"

	"github.com/vovakirdan/spiralfill/internal/core"
	"github.com/vovakirdan/spiralfill/internal/engine"
)

// AutoplayOptions controls a headless run.
type AutoplayOptions struct {
	MaxTicks   int // hard stop; 0 means 10000
	ClearEvery int // ticks between clear requests; 0 never clears
	MoveEvery  int // ticks between spawner moves; 0 never moves
}

// AutoplayResult summarizes a headless run.
type AutoplayResult struct {
	Ticks         int
	Moves         int
	Regenerations int
	Snapshot      Snapshot
}

// Autoplay drives the game without a frontend: it spawns continuously,
// clears on a fixed cadence and drags the spawner to random open cells.
// The run stops at game over or after MaxTicks. The same seed and options
// always produce the same result.
func (g *Game) Autoplay(opts AutoplayOptions, rng *rand.Rand) AutoplayResult {
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = 10000
	}
	res := AutoplayResult{}
	if g.failed || g.machine == nil {
		res.Snapshot = g.Snapshot()
		return res
	}

	pendingMove := false
	for res.Ticks = 0; res.Ticks < maxTicks && !g.gameOver; res.Ticks++ {
		in := core.NewInputFrame()
		t := res.Ticks
		mode := g.machine.Mode()

		switch {
		case pendingMove:
			// Stopped last tick; drag now, then resume.
			if g.dragToRandomCell(rng) {
				res.Moves++
			}
			pendingMove = false
			in.Set(core.ActionSpawn)
		case opts.MoveEvery > 0 && t > 0 && t%opts.MoveEvery == 0:
			if mode == engine.Spawning {
				in.Set(core.ActionSpawn)
				pendingMove = true
			} else if g.dragToRandomCell(rng) {
				res.Moves++
			}
		case mode == engine.Idle:
			in.Set(core.ActionSpawn)
		}
		if opts.ClearEvery > 0 && t > 0 && t%opts.ClearEvery == 0 && !pendingMove {
			in.Set(core.ActionClear)
		}

		g.Step(in)
		// A board that cannot be refilled still needs clears to end the run.
		if g.machine.Order().Empty() && engine.HasMatches(g.board, g.palette) {
			g.Step(frameWith(core.ActionClear))
		}
	}

	res.Regenerations = g.machine.Regenerations()
	res.Snapshot = g.Snapshot()
	return res
}

// dragToRandomCell queues a full drag from the spawner to a random open
// cell. It reports false when there is nowhere to go.
func (g *Game) dragToRandomCell(rng *rand.Rand) bool {
	here := g.machine.Position()
	var targets []engine.Coord
	for _, c := range g.board.OpenCells() {
		if c != here {
			targets = append(targets, c)
		}
	}
	if len(targets) == 0 {
		return false
	}
	to := targets[rng.Intn(len(targets))]
	m := engine.NewGridMapper(g.board)
	g.PushPointer(engine.PointerDown, m.ToWorld(here))
	g.PushPointer(engine.PointerUp, m.ToWorld(to))
	return true
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
