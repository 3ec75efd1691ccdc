package spiralfill

import (
	"hash/fnv"

	"github.com/vovakirdan/spiralfill/internal/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateFailed   GameStateType = "failed"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Score    int
	Placed   int
	Cleared  int
	Mode     string
	Spawner  engine.Coord
	OrderLen int
	Board    string
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.failed:
		state = StateFailed
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Score:   g.score,
		Placed:  g.placed,
		Cleared: g.cleared,
		State:   state,
	}
	if g.machine != nil {
		s.Mode = g.machine.Mode().String()
		s.Spawner = g.machine.Position()
		s.OrderLen = g.machine.Order().Len()
		s.Board = g.board.String()
	}
	return s
}

// Hash returns a stable fingerprint of the snapshot's board and counters.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.Board))
	h.Write([]byte{byte(s.Score), byte(s.Score >> 8), byte(s.Placed), byte(s.Cleared)})
	h.Write([]byte(s.Mode))
	return h.Sum64()
}
