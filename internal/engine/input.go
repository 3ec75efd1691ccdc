package engine

// InputKind enumerates the interaction events the Machine consumes.
type InputKind int

const (
	PointerDown InputKind = iota
	PointerMove
	PointerUp
	ToggleSpawn
	ClearRequested
)

func (k InputKind) String() string {
	switch k {
	case PointerDown:
		return "PointerDown"
	case PointerMove:
		return "PointerMove"
	case PointerUp:
		return "PointerUp"
	case ToggleSpawn:
		return "ToggleSpawn"
	case ClearRequested:
		return "ClearRequested"
	default:
		return "Unknown"
	}
}

// InputEvent is one interaction. Pos is used by pointer events only.
type InputEvent struct {
	Kind InputKind
	Pos  WorldPos
}

// InputSource supplies the interaction events gathered since the last poll.
type InputSource interface {
	Poll() []InputEvent
}

// InputQueue is a FIFO InputSource fed by a frontend.
type InputQueue struct {
	pending []InputEvent
}

// Push enqueues an event.
func (q *InputQueue) Push(e InputEvent) {
	q.pending = append(q.pending, e)
}

// Poll returns and removes all queued events.
func (q *InputQueue) Poll() []InputEvent {
	out := q.pending
	q.pending = nil
	return out
}

// InteractionGate reports whether some UI element currently owns the
// pointer, in which case board drags must not start.
type InteractionGate interface {
	IsUIBlocking() bool
}

// GateFunc adapts a function to InteractionGate.
type GateFunc func() bool

// IsUIBlocking calls f.
func (f GateFunc) IsUIBlocking() bool {
	return f()
}
