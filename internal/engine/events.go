package engine

// Event is emitted by the Machine for presentation layers. The marker method
// keeps the set closed to this package.
type Event interface {
	engineEvent()
}

// ItemPlaced is emitted when a spawn tick places an item.
type ItemPlaced struct {
	Pos   Coord
	Color Color
}

// GroupCleared is emitted once per group removed by a clear.
type GroupCleared struct {
	Color Color
	Cells []Coord
}

// SpawnerMoved is emitted when a drag relocates the spawner.
type SpawnerMoved struct {
	From, To Coord
}

// SpawnerReturned is emitted when a drag ends over an unusable cell and the
// spawner snaps back to where the drag began.
type SpawnerReturned struct {
	Pos    Coord
	Target Coord
}

// SpawningExhausted is emitted when the spawn order runs out.
type SpawningExhausted struct{}

// ModeChanged is emitted on every state machine transition.
type ModeChanged struct {
	From, To Mode
}

func (ItemPlaced) engineEvent()        {}
func (GroupCleared) engineEvent()      {}
func (SpawnerMoved) engineEvent()      {}
func (SpawnerReturned) engineEvent()   {}
func (SpawningExhausted) engineEvent() {}
func (ModeChanged) engineEvent()       {}

// EventSink receives engine events.
type EventSink interface {
	Emit(e Event)
}

// EventLog buffers events until drained.
type EventLog struct {
	events []Event
}

// Emit appends e to the log.
func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Drain returns the buffered events and empties the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = nil
	return out
}

// Len returns the number of buffered events.
func (l *EventLog) Len() int {
	return len(l.events)
}

type discardSink struct{}

func (discardSink) Emit(Event) {}
