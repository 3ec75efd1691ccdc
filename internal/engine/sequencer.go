package engine

// OutcomeKind distinguishes the results of a spawn attempt.
type OutcomeKind int

const (
	Placed OutcomeKind = iota
	Exhausted
)

func (k OutcomeKind) String() string {
	switch k {
	case Placed:
		return "Placed"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Outcome is the result of one SpawnNext call. Pos and Color are set only
// when Kind is Placed.
type Outcome struct {
	Kind  OutcomeKind
	Pos   Coord
	Color Color
}

// SpawnNext pops coordinates from order until one is a valid target, then
// places a random palette color there. Invalid coordinates are discarded.
// It reports Exhausted once the order runs out.
func SpawnNext(b *Board, order *SpawnOrder, palette []Color, rng Random) (Outcome, error) {
	if len(palette) == 0 {
		return Outcome{}, configErrorf("palette", "must contain at least one color")
	}
	for {
		pos, ok := order.Pop()
		if !ok {
			return Outcome{Kind: Exhausted}, nil
		}
		if !b.IsValidTarget(pos) {
			continue
		}
		color := palette[rng.Intn(len(palette))]
		if err := b.Place(pos, color); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Placed, Pos: pos, Color: color}, nil
	}
}
