package game

// EventKind identifies a discrete gameplay event raised by the simulation
// during one tick. The orchestrator consumes them for scoring and audio;
// tests consume them to observe the core without poking at render state.
type EventKind int

const (
	EventDotEaten EventKind = iota
	EventPowerPelletEaten
	EventGhostEaten
	EventFruitEaten
	EventPlayerCaught
	EventLevelCleared
)

type Event struct {
	Kind         EventKind
	TileX, TileY int // tile of the consumed dot, where applicable
	Points       int
	Combo        int // 0-based multiplier index for EventGhostEaten
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

// Events returns the events raised during the most recent Update tick.
func (g *Game) Events() []Event {
	return g.events
}
