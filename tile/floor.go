package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Floor is a plain walkable tile with no effect on the agent entering it.
// Start, Gem and Exit share this occupancy bookkeeping through a Floor
// field; Void keeps its own, and LaserBeam delegates to the tile it wraps.
type Floor struct {
	occupant agent.ID
	occupied bool
}

// NewFloor returns an empty, unoccupied floor tile.
func NewFloor() *Floor { return &Floor{} }

func (f *Floor) PreEnter(a *agent.Agent) error {
	return nil
}

func (f *Floor) Enter(a *agent.Agent) *event.Event {
	f.occupant = a.ID()
	f.occupied = true
	return nil
}

func (f *Floor) Leave() agent.ID {
	id := f.occupant
	f.occupied = false
	return id
}

func (f *Floor) Occupant() (agent.ID, bool) {
	return f.occupant, f.occupied
}

func (f *Floor) Walkable() bool { return true }

func (f *Floor) Reset() {
	f.occupied = false
}

func (f *Floor) Kind() Kind { return KindFloor }
