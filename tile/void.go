package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Void is walkable. Any alive agent entering it dies immediately.
type Void struct {
	occupant agent.ID
	occupied bool
}

// NewVoid returns a void tile.
func NewVoid() *Void { return &Void{} }

func (v *Void) PreEnter(a *agent.Agent) error {
	return nil
}

func (v *Void) Enter(a *agent.Agent) *event.Event {
	v.occupant = a.ID()
	v.occupied = true
	if a.Alive() {
		a.Die()
		return &event.Event{Kind: event.AgentDied, AgentID: a.ID()}
	}
	return nil
}

func (v *Void) Leave() agent.ID {
	id := v.occupant
	v.occupied = false
	return id
}

func (v *Void) Occupant() (agent.ID, bool) { return v.occupant, v.occupied }

func (v *Void) Walkable() bool { return true }

func (v *Void) Reset() {
	v.occupied = false
}

func (v *Void) Kind() Kind { return KindVoid }
