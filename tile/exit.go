package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Exit is walkable. The first time a given agent enters it during an
// episode it sets that agent's arrived flag and emits AgentExit; any
// later entry by an agent that has already arrived (an arrived agent
// never has a move action available other than Stay, but SetState can
// still place one on an exit) is silent.
type Exit struct {
	floor Floor
}

// NewExit returns an exit tile.
func NewExit() *Exit { return &Exit{} }

func (x *Exit) PreEnter(a *agent.Agent) error { return x.floor.PreEnter(a) }

func (x *Exit) Enter(a *agent.Agent) *event.Event {
	x.floor.Enter(a)
	if !a.Arrived() {
		a.Arrive()
		return &event.Event{Kind: event.AgentExit, AgentID: a.ID()}
	}
	return nil
}

func (x *Exit) Leave() agent.ID { return x.floor.Leave() }

func (x *Exit) Occupant() (agent.ID, bool) { return x.floor.Occupant() }

func (x *Exit) Walkable() bool { return true }

func (x *Exit) Reset() { x.floor.Reset() }

func (x *Exit) Kind() Kind { return KindExit }
