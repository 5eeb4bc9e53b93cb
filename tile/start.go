package tile

import (
	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
)

// Start is walkable and behaves exactly like Floor during play; it
// additionally remembers which agent this start tile belongs to, so the
// builder can validate that every agent has at least one permissible
// start and so a laser recolor can refuse to cross a different agent's
// start.
type Start struct {
	floor     Floor
	homeAgent agent.ID
}

// NewStart returns a start tile permissible for homeAgent.
func NewStart(homeAgent agent.ID) *Start {
	return &Start{homeAgent: homeAgent}
}

func (s *Start) PreEnter(a *agent.Agent) error { return s.floor.PreEnter(a) }

func (s *Start) Enter(a *agent.Agent) *event.Event { return s.floor.Enter(a) }

func (s *Start) Leave() agent.ID { return s.floor.Leave() }

func (s *Start) Occupant() (agent.ID, bool) { return s.floor.Occupant() }

func (s *Start) Walkable() bool { return true }

func (s *Start) Reset() { s.floor.Reset() }

func (s *Start) Kind() Kind { return KindStart }

// HomeAgent returns the agent this start tile was declared for.
func (s *Start) HomeAgent() agent.ID { return s.homeAgent }
